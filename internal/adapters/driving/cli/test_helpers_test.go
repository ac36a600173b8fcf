package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/custodia-labs/adoid/internal/config"
	"github.com/custodia-labs/adoid/internal/core/domain"
	"github.com/custodia-labs/adoid/internal/core/ports/driving"
)

// mockIdentityService implements driving.IdentityService for testing.
type mockIdentityService struct {
	profile      *domain.UserProfile
	err          error
	calls        int
	gotServerURL string
	gotAuth      domain.AuthConfig
}

func (m *mockIdentityService) GetMe(
	_ context.Context, serverURL string, auth domain.AuthConfig,
) (*domain.UserProfile, error) {
	m.calls++
	m.gotServerURL = serverURL
	m.gotAuth = auth
	return m.profile, m.err
}

// withIdentity installs svc as the identity service and records the configs it was built for.
func withIdentity(t *testing.T, svc *mockIdentityService) *[]*config.Config {
	t.Helper()
	var built []*config.Config
	old := identityFactory
	identityFactory = func(cfg *config.Config) driving.IdentityService {
		built = append(built, cfg)
		return svc
	}
	t.Cleanup(func() { identityFactory = old })
	return &built
}

// isolate points the CLI at a fresh settings file and clears connection state.
func isolate(t *testing.T) string {
	t.Helper()
	for _, env := range []string{
		"AZURE_DEVOPS_ORG_URL", "AZURE_DEVOPS_AUTH_METHOD", "AZURE_DEVOPS_PAT", "ADOID_TIMEOUT",
	} {
		t.Setenv(env, "")
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	oldPath := defaultConfigPath
	defaultConfigPath = path
	t.Cleanup(func() {
		defaultConfigPath = oldPath
		resetFlags()
	})
	resetFlags()
	return path
}

// resetFlags clears flag values and their changed state between runs.
func resetFlags() {
	configFile, serverURL, authMethod = "", "", ""
	meOutput = outputText
	configInitTimeout = ""
	verbose = false
	for _, name := range []string{"config", "server-url", "auth-method", "verbose"} {
		if f := rootCmd.PersistentFlags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
	for _, f := range []string{"output"} {
		if fl := meCmd.Flags().Lookup(f); fl != nil {
			fl.Changed = false
		}
	}
	if fl := configInitCmd.Flags().Lookup("timeout"); fl != nil {
		fl.Changed = false
	}
}

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute()
	return buf.String(), err
}

// staticIdentity returns a factory that always yields svc.
func staticIdentity(svc driving.IdentityService) IdentityFactory {
	return func(*config.Config) driving.IdentityService { return svc }
}
