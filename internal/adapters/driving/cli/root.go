package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/custodia-labs/adoid/internal/config"
	"github.com/custodia-labs/adoid/internal/core/domain"
	"github.com/custodia-labs/adoid/internal/core/ports/driving"
	"github.com/custodia-labs/adoid/internal/logger"
)

// Exit codes returned by ExitCode.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitValidation     = 2
	ExitAuthentication = 3
)

var (
	// version is reported by the version command and the MCP server; main sets it with SetVersion.
	version = "dev"

	// Verbose enables debug logging.
	verbose bool

	// Connection flags shared by every command.
	configFile string
	serverURL  string
	authMethod string

	// Injected by SetServices.
	identityFactory   IdentityFactory
	defaultConfigPath string
)

// IdentityFactory builds an identity service for a loaded configuration.
// Services are built per command because flags are only known after parsing.
type IdentityFactory func(cfg *config.Config) driving.IdentityService

// Services holds configuration for CLI commands.
type Services struct {
	Identity IdentityFactory
	// ConfigPath is the settings file used when --config is not given.
	ConfigPath string
}

// SetServices injects service implementations for CLI commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	identityFactory = s.Identity
	defaultConfigPath = s.ConfigPath
}

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "adoid",
	Short: "Show who you are authenticated as in Azure DevOps",
	Long: `adoid resolves the identity behind your Azure DevOps credentials.

It works against Azure DevOps Services (dev.azure.com, *.visualstudio.com) and
Azure DevOps Server collections, using a personal access token, the Azure CLI
login, or the default Azure credential chain.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrValidation):
		return ExitValidation
	case errors.Is(err, domain.ErrAuthentication):
		return ExitAuthentication
	default:
		return ExitFailure
	}
}

// configPath returns the settings file in effect for this invocation.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	return defaultConfigPath
}

// loadConfig layers flags over environment, file and defaults.
func loadConfig() (*config.Config, error) {
	v, err := config.NewViper(configPath())
	if err != nil {
		return nil, err
	}
	if err := bindFlags(v); err != nil {
		return nil, err
	}
	return config.Load(v)
}

func bindFlags(v *viper.Viper) error {
	flags := rootCmd.PersistentFlags()
	if err := v.BindPFlag(config.KeyServerURL, flags.Lookup("server-url")); err != nil {
		return err
	}
	return v.BindPFlag(config.KeyAuthMethod, flags.Lookup("auth-method"))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "settings file (default ~/.adoid/config.toml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server-url", "",
		"organization or collection URL (env AZURE_DEVOPS_ORG_URL)")
	rootCmd.PersistentFlags().StringVar(&authMethod, "auth-method", "",
		"pat, azure-cli or azure-identity (env AZURE_DEVOPS_AUTH_METHOD)")

	// Use PersistentPreRunE to set verbose mode before any command executes
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return nil
	}
}
