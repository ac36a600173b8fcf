package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/adoid/internal/adapters/driven/config/file"
	"github.com/custodia-labs/adoid/internal/connectors/azuredevops"
	"github.com/custodia-labs/adoid/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	Long: `Write or inspect the adoid settings file.

Personal access tokens are never written to the settings file. Provide them
through AZURE_DEVOPS_PAT instead.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write connection settings to the settings file",
	Long: `Write the organization URL and authentication method to the settings file.

Examples:
  adoid config init --server-url https://dev.azure.com/contoso --auth-method azure-cli
  adoid config init --server-url https://tfs.corp.local/DefaultCollection --timeout 10s`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// Flags for config init.
var configInitTimeout string

func init() {
	configInitCmd.Flags().StringVar(&configInitTimeout, "timeout", "", "request timeout, e.g. 30s")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configPath()
	if path == "" {
		return errors.New("settings path not configured")
	}
	if serverURL == "" {
		return domain.NewValidationError("--server-url is required", nil)
	}
	if _, err := azuredevops.ExtractOrganization(serverURL); err != nil {
		return err
	}

	store := file.NewStore(path)
	doc, err := store.Load()
	if err != nil {
		return err
	}

	doc.ServerURL = serverURL
	if authMethod != "" {
		doc.AuthMethod = string(domain.ParseAuthMethod(authMethod))
	}
	if configInitTimeout != "" {
		doc.Timeout = configInitTimeout
	}

	if err := store.Save(doc); err != nil {
		return err
	}

	cmd.Printf("Wrote settings to %s\n", store.Path())
	if domain.ParseAuthMethod(doc.AuthMethod) == domain.AuthMethodPAT {
		cmd.Println("Set AZURE_DEVOPS_PAT in your environment; the token is not stored.")
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc := &file.Document{
		ServerURL:  cfg.ServerURL,
		AuthMethod: string(cfg.Auth().Method),
		Timeout:    cfg.Timeout.String(),
		RateLimit: &file.RateLimit{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		},
	}

	if path := configPath(); path != "" {
		cmd.Printf("# settings file: %s\n", path)
	}
	if err := file.Encode(cmd.OutOrStdout(), doc); err != nil {
		return err
	}

	pat := "not set"
	if cfg.PAT != "" {
		pat = "set"
	}
	cmd.Printf("# personal access token: %s\n", pat)
	return nil
}
