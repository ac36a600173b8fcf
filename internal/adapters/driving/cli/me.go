package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/adoid/internal/core/domain"
)

// Output formats for the me command.
const (
	outputText = "text"
	outputJSON = "json"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	valueStyle = lipgloss.NewStyle()
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the currently authenticated user",
	Long: `Show the id, display name and email address of the identity behind the
configured credentials.

Examples:
  # Using the Azure CLI login
  adoid me --server-url https://dev.azure.com/contoso --auth-method azure-cli

  # Using a personal access token from the environment
  AZURE_DEVOPS_AUTH_METHOD=pat AZURE_DEVOPS_PAT=xxx adoid me -o json`,
	Args: cobra.NoArgs,
	RunE: runMe,
}

// Flags for me.
var meOutput string

func init() {
	meCmd.Flags().StringVarP(&meOutput, "output", "o", outputText, "output format: text or json")
	rootCmd.AddCommand(meCmd)
}

func runMe(cmd *cobra.Command, _ []string) error {
	if identityFactory == nil {
		return errors.New("identity service not configured")
	}
	if meOutput != outputText && meOutput != outputJSON {
		return domain.NewValidationError(fmt.Sprintf("unsupported output format %q", meOutput), nil)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.ServerURL == "" {
		return domain.NewValidationError(
			"server URL not configured: pass --server-url, set AZURE_DEVOPS_ORG_URL or run 'adoid config init'",
			nil)
	}

	profile, err := identityFactory(cfg).GetMe(cmd.Context(), cfg.ServerURL, cfg.Auth())
	if err != nil {
		return err
	}

	if meOutput == outputJSON {
		return writeProfileJSON(cmd.OutOrStdout(), profile)
	}
	writeProfileText(cmd.OutOrStdout(), profile)
	return nil
}

func writeProfileJSON(w io.Writer, profile *domain.UserProfile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(profile); err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return nil
}

func writeProfileText(w io.Writer, profile *domain.UserProfile) {
	styled := isTerminal(w)
	rows := []struct{ label, value string }{
		{"ID", profile.ID},
		{"Name", profile.DisplayName},
		{"Email", profile.Email},
	}
	for _, row := range rows {
		label := fmt.Sprintf("%-6s", row.label+":")
		value := row.value
		if styled {
			label = labelStyle.Render(label)
			if value == "" {
				value = emptyStyle.Render("(none)")
			} else {
				value = valueStyle.Render(value)
			}
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", label, value)
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
