package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	mcpserver "github.com/custodia-labs/adoid/internal/adapters/driving/mcp"
	"github.com/custodia-labs/adoid/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the get_me tool over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the get_me tool.

Connection settings are read once at start-up, the same way as for 'adoid me'.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

// serveMCP runs the tool server. Tests replace it to avoid binding stdio.
var serveMCP = func(ctx context.Context, s *mcpserver.Server) error {
	return s.Run(ctx)
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	if identityFactory == nil {
		return errors.New("identity service not configured")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	server := mcpserver.NewServer(identityFactory(cfg), mcpserver.Connection{
		ServerURL: cfg.ServerURL,
		Auth:      cfg.Auth(),
	}, version)

	logger.Info("mcp: serving %s for %s", mcpserver.ToolGetMe, cfg.ServerURL)
	return serveMCP(cmd.Context(), server)
}
