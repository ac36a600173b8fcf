package main

import (
	"os"

	"github.com/custodia-labs/adoid/internal/adapters/driven/auth"
	"github.com/custodia-labs/adoid/internal/adapters/driven/config/file"
	"github.com/custodia-labs/adoid/internal/adapters/driving/cli"
	"github.com/custodia-labs/adoid/internal/config"
	"github.com/custodia-labs/adoid/internal/connectors/azuredevops"
	"github.com/custodia-labs/adoid/internal/core/ports/driving"
	"github.com/custodia-labs/adoid/internal/core/services"
	"github.com/custodia-labs/adoid/internal/logger"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cli.SetVersion(version)

	configPath, err := file.DefaultPath()
	if err != nil {
		// Without a home directory settings come from flags and environment only.
		logger.Warn("settings file unavailable: %v", err)
	}

	// The client is built after flags are parsed so timeouts and pacing follow the loaded settings
	resolver := auth.NewResolver()
	cli.SetServices(&cli.Services{
		Identity: func(cfg *config.Config) driving.IdentityService {
			return services.NewIdentityService(resolver, azuredevops.NewClient(cfg.Client()))
		},
		ConfigPath: configPath,
	})

	return cli.ExitCode(cli.Execute())
}
