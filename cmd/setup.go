package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/soundfolio/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the embedded example configuration to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		if !cmd.Bool("force") {
			return fmt.Errorf("%w: %s already exists (use --force to overwrite)", shared.ErrInvalidArgument, configPath)
		}
		if err := os.Remove(configPath); err != nil {
			return fmt.Errorf("failed to remove existing config: %w", err)
		}
	}

	r.logger.Info("creating config file from template", "path", configPath)
	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("created config does not load: %w", err)
	}

	r.writeSuccess("Config written to %s", configPath)
	r.writePlain("Collection service: %s\n", config.Remote.BaseURL)
	r.writePlainln("Next steps:")
	r.writePlain("1. Edit remote.base_url if your catalog runs elsewhere\n")
	r.writePlain("2. Run 'soundfolio dev-server' for a local catalog, then 'soundfolio tui'\n")
	return nil
}
