package cli

import (
	"context"
	"os"

	"github.com/aider-tools/aider-automation/pkg/cli/config"
	"github.com/aider-tools/aider-automation/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func initCommand(configPath *string) *cli.Command {
	var force bool

	return &cli.Command{
		Name:  "init",
		Usage: "Write a starter config file",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Overwrite an existing config file",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := config.WriteDefault(*configPath, force); err != nil {
				return err
			}

			logging.From(ctx).Info("wrote config file", "path", *configPath)
			printInitNotes(os.Stdout, *configPath)
			return nil
		},
	}
}
