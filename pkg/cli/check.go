package cli

import (
	"context"
	"os"

	"github.com/aider-tools/aider-automation/pkg/cli/config"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func checkCommand(configPath *string) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Verify that all dependencies are available",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			uc, err := buildUseCase(cfg)
			if err != nil {
				return err
			}

			report := uc.CheckEnvironment(ctx)
			printEnvReport(os.Stdout, report)

			if !report.OK() {
				return goerr.Wrap(types.ErrDependency, "environment check failed",
					goerr.V("missing", report.Missing),
				)
			}
			return nil
		},
	}
}
