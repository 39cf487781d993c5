package cli

import (
	"context"
	"os"
	"strings"

	"github.com/aider-tools/aider-automation/pkg/cli/config"
	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/aider-tools/aider-automation/pkg/utils/errutil"
	"github.com/aider-tools/aider-automation/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(ctx context.Context, argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string

		configPath string
		branchName string

		sentryCfg config.Sentry
	)

	rootFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to config file",
			Aliases:     []string{"c"},
			Sources:     cli.EnvVars("AIDER_AUTOMATION_CONFIG"),
			Destination: &configPath,
			Value:       config.DefaultPath,
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Branch to work on (derived from the prompt if omitted)",
			Aliases:     []string{"b"},
			Sources:     cli.EnvVars("AIDER_AUTOMATION_BRANCH"),
			Destination: &branchName,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [trace|debug|info|warn|error]",
			Aliases:     []string{"l"},
			Sources:     cli.EnvVars("AIDER_AUTOMATION_LOG_LEVEL"),
			Destination: &logLevel,
			Value:       "info",
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [text|json]",
			Aliases:     []string{"f"},
			Sources:     cli.EnvVars("AIDER_AUTOMATION_LOG_FORMAT"),
			Destination: &logFormat,
			Value:       "text",
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [-|stdout|stderr|<file>]",
			Aliases:     []string{"o"},
			Sources:     cli.EnvVars("AIDER_AUTOMATION_LOG_OUTPUT"),
			Destination: &logOutput,
			Value:       "-",
		},
	}

	app := &cli.Command{
		Name:      "aider-automation",
		Usage:     "Run the aider coding assistant and publish the result as a GitHub pull request",
		ArgsUsage: `"<prompt>"`,
		Flags: slice.Flatten(
			rootFlags,
			sentryCfg.Flags(),
		),
		Commands: []*cli.Command{
			initCommand(&configPath),
			checkCommand(&configPath),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			prompt := strings.TrimSpace(c.Args().First())
			if prompt == "" {
				return goerr.Wrap(types.ErrInvalidOption, "prompt is required",
					goerr.V("usage", `aider-automation "<prompt>" [--branch <name>]`),
				)
			}
			if c.Args().Len() > 1 {
				return goerr.Wrap(types.ErrInvalidOption, "too many arguments; quote the prompt",
					goerr.V("args", c.Args().Slice()),
				)
			}

			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			uc, err := buildUseCase(cfg)
			if err != nil {
				return err
			}

			workflowID, ctx := logging.CtxWorkflowID(ctx)
			ctx = logging.With(ctx, logging.Default().With("workflow_id", workflowID))

			result, err := uc.Execute(ctx, &model.WorkflowInput{
				Prompt:     prompt,
				BranchName: types.BranchName(branchName),
			})
			if err != nil {
				errutil.HandleError(ctx, "workflow failed", err)
				return err
			}

			printResult(os.Stdout, result)
			return nil
		},
	}

	if err := app.Run(ctx, argv); err != nil {
		printErrorReport(os.Stderr, model.BuildErrorReport(err))
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
