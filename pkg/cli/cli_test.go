package cli_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aider-tools/aider-automation/pkg/cli"
	"github.com/aider-tools/aider-automation/pkg/cli/config"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestInitCommand(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	path := filepath.Join(t.TempDir(), "config.json")

	gt.NoError(t, cli.New().Run(context.Background(),
		[]string{"aider-automation", "-c", path, "init"}))

	cfg := gt.R1(config.Load(path)).NoError(t)
	gt.V(t, cfg.GitHub.Token).Equal(types.GitHubToken("ghp_test"))
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	gt.NoError(t, cli.New().Run(context.Background(),
		[]string{"aider-automation", "-c", path, "init"}))

	err := cli.New().Run(context.Background(),
		[]string{"aider-automation", "-c", path, "init"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrConfig))

	gt.NoError(t, cli.New().Run(context.Background(),
		[]string{"aider-automation", "-c", path, "init", "--force"}))
}

func TestRunWithoutPrompt(t *testing.T) {
	err := cli.New().Run(context.Background(), []string{"aider-automation"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestRunWithUnquotedPrompt(t *testing.T) {
	err := cli.New().Run(context.Background(),
		[]string{"aider-automation", "fix", "the", "bug"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestRunWithMissingConfig(t *testing.T) {
	err := cli.New().Run(context.Background(),
		[]string{"aider-automation", "-c", filepath.Join(t.TempDir(), "absent.json"), "do something"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrConfig))
}
