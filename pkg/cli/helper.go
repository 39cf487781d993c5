package cli

import (
	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/infra"
	"github.com/aider-tools/aider-automation/pkg/infra/aider"
	"github.com/aider-tools/aider-automation/pkg/infra/githubx"
	"github.com/aider-tools/aider-automation/pkg/infra/gitx"
	"github.com/aider-tools/aider-automation/pkg/usecase"
)

// buildUseCase wires the real clients for the current working directory.
func buildUseCase(cfg *model.Config) (*usecase.UseCase, error) {
	ghClient, err := githubx.New(&cfg.GitHub, cfg.Git.DefaultBranch)
	if err != nil {
		return nil, err
	}

	clients := infra.New(
		infra.WithGit(gitx.New(".")),
		infra.WithAider(aider.New(&cfg.Aider)),
		infra.WithGitHub(ghClient),
	)

	return usecase.New(cfg, clients), nil
}
