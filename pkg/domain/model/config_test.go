package model_test

import (
	"errors"
	"testing"

	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseGitHubRepo(t *testing.T) {
	repo := gt.R1(model.ParseGitHubRepo("octocat/hello-world")).NoError(t)
	gt.V(t, repo.Owner).Equal("octocat")
	gt.V(t, repo.Name).Equal("hello-world")
	gt.V(t, repo.String()).Equal("octocat/hello-world")
}

func TestParseGitHubRepoRejectsMalformed(t *testing.T) {
	for _, input := range []string{"", "noslash", "/repo", "owner/", "a/b/c", "https://github.com/a/b"} {
		_, err := model.ParseGitHubRepo(input)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrConfig))
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &model.Config{
		GitHub: model.GitHubConfig{Token: "ghp_xxx", Repo: "octocat/hello-world"},
	}
	cfg.Normalize()
	gt.NoError(t, cfg.Validate())
}

func TestConfigValidateRequiresCredentials(t *testing.T) {
	cfg := &model.Config{
		GitHub: model.GitHubConfig{Repo: "octocat/hello-world"},
	}
	cfg.Normalize()

	err := cfg.Validate()
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrConfig))
}

func TestConfigValidateAcceptsAppAuth(t *testing.T) {
	cfg := &model.Config{
		GitHub: model.GitHubConfig{
			Repo:           "octocat/hello-world",
			AppID:          12345,
			InstallationID: 67890,
			PrivateKey:     "/path/to/key.pem",
		},
	}
	cfg.Normalize()
	gt.NoError(t, cfg.Validate())
	gt.True(t, cfg.GitHub.HasAppAuth())
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := &model.Config{}
	cfg.Normalize()

	gt.V(t, cfg.Git.DefaultBranch).Equal("main")
	gt.V(t, cfg.Git.BranchPrefix).Equal("aider-automation/")
	gt.V(t, cfg.Templates.CommitMessage).Equal("feat: {summary}")
	gt.V(t, cfg.Templates.PRTitle).Equal("AI-generated changes: {summary}")
}

func TestNormalizeBranchPrefixSlash(t *testing.T) {
	cfg := &model.Config{Git: model.GitConfig{BranchPrefix: "bot"}}
	cfg.Normalize()
	gt.V(t, cfg.Git.BranchPrefix).Equal("bot/")

	cfg2 := &model.Config{Git: model.GitConfig{BranchPrefix: "bot/"}}
	cfg2.Normalize()
	gt.V(t, cfg2.Git.BranchPrefix).Equal("bot/")
}

func TestDefaultConfigIsValidAfterSubstitution(t *testing.T) {
	cfg := model.DefaultConfig()
	// The default carries a ${GITHUB_TOKEN} reference; once it resolves to
	// any non-empty value the config validates as-is.
	cfg.GitHub.Token = "ghp_resolved"
	gt.NoError(t, cfg.GitHub.Validate())
	gt.V(t, cfg.Git.DefaultBranch).Equal("main")
}
