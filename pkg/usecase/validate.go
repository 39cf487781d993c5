package usecase

import (
	"context"
	"strings"

	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/aider-tools/aider-automation/pkg/infra/gitx"
	"github.com/aider-tools/aider-automation/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// EnvironmentReport lists what the dependency checks found. The check
// command renders it; the workflow only cares whether Missing is empty.
type EnvironmentReport struct {
	AiderVersion string
	GitVersion   string
	Missing      []string
}

func (x *EnvironmentReport) OK() bool {
	return len(x.Missing) == 0
}

// CheckEnvironment probes every external dependency: the aider binary, the
// git binary, the repository and its remote, and GitHub API access. All
// checks run even after a failure so the report is complete.
func (x *UseCase) CheckEnvironment(ctx context.Context) *EnvironmentReport {
	report := &EnvironmentReport{}

	if v, err := x.clients.Aider().Version(ctx); err != nil {
		report.Missing = append(report.Missing, "aider - coding assistant is not installed or not runnable")
	} else {
		report.AiderVersion = v
	}

	if v, err := x.clients.Git().Version(ctx); err != nil {
		report.Missing = append(report.Missing, "git - version control binary is not installed")
	} else {
		report.GitVersion = v

		if !x.clients.Git().IsRepository(ctx) {
			report.Missing = append(report.Missing, "git-repo - current directory is not a git repository")
		} else if !x.clients.Git().HasRemote(ctx) {
			report.Missing = append(report.Missing, "git-remote - repository has no configured remote")
		} else {
			x.checkRemoteMatchesConfig(ctx)
		}
	}

	if err := x.clients.GitHub().ValidateAccess(ctx); err != nil {
		logging.From(ctx).Debug("github access validation failed", "error", err)
		report.Missing = append(report.Missing, "github-access - GitHub API access failed, check the token")
	} else if actual, err := x.clients.GitHub().DefaultBranch(ctx); err == nil &&
		string(actual) != x.cfg.Git.DefaultBranch {
		logging.From(ctx).Warn("configured default branch differs from the repository's",
			"configured", x.cfg.Git.DefaultBranch,
			"actual", actual,
		)
	}

	return report
}

// checkRemoteMatchesConfig warns when the origin remote points at a different
// repository than the config. A mismatch is suspicious but not fatal: forks
// and renamed repositories are legitimate setups.
func (x *UseCase) checkRemoteMatchesConfig(ctx context.Context) {
	url, err := x.clients.Git().RemoteURL(ctx, "origin")
	if err != nil {
		return
	}

	repo, err := gitx.ParseRepoFromURL(url)
	if err != nil {
		logging.From(ctx).Warn("origin remote URL is not a recognized GitHub URL", "url", url)
		return
	}

	if repo.String() != x.cfg.GitHub.Repo {
		logging.From(ctx).Warn("origin remote does not match the configured repository",
			"remote", repo.String(),
			"configured", x.cfg.GitHub.Repo,
		)
	}
}

// ValidateEnvironment is the fail-fast form used as workflow step 1.
func (x *UseCase) ValidateEnvironment(ctx context.Context) error {
	report := x.CheckEnvironment(ctx)
	if report.OK() {
		return nil
	}

	return goerr.Wrap(types.ErrDependency, "missing or unavailable dependencies:\n- "+
		strings.Join(report.Missing, "\n- "),
		goerr.V("missing", report.Missing),
	)
}
