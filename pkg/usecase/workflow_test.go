package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aider-tools/aider-automation/pkg/domain/interfaces"
	"github.com/aider-tools/aider-automation/pkg/domain/mock"
	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/aider-tools/aider-automation/pkg/infra"
	"github.com/aider-tools/aider-automation/pkg/usecase"
	"github.com/aider-tools/aider-automation/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.GitHub.Repo = "octocat/hello-world"
	cfg.Normalize()
	return cfg
}

// healthyGitMock covers the environment checks and the happy-path git
// operations; individual tests override the methods they exercise.
func healthyGitMock() *mock.GitMock {
	return &mock.GitMock{
		VersionFunc:      func(ctx context.Context) (string, error) { return "git version 2.43.0", nil },
		IsRepositoryFunc: func(ctx context.Context) bool { return true },
		HasRemoteFunc:    func(ctx context.Context) bool { return true },
		BranchExistsFunc: func(ctx context.Context, name types.BranchName) (bool, error) { return false, nil },
		CreateBranchFunc: func(ctx context.Context, name types.BranchName) error { return nil },
		HasChangesFunc:   func(ctx context.Context) (bool, error) { return true, nil },
		ChangedFilesFunc: func(ctx context.Context) ([]string, error) { return []string{"login.html"}, nil },
		RemoteURLFunc: func(ctx context.Context, remote string) (string, error) {
			return "https://github.com/octocat/hello-world.git", nil
		},
		AddAllFunc: func(ctx context.Context) error { return nil },
		CommitFunc: func(ctx context.Context, message string, allowEmpty bool) (types.CommitSHA, error) {
			return "a1b2c3d4e5f6a7b8", nil
		},
		PushFunc: func(ctx context.Context, remote string, name types.BranchName) error { return nil },
	}
}

func healthyAiderMock(result *model.AiderResult) *mock.AiderMock {
	return &mock.AiderMock{
		VersionFunc: func(ctx context.Context) (string, error) { return "aider 0.45.1", nil },
		RunFunc: func(ctx context.Context, prompt string) (*model.AiderResult, error) {
			return result, nil
		},
	}
}

func healthyGitHubMock() *mock.GitHubMock {
	return &mock.GitHubMock{
		ValidateAccessFunc: func(ctx context.Context) error { return nil },
		DefaultBranchFunc:  func(ctx context.Context) (types.BranchName, error) { return "main", nil },
		BranchExistsFunc:   func(ctx context.Context, name types.BranchName) (bool, error) { return false, nil },
		CreatePullRequestFunc: func(ctx context.Context, input *interfaces.CreatePullRequestInput) (*model.PRResult, error) {
			return &model.PRResult{
				Success: true,
				URL:     "https://github.com/octocat/hello-world/pull/42",
				Number:  42,
			}, nil
		},
	}
}

func newUseCase(git *mock.GitMock, aider *mock.AiderMock, gh *mock.GitHubMock) *usecase.UseCase {
	return usecase.New(testConfig(), infra.New(
		infra.WithGit(git),
		infra.WithAider(aider),
		infra.WithGitHub(gh),
	))
}

func TestExecuteFullPipeline(t *testing.T) {
	gitMock := healthyGitMock()
	aiderMock := healthyAiderMock(&model.AiderResult{
		Success:       true,
		ModifiedFiles: []string{"login.html"},
		Summary:       "added login page",
	})
	ghMock := healthyGitHubMock()
	uc := newUseCase(gitMock, aiderMock, ghMock)

	ctx := logging.CtxWithTime(context.Background(), func() time.Time {
		return time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)
	})

	result := gt.R1(uc.Execute(ctx, &model.WorkflowInput{
		Prompt: "create a login page for the app",
	})).NoError(t)

	gt.True(t, result.Success)
	gt.V(t, result.BranchName).Equal("aider-automation/create-login-page-app-20250601-123045")
	gt.V(t, result.CommitHash).Equal(types.CommitSHA("a1b2c3d4e5f6a7b8"))

	commits := gitMock.CommitCalls()
	gt.A(t, commits).Length(1)
	gt.V(t, commits[0].Message).Equal("feat: added login page")
	gt.True(t, !commits[0].AllowEmpty)

	pushes := gitMock.PushCalls()
	gt.A(t, pushes).Length(1)
	gt.V(t, pushes[0].Remote).Equal("origin")
	gt.V(t, pushes[0].Name).Equal(result.BranchName)

	prs := ghMock.CreatePullRequestCalls()
	gt.A(t, prs).Length(1)
	gt.True(t, strings.Contains(prs[0].Input.Title, "added login page"))
	gt.True(t, strings.Contains(prs[0].Input.Body, "- login.html"))
	gt.V(t, prs[0].Input.Head).Equal(result.BranchName)
	gt.V(t, prs[0].Input.Base).Equal(types.BranchName("main"))

	gt.True(t, result.PRResult.Success)
	gt.V(t, result.PRResult.Number).Equal(types.PRNumber(42))
	gt.True(t, result.Duration > 0)
}

func TestExecuteReusesAssistantCommit(t *testing.T) {
	gitMock := healthyGitMock()
	gitMock.HasChangesFunc = func(ctx context.Context) (bool, error) { return false, nil }
	gitMock.HeadCommitFunc = func(ctx context.Context) (types.CommitSHA, string, error) {
		return "feedface00000000", "feat: assistant auto-commit", nil
	}

	aiderMock := healthyAiderMock(&model.AiderResult{
		Success: true,
		Summary: "refactored parser",
	})
	uc := newUseCase(gitMock, aiderMock, healthyGitHubMock())

	result := gt.R1(uc.Execute(context.Background(), &model.WorkflowInput{
		Prompt: "refactor the parser module",
	})).NoError(t)

	gt.True(t, result.Success)
	gt.V(t, result.CommitHash).Equal(types.CommitSHA("feedface00000000"))
	gt.A(t, gitMock.CommitCalls()).Length(0)
}

func TestExecuteEmptyCommitWithoutHead(t *testing.T) {
	gitMock := healthyGitMock()
	gitMock.HasChangesFunc = func(ctx context.Context) (bool, error) { return false, nil }
	gitMock.HeadCommitFunc = func(ctx context.Context) (types.CommitSHA, string, error) {
		return "", "", errors.New("reference not found")
	}

	aiderMock := healthyAiderMock(&model.AiderResult{Success: true, Summary: "nothing to do"})
	uc := newUseCase(gitMock, aiderMock, healthyGitHubMock())

	result := gt.R1(uc.Execute(context.Background(), &model.WorkflowInput{
		Prompt: "check formatting",
	})).NoError(t)

	gt.True(t, result.Success)
	commits := gitMock.CommitCalls()
	gt.A(t, commits).Length(1)
	gt.True(t, commits[0].AllowEmpty)
	gt.V(t, commits[0].Message).Equal("feat: no file changes")
}

func TestExecutePRFailureIsNotFatal(t *testing.T) {
	ghMock := healthyGitHubMock()
	ghMock.CreatePullRequestFunc = func(ctx context.Context, input *interfaces.CreatePullRequestInput) (*model.PRResult, error) {
		return &model.PRResult{
			Success:      false,
			ErrorMessage: "Validation Failed (A pull request already exists)",
		}, nil
	}

	aiderMock := healthyAiderMock(&model.AiderResult{
		Success:       true,
		ModifiedFiles: []string{"main.go"},
		Summary:       "fixed shutdown handling",
	})
	uc := newUseCase(healthyGitMock(), aiderMock, ghMock)

	result := gt.R1(uc.Execute(context.Background(), &model.WorkflowInput{
		Prompt: "fix graceful shutdown",
	})).NoError(t)

	gt.True(t, result.Success)
	gt.True(t, !result.PRResult.Success)
	gt.True(t, strings.Contains(result.PRResult.ErrorMessage, "Validation Failed"))
}

func TestExecuteRejectsDirtySwitch(t *testing.T) {
	gitMock := healthyGitMock()
	gitMock.BranchExistsFunc = func(ctx context.Context, name types.BranchName) (bool, error) { return true, nil }
	gitMock.CurrentBranchFunc = func(ctx context.Context) (types.BranchName, error) { return "main", nil }
	gitMock.HasChangesFunc = func(ctx context.Context) (bool, error) { return true, nil }

	aiderMock := healthyAiderMock(&model.AiderResult{Success: true})
	uc := newUseCase(gitMock, aiderMock, healthyGitHubMock())

	result, err := uc.Execute(context.Background(), &model.WorkflowInput{
		Prompt:     "add feature",
		BranchName: "existing-work",
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrUncommittedChanges))

	gt.True(t, !result.Success)
	gt.A(t, gitMock.SwitchBranchCalls()).Length(0)
	gt.A(t, gitMock.PushCalls()).Length(0)
	gt.True(t, result.Duration > 0)
}

func TestExecuteAssistantFailureAborts(t *testing.T) {
	gitMock := healthyGitMock()
	aiderMock := healthyAiderMock(&model.AiderResult{
		Success:      false,
		ErrorMessage: "aider exited with code 2",
	})
	uc := newUseCase(gitMock, aiderMock, healthyGitHubMock())

	result, err := uc.Execute(context.Background(), &model.WorkflowInput{
		Prompt: "do something",
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrAiderExecution))
	gt.True(t, !result.Success)
	gt.A(t, gitMock.CommitCalls()).Length(0)
	gt.A(t, gitMock.PushCalls()).Length(0)
}

func TestExecuteFailsOnMissingDependencies(t *testing.T) {
	gitMock := healthyGitMock()
	gitMock.VersionFunc = func(ctx context.Context) (string, error) {
		return "", errors.New("executable not found")
	}

	aiderMock := healthyAiderMock(&model.AiderResult{Success: true})
	uc := newUseCase(gitMock, aiderMock, healthyGitHubMock())

	_, err := uc.Execute(context.Background(), &model.WorkflowInput{Prompt: "anything"})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrDependency))
	gt.A(t, aiderMock.RunCalls()).Length(0)
}
