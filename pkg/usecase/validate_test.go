package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aider-tools/aider-automation/pkg/domain/mock"
	"github.com/aider-tools/aider-automation/pkg/infra"
	"github.com/aider-tools/aider-automation/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestCheckEnvironmentAllHealthy(t *testing.T) {
	uc := newUseCase(healthyGitMock(), healthyAiderMock(nil), healthyGitHubMock())

	report := uc.CheckEnvironment(context.Background())
	gt.True(t, report.OK())
	gt.V(t, report.GitVersion).Equal("git version 2.43.0")
	gt.V(t, report.AiderVersion).Equal("aider 0.45.1")
}

func TestCheckEnvironmentCollectsAllFailures(t *testing.T) {
	gitMock := healthyGitMock()
	gitMock.IsRepositoryFunc = func(ctx context.Context) bool { return false }

	aiderMock := &mock.AiderMock{
		VersionFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		},
	}
	ghMock := healthyGitHubMock()
	ghMock.ValidateAccessFunc = func(ctx context.Context) error {
		return errors.New("401 bad credentials")
	}

	uc := usecase.New(testConfig(), infra.New(
		infra.WithGit(gitMock),
		infra.WithAider(aiderMock),
		infra.WithGitHub(ghMock),
	))

	report := uc.CheckEnvironment(context.Background())
	gt.True(t, !report.OK())
	gt.A(t, report.Missing).Length(3)
}
