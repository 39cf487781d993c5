package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . Git Aider GitHub

import (
	"context"

	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
)

// Git is the local repository adapter. Mutations shell out to the installed
// git binary; read-only inspection goes through go-git.
type Git interface {
	Version(ctx context.Context) (string, error)
	IsRepository(ctx context.Context) bool
	HasRemote(ctx context.Context) bool

	BranchExists(ctx context.Context, name types.BranchName) (bool, error)
	CreateBranch(ctx context.Context, name types.BranchName) error
	SwitchBranch(ctx context.Context, name types.BranchName) error
	CurrentBranch(ctx context.Context) (types.BranchName, error)

	HasChanges(ctx context.Context) (bool, error)
	ChangedFiles(ctx context.Context) ([]string, error)
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string, allowEmpty bool) (types.CommitSHA, error)
	HeadCommit(ctx context.Context) (types.CommitSHA, string, error)

	Push(ctx context.Context, remote string, name types.BranchName) error
	RemoteURL(ctx context.Context, remote string) (string, error)
}

// Aider invokes the external coding assistant process.
type Aider interface {
	Version(ctx context.Context) (string, error)
	Run(ctx context.Context, prompt string) (*model.AiderResult, error)
}

// GitHub is the hosting API client.
type GitHub interface {
	ValidateAccess(ctx context.Context) error
	BranchExists(ctx context.Context, name types.BranchName) (bool, error)
	DefaultBranch(ctx context.Context) (types.BranchName, error)
	CreatePullRequest(ctx context.Context, input *CreatePullRequestInput) (*model.PRResult, error)
}

type CreatePullRequestInput struct {
	Title string
	Body  string
	Head  types.BranchName
	Base  types.BranchName
}
