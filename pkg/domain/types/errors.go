package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// Workflow error kinds. Every failure surfaced by the tool wraps one of
	// these so the CLI can map it to suggestions and recovery actions.
	ErrConfig         = goerr.New("configuration error")
	ErrDependency     = goerr.New("dependency error")
	ErrGitOperation   = goerr.New("git operation failed")
	ErrAiderExecution = goerr.New("aider execution failed")
	ErrGitHubAPI      = goerr.New("github api error")

	ErrUncommittedChanges  = goerr.New("uncommitted changes in working tree")
	ErrBranchNameExhausted = goerr.New("could not generate a unique branch name")
	ErrRateLimited         = goerr.New("github api rate limited")
)
