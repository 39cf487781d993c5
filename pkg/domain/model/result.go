package model

import (
	"time"

	"github.com/aider-tools/aider-automation/pkg/domain/types"
)

// AiderResult is the parsed outcome of one aider invocation.
type AiderResult struct {
	Success       bool
	ModifiedFiles []string
	Summary       string
	Output        string
	ErrorMessage  string
}

// PRResult is the outcome of the pull request creation step. A failed PR
// creation does not fail the whole workflow, so it carries its own flag.
type PRResult struct {
	Success      bool
	URL          string
	Number       types.PRNumber
	ErrorMessage string
}

// WorkflowResult is the terminal result of one pipeline run, created exactly
// once when Execute returns.
type WorkflowResult struct {
	Success     bool
	BranchName  types.BranchName
	CommitHash  types.CommitSHA
	AiderResult *AiderResult
	PRResult    *PRResult
	Err         error
	Duration    time.Duration
}

// WorkflowInput carries the caller-supplied parameters of one run.
type WorkflowInput struct {
	Prompt     string
	BranchName types.BranchName // optional explicit branch name
}
