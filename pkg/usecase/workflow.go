package usecase

import (
	"context"
	"time"

	"github.com/aider-tools/aider-automation/pkg/domain/interfaces"
	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/aider-tools/aider-automation/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const emptyCommitSummary = "no file changes"

// Execute runs the whole automation pipeline: validate the environment,
// resolve the working branch, run the coding assistant, commit, push, and
// open a pull request. Every step before the pull request aborts the run on
// failure; a failed pull request is recorded in the result but does not fail
// the workflow, since the pushed branch is already usable.
func (x *UseCase) Execute(ctx context.Context, input *model.WorkflowInput) (*model.WorkflowResult, error) {
	startedAt := time.Now()
	result := &model.WorkflowResult{}
	defer func() {
		result.Duration = time.Since(startedAt)
	}()

	logger := logging.From(ctx)
	logger.Info("starting workflow", "prompt_length", len(input.Prompt), "branch", input.BranchName)

	fail := func(err error) (*model.WorkflowResult, error) {
		result.Err = err
		return result, err
	}

	// Step 1: environment
	if err := x.ValidateEnvironment(ctx); err != nil {
		return fail(err)
	}

	// Step 2: branch
	var branch types.BranchName
	var err error
	if input.BranchName != "" {
		branch, err = x.ResolveBranch(ctx, input.Prompt, input.BranchName)
	} else {
		branch, err = x.CreateUniqueBranch(ctx, input.Prompt, "")
	}
	if err != nil {
		return fail(err)
	}
	result.BranchName = branch

	// Step 3: assistant
	aiderResult, err := x.clients.Aider().Run(ctx, input.Prompt)
	if err != nil {
		return fail(err)
	}
	result.AiderResult = aiderResult
	if !aiderResult.Success {
		return fail(goerr.Wrap(types.ErrAiderExecution, "coding assistant reported failure",
			goerr.V("detail", aiderResult.ErrorMessage),
		))
	}
	if len(aiderResult.ModifiedFiles) == 0 {
		logger.Warn("assistant reported no modified files; output parsing may have missed them")
	}

	// Step 4: commit
	sha, err := x.commitChanges(ctx, input.Prompt, aiderResult)
	if err != nil {
		return fail(err)
	}
	result.CommitHash = sha

	// Step 5: push
	if err := x.clients.Git().Push(ctx, "origin", branch); err != nil {
		return fail(err)
	}
	logger.Info("pushed branch", "branch", branch, "commit", sha.Short())

	// Step 6: pull request. Failure here is not fatal.
	prResult, err := x.clients.GitHub().CreatePullRequest(ctx, &interfaces.CreatePullRequestInput{
		Title: x.cfg.Templates.RenderPRTitle(aiderResult, input.Prompt),
		Body:  x.cfg.Templates.RenderPRBody(aiderResult, input.Prompt),
		Head:  branch,
		Base:  types.BranchName(x.cfg.Git.DefaultBranch),
	})
	if err != nil {
		logger.Warn("pull request step failed", "error", err)
		prResult = &model.PRResult{Success: false, ErrorMessage: err.Error()}
	}
	result.PRResult = prResult
	if prResult.Success {
		logger.Info("created pull request", "url", prResult.URL, "number", prResult.Number)
	} else {
		logger.Warn("pull request was not created; the branch is pushed and can be opened manually",
			"branch", branch, "detail", prResult.ErrorMessage)
	}

	result.Success = true
	return result, nil
}

// commitChanges records the assistant's work. With staged-or-unstaged changes
// present, everything is added and committed. With a clean tree, an existing
// HEAD is treated as the assistant's own auto-commit and reused; only a
// repository with no commits at all gets an empty marker commit.
func (x *UseCase) commitChanges(ctx context.Context, prompt string, aiderResult *model.AiderResult) (types.CommitSHA, error) {
	logger := logging.From(ctx)

	dirty, err := x.clients.Git().HasChanges(ctx)
	if err != nil {
		return "", err
	}

	if dirty {
		if files, err := x.clients.Git().ChangedFiles(ctx); err == nil {
			logger.Debug("staging changes", "files", files)
		}
		if err := x.clients.Git().AddAll(ctx); err != nil {
			return "", err
		}
		msg := x.cfg.Templates.RenderCommitMessage(aiderResult.Summary, prompt)
		sha, err := x.clients.Git().Commit(ctx, msg, false)
		if err != nil {
			return "", err
		}
		logger.Info("committed changes", "commit", sha.Short(), "message", msg)
		return sha, nil
	}

	// Clean tree: aider may have committed on its own.
	if sha, subject, err := x.clients.Git().HeadCommit(ctx); err == nil {
		logger.Info("working tree clean, reusing existing commit",
			"commit", sha.Short(), "subject", subject)
		return sha, nil
	}

	msg := x.cfg.Templates.RenderCommitMessage(emptyCommitSummary, prompt)
	sha, err := x.clients.Git().Commit(ctx, msg, true)
	if err != nil {
		return "", err
	}
	logger.Info("created empty commit", "commit", sha.Short())
	return sha, nil
}
