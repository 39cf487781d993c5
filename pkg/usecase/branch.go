package usecase

import (
	"context"
	"fmt"

	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/aider-tools/aider-automation/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const maxBranchSuffixAttempts = 10

// CreateUniqueBranch derives a branch name from the prompt (or the explicit
// base name), resolves collisions by appending a numeric suffix, and creates
// the branch. The local repository is the source of truth for existence.
func (x *UseCase) CreateUniqueBranch(ctx context.Context, prompt, baseName string) (types.BranchName, error) {
	candidate := model.GenerateBranchName(prompt, baseName, x.cfg.Git.BranchPrefix, logging.CtxTime(ctx))

	name := candidate
	for attempt := 1; ; attempt++ {
		taken, err := x.branchTaken(ctx, name)
		if err != nil {
			return "", err
		}
		if !taken {
			break
		}
		if attempt > maxBranchSuffixAttempts {
			return "", goerr.Wrap(types.ErrBranchNameExhausted,
				"could not find a free branch name",
				goerr.V("candidate", candidate),
				goerr.V("attempts", maxBranchSuffixAttempts),
			)
		}
		name = types.BranchName(fmt.Sprintf("%s-%d", candidate, attempt))
	}

	if err := x.clients.Git().CreateBranch(ctx, name); err != nil {
		return "", err
	}

	logging.From(ctx).Info("created branch", "branch", name)
	return name, nil
}

// branchTaken reports whether the name is in use locally or on the remote.
// The remote check is best-effort: when it fails the name is assumed free,
// since push would surface a real collision anyway.
func (x *UseCase) branchTaken(ctx context.Context, name types.BranchName) (bool, error) {
	exists, err := x.clients.Git().BranchExists(ctx, name)
	if err != nil || exists {
		return exists, err
	}

	remote, err := x.clients.GitHub().BranchExists(ctx, name)
	if err != nil {
		logging.From(ctx).Warn("could not check remote branch, assuming it is free",
			"branch", name, "error", err)
		return false, nil
	}
	return remote, nil
}

// ResolveBranch makes the named branch the current one. A missing branch is
// created; the current branch is a no-op; an existing branch is switched to,
// but never over uncommitted changes. When the switch itself fails, a fresh
// uniquely-named branch is created instead so the workflow can proceed.
func (x *UseCase) ResolveBranch(ctx context.Context, prompt string, name types.BranchName) (types.BranchName, error) {
	logger := logging.From(ctx)

	exists, err := x.clients.Git().BranchExists(ctx, name)
	if err != nil {
		return "", err
	}

	if !exists {
		if err := x.clients.Git().CreateBranch(ctx, name); err != nil {
			return "", err
		}
		logger.Info("created branch", "branch", name)
		return name, nil
	}

	current, err := x.clients.Git().CurrentBranch(ctx)
	if err != nil {
		return "", err
	}
	if current == name {
		logger.Debug("already on requested branch", "branch", name)
		return name, nil
	}

	dirty, err := x.clients.Git().HasChanges(ctx)
	if err != nil {
		return "", err
	}
	if dirty {
		return "", goerr.Wrap(types.ErrUncommittedChanges,
			"cannot switch branch with uncommitted changes",
			goerr.V("branch", name),
			goerr.V("current", current),
		)
	}

	if err := x.clients.Git().SwitchBranch(ctx, name); err != nil {
		logger.Warn("branch switch failed, creating a new branch instead",
			"branch", name, "error", err)
		return x.CreateUniqueBranch(ctx, prompt, string(name))
	}

	logger.Info("switched to branch", "branch", name)
	return name, nil
}
