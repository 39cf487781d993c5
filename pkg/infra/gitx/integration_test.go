package gitx_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/aider-tools/aider-automation/pkg/infra/gitx"
	"github.com/aider-tools/aider-automation/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

// newTestRepo initializes a repository with one commit and returns a client
// bound to it.
func newTestRepo(t *testing.T) *gitx.Client {
	t.Helper()
	testutil.RequireBinary(t, "git")

	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}

	run("init", "-b", "main")
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "test")
	run("commit", "--allow-empty", "-m", "initial commit")
	run("remote", "add", "origin", "https://github.com/octocat/hello-world.git")

	return gitx.New(dir)
}

func TestGitClientBranchLifecycle(t *testing.T) {
	client := newTestRepo(t)
	ctx := context.Background()

	gt.True(t, client.IsRepository(ctx))
	gt.True(t, client.HasRemote(ctx))

	exists := gt.R1(client.BranchExists(ctx, "feature/test")).NoError(t)
	gt.True(t, !exists)

	gt.NoError(t, client.CreateBranch(ctx, "feature/test"))
	gt.V(t, gt.R1(client.CurrentBranch(ctx)).NoError(t)).Equal(types.BranchName("feature/test"))

	// Creating the same branch again fails.
	err := client.CreateBranch(ctx, "feature/test")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrGitOperation))

	gt.NoError(t, client.SwitchBranch(ctx, "main"))
	gt.V(t, gt.R1(client.CurrentBranch(ctx)).NoError(t)).Equal(types.BranchName("main"))
}

func TestGitClientCommitFlow(t *testing.T) {
	client := newTestRepo(t)
	ctx := context.Background()

	dirty := gt.R1(client.HasChanges(ctx)).NoError(t)
	gt.True(t, !dirty)

	url := gt.R1(client.RemoteURL(ctx, "origin")).NoError(t)
	gt.V(t, url).Equal("https://github.com/octocat/hello-world.git")

	sha := gt.R1(client.Commit(ctx, "empty marker commit", true)).NoError(t)
	gt.True(t, sha != "")

	head, subject, err := client.HeadCommit(ctx)
	gt.NoError(t, err)
	gt.V(t, head).Equal(sha)
	gt.V(t, subject).Equal("empty marker commit")
}

func TestGitClientVersion(t *testing.T) {
	client := newTestRepo(t)
	v := gt.R1(client.Version(context.Background())).NoError(t)
	gt.True(t, v != "")
}

func TestGitClientRelativeWorkDir(t *testing.T) {
	testutil.RequireBinary(t, "git")

	dir := t.TempDir()
	cmd := exec.Command("git", "init", "-b", "main")
	cmd.Dir = dir
	gt.NoError(t, cmd.Run())

	testutil.Chdir(t, dir)
	client := gitx.New(".")
	gt.True(t, client.IsRepository(context.Background()))
}
