package gitx

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/aider-tools/aider-automation/pkg/domain/interfaces"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/aider-tools/aider-automation/pkg/utils/logging"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/goerr/v2"
)

const defaultCommandTimeout = 30 * time.Second

// Client wraps the local repository. Mutating operations (checkout, add,
// commit, push) go through the installed git binary so that the user's
// credential helpers and hooks apply; read-only inspection uses go-git.
type Client struct {
	gitPath string
	repoDir string
	timeout time.Duration
}

var _ interfaces.Git = (*Client)(nil)

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.timeout = d
	}
}

func WithGitPath(path string) Option {
	return func(x *Client) {
		x.gitPath = path
	}
}

func New(repoDir string, options ...Option) *Client {
	client := &Client{
		gitPath: "git",
		repoDir: repoDir,
		timeout: defaultCommandTimeout,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Client) run(ctx context.Context, args ...string) (string, error) {
	return x.runWith(ctx, x.timeout, args...)
}

func (x *Client) runWith(ctx context.Context, timeout time.Duration, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, x.gitPath, args...)
	cmd.Dir = x.repoDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.From(ctx).Debug("running git command", "args", args)

	if err := cmd.Run(); err != nil {
		return "", goerr.Wrap(types.ErrGitOperation, "git command failed",
			goerr.V("args", args),
			goerr.V("stderr", strings.TrimSpace(stderr.String())),
		)
	}

	return stdout.String(), nil
}

func (x *Client) open() (*git.Repository, error) {
	repo, err := git.PlainOpen(x.repoDir)
	if err != nil {
		return nil, goerr.Wrap(types.ErrGitOperation, "failed to open git repository",
			goerr.V("dir", x.repoDir),
			goerr.V("hint", "run the tool inside a git repository"),
		)
	}
	return repo, nil
}

func (x *Client) Version(ctx context.Context) (string, error) {
	out, err := x.run(ctx, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (x *Client) IsRepository(ctx context.Context) bool {
	_, err := git.PlainOpen(x.repoDir)
	return err == nil
}

func (x *Client) HasRemote(ctx context.Context) bool {
	repo, err := x.open()
	if err != nil {
		return false
	}
	remotes, err := repo.Remotes()
	return err == nil && len(remotes) > 0
}

func (x *Client) BranchExists(ctx context.Context, name types.BranchName) (bool, error) {
	repo, err := x.open()
	if err != nil {
		return false, err
	}

	_, err = repo.Reference(plumbing.NewBranchReferenceName(string(name)), false)
	if err == plumbing.ErrReferenceNotFound {
		return false, nil
	}
	if err != nil {
		return false, goerr.Wrap(types.ErrGitOperation, "failed to look up branch",
			goerr.V("branch", name),
		)
	}
	return true, nil
}

// CreateBranch creates the named branch and switches to it. It fails when
// the branch already exists.
func (x *Client) CreateBranch(ctx context.Context, name types.BranchName) error {
	exists, err := x.BranchExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return goerr.Wrap(types.ErrGitOperation, "branch already exists",
			goerr.V("branch", name),
			goerr.V("hint", "use a different branch name or delete the existing branch"),
		)
	}

	if _, err := x.run(ctx, "checkout", "-b", string(name)); err != nil {
		return goerr.Wrap(err, "failed to create branch", goerr.V("branch", name))
	}
	return nil
}

// SwitchBranch checks out an existing branch. It fails when the target is
// absent or the working tree blocks the checkout.
func (x *Client) SwitchBranch(ctx context.Context, name types.BranchName) error {
	exists, err := x.BranchExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return goerr.Wrap(types.ErrGitOperation, "branch does not exist",
			goerr.V("branch", name),
			goerr.V("hint", "create the branch first or check the branch name"),
		)
	}

	if _, err := x.run(ctx, "checkout", string(name)); err != nil {
		return goerr.Wrap(err, "failed to switch branch", goerr.V("branch", name))
	}
	return nil
}

func (x *Client) CurrentBranch(ctx context.Context) (types.BranchName, error) {
	repo, err := x.open()
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", goerr.Wrap(types.ErrGitOperation, "failed to get HEAD")
	}
	if !head.Name().IsBranch() {
		return "", goerr.Wrap(types.ErrGitOperation, "HEAD is not on a branch",
			goerr.V("ref", head.Name().String()),
		)
	}
	return types.BranchName(head.Name().Short()), nil
}

func (x *Client) HasChanges(ctx context.Context) (bool, error) {
	out, err := x.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// ChangedFiles parses `git status --porcelain`: a 2-character status code
// followed by the path.
func (x *Client) ChangedFiles(ctx context.Context) ([]string, error) {
	out, err := x.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParsePorcelainStatus(out), nil
}

// ParsePorcelainStatus extracts paths from porcelain v1 status output.
func ParsePorcelainStatus(out string) []string {
	var files []string
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if len(line) <= 3 {
			continue
		}
		path := strings.TrimSpace(line[2:])
		// Renames are reported as "old -> new"; keep the new path.
		if _, after, ok := strings.Cut(path, " -> "); ok {
			path = after
		}
		if path != "" {
			files = append(files, path)
		}
	}
	return files
}

func (x *Client) AddAll(ctx context.Context) error {
	if _, err := x.run(ctx, "add", "."); err != nil {
		return goerr.Wrap(err, "failed to stage changes")
	}
	return nil
}

func (x *Client) Commit(ctx context.Context, message string, allowEmpty bool) (types.CommitSHA, error) {
	if strings.TrimSpace(message) == "" {
		return "", goerr.Wrap(types.ErrGitOperation, "commit message must not be empty")
	}

	args := []string{"commit", "-m", message}
	if allowEmpty {
		args = append(args, "--allow-empty")
	}

	if _, err := x.run(ctx, args...); err != nil {
		return "", goerr.Wrap(err, "failed to commit",
			goerr.V("hint", "check that there are staged changes"),
		)
	}

	sha, _, err := x.HeadCommit(ctx)
	if err != nil {
		return "", err
	}
	return sha, nil
}

// HeadCommit returns the hash and subject line of the most recent commit.
// The commit step uses it to detect commits aider made on its own.
func (x *Client) HeadCommit(ctx context.Context) (types.CommitSHA, string, error) {
	repo, err := x.open()
	if err != nil {
		return "", "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", "", goerr.Wrap(types.ErrGitOperation, "failed to resolve HEAD commit")
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", "", goerr.Wrap(types.ErrGitOperation, "failed to read HEAD commit",
			goerr.V("hash", head.Hash().String()),
		)
	}

	subject, _, _ := strings.Cut(commit.Message, "\n")
	return types.CommitSHA(head.Hash().String()), subject, nil
}

func (x *Client) Push(ctx context.Context, remote string, name types.BranchName) error {
	// Pushing can be slow on large repositories; give it more room than the
	// default command timeout.
	if _, err := x.runWith(ctx, 5*time.Minute, "push", "-u", remote, string(name)); err != nil {
		return goerr.Wrap(err, "failed to push branch",
			goerr.V("remote", remote),
			goerr.V("branch", name),
			goerr.V("hint", "check the remote configuration and network connection"),
		)
	}
	return nil
}

func (x *Client) RemoteURL(ctx context.Context, remote string) (string, error) {
	repo, err := x.open()
	if err != nil {
		return "", err
	}

	r, err := repo.Remote(remote)
	if err != nil {
		return "", goerr.Wrap(types.ErrGitOperation, "remote is not configured",
			goerr.V("remote", remote),
			goerr.V("hint", "add a remote: git remote add "+remote+" <url>"),
		)
	}
	if len(r.Config().URLs) == 0 {
		return "", goerr.Wrap(types.ErrGitOperation, "remote has no URL", goerr.V("remote", remote))
	}
	return r.Config().URLs[0], nil
}
