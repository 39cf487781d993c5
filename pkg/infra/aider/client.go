package aider

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"slices"
	"strings"
	"time"

	"github.com/aider-tools/aider-automation/pkg/domain/interfaces"
	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/aider-tools/aider-automation/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultRunTimeout     = 5 * time.Minute
	defaultVersionTimeout = 10 * time.Second
)

// Client invokes the aider binary. The invocation is built from the
// configured options and model; a single --yes flag is guaranteed so the run
// never blocks on interactive confirmation.
type Client struct {
	binPath    string
	workDir    string
	options    []string
	modelName  string
	runTimeout time.Duration
}

var _ interfaces.Aider = (*Client)(nil)

type Option func(*Client)

func WithBinPath(path string) Option {
	return func(x *Client) {
		x.binPath = path
	}
}

func WithWorkDir(dir string) Option {
	return func(x *Client) {
		x.workDir = dir
	}
}

func WithRunTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.runTimeout = d
	}
}

func New(cfg *model.AiderConfig, options ...Option) *Client {
	client := &Client{
		binPath:    "aider",
		workDir:    ".",
		options:    cfg.Options,
		modelName:  cfg.Model,
		runTimeout: defaultRunTimeout,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

// BuildArgs assembles the argv for one invocation: configured options, the
// model flag, exactly one auto-confirm flag, and the prompt message.
func (x *Client) BuildArgs(prompt string) []string {
	args := slices.Clone(x.options)

	if x.modelName != "" {
		args = append(args, "--model", x.modelName)
	}

	if !slices.Contains(args, "--yes") && !slices.Contains(args, "-y") {
		args = append(args, "--yes")
	}

	args = append(args, "--message", prompt)
	return args
}

func (x *Client) Version(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultVersionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, x.binPath, "--version")
	out, err := cmd.Output()
	if err != nil {
		return "", goerr.Wrap(types.ErrAiderExecution, "aider is not available",
			goerr.V("path", x.binPath),
			goerr.V("hint", "install aider: pip install aider-chat"),
		)
	}
	return strings.TrimSpace(string(out)), nil
}

// Run executes aider with the prompt and parses its combined output. A
// non-zero exit yields a failed result, not an error; the caller decides how
// to surface it. Runs are never retried.
func (x *Client) Run(ctx context.Context, prompt string) (*model.AiderResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, goerr.Wrap(types.ErrAiderExecution, "prompt must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, x.runTimeout)
	defer cancel()

	args := x.BuildArgs(prompt)
	logging.From(ctx).Debug("invoking aider", "args", args)

	cmd := exec.CommandContext(ctx, x.binPath, args...)
	cmd.Dir = x.workDir

	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	err := cmd.Run()
	output := combined.String()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, goerr.Wrap(types.ErrAiderExecution, "aider timed out",
			goerr.V("timeout", x.runTimeout.String()),
		)
	}

	if err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			return nil, goerr.Wrap(types.ErrAiderExecution, "failed to run aider",
				goerr.V("path", x.binPath),
			)
		}

		return &model.AiderResult{
			Success:      false,
			Output:       output,
			ErrorMessage: fmt.Sprintf("aider exited with code %d", exitCode),
		}, nil
	}

	result := ParseOutput(output, prompt)
	return result, nil
}
