package githubx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aider-tools/aider-automation/pkg/domain/interfaces"
	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/aider-tools/aider-automation/pkg/utils/logging"
	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v55/github"
	"github.com/m-mizutani/goerr/v2"
)

const acceptHeader = "application/vnd.github.v3+json"

// Client talks to the GitHub REST API for the target repository. All calls
// go through the retrying transport, so rate limiting and transient network
// failures are absorbed below the typed API layer.
type Client struct {
	gh            *github.Client
	repo          model.GitHubRepo
	defaultBranch types.BranchName
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	maxRetries int
	baseURL    string
	transport  http.RoundTripper
}

type Option func(*config)

func WithMaxRetries(n int) Option {
	return func(c *config) {
		c.maxRetries = n
	}
}

// WithBaseURL points the client at a different API endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

func WithTransport(rt http.RoundTripper) Option {
	return func(c *config) {
		c.transport = rt
	}
}

// New builds a client from the GitHub section of the config. Token auth and
// GitHub App auth are both supported; the repo identifier must already have
// passed validation.
func New(cfg *model.GitHubConfig, defaultBranch string, options ...Option) (*Client, error) {
	repo, err := model.ParseGitHubRepo(cfg.Repo)
	if err != nil {
		return nil, err
	}

	c := &config{maxRetries: defaultMaxRetries}
	for _, opt := range options {
		opt(c)
	}

	base := c.transport
	if base == nil {
		base = http.DefaultTransport
	}

	var authed http.RoundTripper
	switch {
	case cfg.HasAppAuth():
		itr, err := ghinstallation.NewKeyFromFile(base,
			int64(cfg.AppID), int64(cfg.InstallationID), cfg.PrivateKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to load github app private key",
				goerr.V("path", cfg.PrivateKey),
			)
		}
		authed = itr
	default:
		authed = &tokenTransport{next: base, token: cfg.Token}
	}

	httpClient := &http.Client{
		Transport: newRetryTransport(authed, c.maxRetries),
	}

	gh := github.NewClient(httpClient)
	if c.baseURL != "" {
		if gh, err = gh.WithEnterpriseURLs(c.baseURL, c.baseURL); err != nil {
			return nil, goerr.Wrap(err, "invalid github base URL", goerr.V("url", c.baseURL))
		}
	}

	return &Client{
		gh:            gh,
		repo:          repo,
		defaultBranch: types.BranchName(defaultBranch),
	}, nil
}

// tokenTransport adds the bearer-style authorization header and the
// versioned Accept header to every request.
type tokenTransport struct {
	next  http.RoundTripper
	token types.GitHubToken
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "token "+string(x.token))
	clone.Header.Set("Accept", acceptHeader)
	return x.next.RoundTrip(clone)
}

// ValidateAccess checks that the credentials can read the authenticated
// user and the target repository.
func (x *Client) ValidateAccess(ctx context.Context) error {
	if _, _, err := x.gh.Users.Get(ctx, ""); err != nil {
		return goerr.Wrap(types.ErrGitHubAPI, "github token validation failed",
			goerr.V("detail", apiErrorMessage(err)),
			goerr.V("hint", "check that the token is valid and not expired"),
		)
	}

	if _, _, err := x.gh.Repositories.Get(ctx, x.repo.Owner, x.repo.Name); err != nil {
		return goerr.Wrap(types.ErrGitHubAPI, "repository is not accessible",
			goerr.V("repo", x.repo.String()),
			goerr.V("detail", apiErrorMessage(err)),
			goerr.V("hint", "check the repo name and the token's repo scope"),
		)
	}

	return nil
}

// DefaultBranch fetches the repository's default branch from the API.
func (x *Client) DefaultBranch(ctx context.Context) (types.BranchName, error) {
	repo, _, err := x.gh.Repositories.Get(ctx, x.repo.Owner, x.repo.Name)
	if err != nil {
		return "", goerr.Wrap(types.ErrGitHubAPI, "failed to get repository metadata",
			goerr.V("repo", x.repo.String()),
			goerr.V("detail", apiErrorMessage(err)),
		)
	}
	return types.BranchName(repo.GetDefaultBranch()), nil
}

// BranchExists checks whether the named branch exists on the remote.
func (x *Client) BranchExists(ctx context.Context, name types.BranchName) (bool, error) {
	_, resp, err := x.gh.Repositories.GetBranch(ctx, x.repo.Owner, x.repo.Name, string(name), false)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, goerr.Wrap(types.ErrGitHubAPI, "failed to check remote branch",
			goerr.V("branch", name),
			goerr.V("detail", apiErrorMessage(err)),
		)
	}
	return true, nil
}

// CreatePullRequest opens a PR from head to base. API failures come back as
// a failed PRResult rather than an error: PR creation is the one step whose
// failure does not abort the workflow.
func (x *Client) CreatePullRequest(ctx context.Context, input *interfaces.CreatePullRequestInput) (*model.PRResult, error) {
	base := input.Base
	if base == "" {
		base = x.defaultBranch
	}

	pr, resp, err := x.gh.PullRequests.Create(ctx, x.repo.Owner, x.repo.Name, &github.NewPullRequest{
		Title: github.String(input.Title),
		Body:  github.String(input.Body),
		Head:  github.String(string(input.Head)),
		Base:  github.String(string(base)),
	})
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		logging.From(ctx).Warn("pull request creation failed",
			"status", status,
			"detail", apiErrorMessage(err),
		)
		return &model.PRResult{
			Success:      false,
			ErrorMessage: apiErrorMessage(err),
		}, nil
	}

	return &model.PRResult{
		Success: true,
		URL:     pr.GetHTMLURL(),
		Number:  types.PRNumber(pr.GetNumber()),
	}, nil
}

// apiErrorMessage unpacks the GitHub error envelope: the top-level message
// enriched with errors[].message entries, falling back to the plain error
// text when the body was not the standard JSON envelope.
func apiErrorMessage(err error) string {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		msg := ghErr.Message
		var details []string
		for _, e := range ghErr.Errors {
			if e.Message != "" {
				details = append(details, e.Message)
			}
		}
		if len(details) > 0 {
			msg += " (" + strings.Join(details, "; ") + ")"
		}
		if msg != "" {
			return msg
		}
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return "rate limited: " + rateErr.Message
	}

	return err.Error()
}
