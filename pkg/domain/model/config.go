package model

import (
	"log/slog"
	"strings"

	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Config is the root configuration of one workflow run. It is loaded once
// from the JSON config file and treated as read-only afterwards.
type Config struct {
	GitHub    GitHubConfig   `json:"github"`
	Aider     AiderConfig    `json:"aider"`
	Git       GitConfig      `json:"git"`
	Templates TemplateConfig `json:"templates"`
}

type GitHubConfig struct {
	Token types.GitHubToken `json:"token" masq:"secret"`
	Repo  string            `json:"repo"`

	// GitHub App credentials as an alternative to a personal access token.
	AppID          types.GitHubAppID        `json:"app_id,omitempty"`
	InstallationID types.GitHubAppInstallID `json:"installation_id,omitempty"`
	PrivateKey     string                   `json:"private_key,omitempty"`
}

type AiderConfig struct {
	Options []string `json:"options"`
	Model   string   `json:"model,omitempty"`
}

type GitConfig struct {
	DefaultBranch string `json:"default_branch"`
	BranchPrefix  string `json:"branch_prefix"`
}

type TemplateConfig struct {
	CommitMessage string `json:"commit_message"`
	PRTitle       string `json:"pr_title"`
	PRBody        string `json:"pr_body"`
}

// GitHubRepo is the parsed owner/name pair of the target repository.
type GitHubRepo struct {
	Owner string
	Name  string
}

func (x GitHubRepo) String() string {
	return x.Owner + "/" + x.Name
}

// ParseGitHubRepo splits an "owner/repo" identifier. Exactly one separator
// with non-empty segments on both sides is accepted.
func ParseGitHubRepo(s string) (GitHubRepo, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return GitHubRepo{}, goerr.Wrap(types.ErrConfig, "github repo must be in 'owner/repo' format",
			goerr.V("repo", s),
		)
	}
	return GitHubRepo{Owner: parts[0], Name: parts[1]}, nil
}

func (x *GitHubConfig) HasAppAuth() bool {
	return x.AppID != 0 && x.PrivateKey != ""
}

func (x *GitHubConfig) Validate() error {
	if x.Token == "" && !x.HasAppAuth() {
		return goerr.Wrap(types.ErrConfig, "github token or app credentials are required",
			goerr.V("hint", "set GITHUB_TOKEN or github.app_id + github.private_key"),
		)
	}
	if _, err := ParseGitHubRepo(x.Repo); err != nil {
		return err
	}
	return nil
}

// Normalize fills defaults and keeps the branch prefix slash-terminated.
func (x *Config) Normalize() {
	if x.Git.DefaultBranch == "" {
		x.Git.DefaultBranch = "main"
	}
	if x.Git.BranchPrefix == "" {
		x.Git.BranchPrefix = "aider-automation/"
	} else if !strings.HasSuffix(x.Git.BranchPrefix, "/") {
		x.Git.BranchPrefix += "/"
	}
	if x.Templates.CommitMessage == "" {
		x.Templates.CommitMessage = "feat: {summary}"
	}
	if x.Templates.PRTitle == "" {
		x.Templates.PRTitle = "AI-generated changes: {summary}"
	}
	if x.Templates.PRBody == "" {
		x.Templates.PRBody = defaultPRBodyTemplate
	}
}

const defaultPRBodyTemplate = `## Automated changes

**Prompt:** {prompt}

**Modified files:**
{modified_files}

**Aider summary:**
{aider_summary}`

func (x *Config) Validate() error {
	if err := x.GitHub.Validate(); err != nil {
		return err
	}
	if x.Git.DefaultBranch == "" {
		return goerr.Wrap(types.ErrConfig, "git.default_branch must not be empty")
	}
	return nil
}

// Repo returns the parsed target repository. Validate must have passed.
func (x *Config) Repo() GitHubRepo {
	repo, _ := ParseGitHubRepo(x.GitHub.Repo)
	return repo
}

func (x GitHubConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.Token)),
		slog.String("repo", x.Repo),
		slog.Int64("app_id", int64(x.AppID)),
	)
}

// DefaultConfig is what `aider-automation init` writes. It round-trips:
// the written file loads and validates with only GITHUB_TOKEN to resolve.
func DefaultConfig() *Config {
	cfg := &Config{
		GitHub: GitHubConfig{
			Token: "${GITHUB_TOKEN}",
			Repo:  "owner/repository-name",
		},
		Aider: AiderConfig{
			Options: []string{"--no-pretty", "--yes"},
			Model:   "gpt-4",
		},
	}
	cfg.Normalize()
	return cfg
}
