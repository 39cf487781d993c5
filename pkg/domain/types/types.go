package types

import "log/slog"

type (
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	BranchName          string
	CommitSHA           string
	PRNumber            int
	WorkflowID          string
	RecoveryAction      string
)

const (
	RecoveryCreateDefaultConfig RecoveryAction = "create_default_config"
	RecoveryValidateGitHubToken RecoveryAction = "validate_github_token"
	RecoveryValidateRepoFormat  RecoveryAction = "validate_repo_format"
	RecoveryValidateJSONSyntax  RecoveryAction = "validate_json_syntax"
	RecoveryInstallAider        RecoveryAction = "install_aider"
	RecoveryInstallGit          RecoveryAction = "install_git"
	RecoveryCommitOrStash       RecoveryAction = "commit_or_stash_changes"
	RecoveryCheckNetwork        RecoveryAction = "check_network"
	RecoveryWaitRateLimit       RecoveryAction = "wait_rate_limit"
)

// Short returns the abbreviated commit hash used in console summaries.
func (x CommitSHA) Short() string {
	if len(x) < 8 {
		return string(x)
	}
	return string(x[:8])
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
