package model

import (
	"errors"
	"strings"

	"github.com/aider-tools/aider-automation/pkg/domain/types"
)

// ErrorReport is the operator-facing view of a failure: what happened, what
// to do about it, and machine-readable recovery tags. It is generated for
// guidance only, never for automatic remediation.
type ErrorReport struct {
	Kind            string
	Message         string
	Suggestions     []string
	RecoveryActions []types.RecoveryAction
}

// BuildErrorReport maps an error to its kind-specific suggestions.
func BuildErrorReport(err error) *ErrorReport {
	report := &ErrorReport{Message: err.Error()}

	switch {
	case errors.Is(err, types.ErrConfig):
		report.Kind = "configuration"
		fillConfigReport(report, err)
	case errors.Is(err, types.ErrDependency):
		report.Kind = "dependency"
		fillDependencyReport(report, err)
	case errors.Is(err, types.ErrUncommittedChanges):
		report.Kind = "git"
		report.Suggestions = []string{
			"commit or stash the current changes first",
			"or run again with a different --branch name",
		}
		report.RecoveryActions = []types.RecoveryAction{types.RecoveryCommitOrStash}
	case errors.Is(err, types.ErrGitOperation):
		report.Kind = "git"
		report.Suggestions = []string{
			"check that the working directory is a git repository",
			"check branch names and remote configuration",
		}
	case errors.Is(err, types.ErrAiderExecution):
		report.Kind = "aider"
		report.Suggestions = []string{
			"install aider: pip install aider-chat",
			"check the prompt and the project state",
			"run aider manually to inspect its output",
		}
		report.RecoveryActions = []types.RecoveryAction{types.RecoveryInstallAider}
	case errors.Is(err, types.ErrRateLimited):
		report.Kind = "github"
		report.Suggestions = []string{
			"wait for the rate limit window to reset and retry",
		}
		report.RecoveryActions = []types.RecoveryAction{types.RecoveryWaitRateLimit}
	case errors.Is(err, types.ErrGitHubAPI):
		report.Kind = "github"
		report.Suggestions = []string{
			"check that the GitHub token is valid and has repo scope",
			"check network connectivity to api.github.com",
		}
		report.RecoveryActions = []types.RecoveryAction{
			types.RecoveryValidateGitHubToken,
			types.RecoveryCheckNetwork,
		}
	default:
		report.Kind = "unknown"
		report.Suggestions = []string{
			"re-run with --log-level debug for details",
		}
	}

	return report
}

func fillConfigReport(report *ErrorReport, err error) {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "not found") || strings.Contains(msg, "no such file"):
		report.Suggestions = []string{
			"run 'aider-automation init' to create a default config file",
			"check the --config path",
		}
		report.RecoveryActions = []types.RecoveryAction{types.RecoveryCreateDefaultConfig}
	case strings.Contains(msg, "token"):
		report.Suggestions = []string{
			"set the GITHUB_TOKEN environment variable",
			"make sure the token has repo scope",
		}
		report.RecoveryActions = []types.RecoveryAction{types.RecoveryValidateGitHubToken}
	case strings.Contains(msg, "owner/repo"):
		report.Suggestions = []string{
			"set github.repo to 'owner/repo'",
		}
		report.RecoveryActions = []types.RecoveryAction{types.RecoveryValidateRepoFormat}
	case strings.Contains(msg, "json"):
		report.Suggestions = []string{
			"check the JSON syntax of the config file",
			"recreate it with 'aider-automation init --force'",
		}
		report.RecoveryActions = []types.RecoveryAction{types.RecoveryValidateJSONSyntax}
	default:
		report.Suggestions = []string{
			"check the config file against the documented schema",
		}
	}
}

func fillDependencyReport(report *ErrorReport, err error) {
	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "aider") {
		report.Suggestions = append(report.Suggestions, "install aider: pip install aider-chat")
		report.RecoveryActions = append(report.RecoveryActions, types.RecoveryInstallAider)
	}
	if strings.Contains(msg, "git") {
		report.Suggestions = append(report.Suggestions,
			"install git: https://git-scm.com/downloads",
			"initialize the repository: git init",
			"add a remote: git remote add origin <url>",
		)
		report.RecoveryActions = append(report.RecoveryActions, types.RecoveryInstallGit)
	}
	if strings.Contains(msg, "github") {
		report.Suggestions = append(report.Suggestions,
			"check that the GitHub token is valid",
			"check network connectivity",
		)
		report.RecoveryActions = append(report.RecoveryActions, types.RecoveryValidateGitHubToken)
	}
	if len(report.Suggestions) == 0 {
		report.Suggestions = []string{"run 'aider-automation check' for a full environment report"}
	}
}
