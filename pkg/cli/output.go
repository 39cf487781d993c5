package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/usecase"
	"github.com/fatih/color"
)

var (
	colorOK    = color.New(color.FgGreen)
	colorWarn  = color.New(color.FgYellow)
	colorError = color.New(color.FgRed)
	colorTitle = color.New(color.Bold)
)

func printResult(w io.Writer, result *model.WorkflowResult) {
	colorOK.Fprintln(w, "workflow completed")
	fmt.Fprintf(w, "  branch:   %s\n", result.BranchName)
	fmt.Fprintf(w, "  commit:   %s\n", result.CommitHash.Short())
	fmt.Fprintf(w, "  duration: %s\n", result.Duration.Round(time.Millisecond))

	if result.AiderResult != nil && len(result.AiderResult.ModifiedFiles) > 0 {
		fmt.Fprintln(w, "  modified files:")
		for _, f := range result.AiderResult.ModifiedFiles {
			fmt.Fprintf(w, "    - %s\n", f)
		}
	}

	switch {
	case result.PRResult == nil:
	case result.PRResult.Success:
		fmt.Fprintf(w, "  pull request: %s\n", result.PRResult.URL)
	default:
		colorWarn.Fprintf(w, "  pull request was not created: %s\n", result.PRResult.ErrorMessage)
		fmt.Fprintf(w, "  the branch %q is pushed; open a pull request manually if needed\n", result.BranchName)
	}
}

func printErrorReport(w io.Writer, report *model.ErrorReport) {
	colorError.Fprintf(w, "error (%s): ", report.Kind)
	fmt.Fprintln(w, report.Message)

	if len(report.Suggestions) > 0 {
		colorTitle.Fprintln(w, "suggestions:")
		for _, s := range report.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
}

func printEnvReport(w io.Writer, report *usecase.EnvironmentReport) {
	if report.AiderVersion != "" {
		colorOK.Fprint(w, "✓ ")
		fmt.Fprintf(w, "aider: %s\n", report.AiderVersion)
	}
	if report.GitVersion != "" {
		colorOK.Fprint(w, "✓ ")
		fmt.Fprintf(w, "git: %s\n", report.GitVersion)
	}

	for _, m := range report.Missing {
		colorError.Fprint(w, "✗ ")
		fmt.Fprintln(w, m)
	}

	if report.OK() {
		colorOK.Fprintln(w, "environment is ready")
	}
}

func printInitNotes(w io.Writer, path string) {
	fmt.Fprintf(w, "wrote %s\n", path)
	fmt.Fprintln(w, "next steps:")
	fmt.Fprintln(w, "  1. set github.repo to your 'owner/repo'")
	fmt.Fprintln(w, "  2. export GITHUB_TOKEN with repo scope")
	fmt.Fprintln(w, "  3. run 'aider-automation check'")
}
