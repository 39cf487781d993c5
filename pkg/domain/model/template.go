package model

import (
	"strings"

	"github.com/m-mizutani/gots/slice"
)

const (
	noModifiedFilesNote = "no modification record"
	noSummaryNote       = "no summary"
	maxTitleSummaryLen  = 50
	maxTitleLen         = 100
)

// RenderTemplate substitutes {name} placeholders. Unknown placeholders are
// left untouched so a typo in a template stays visible instead of vanishing.
func RenderTemplate(tmpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// RenderCommitMessage renders the commit message template with the aider
// summary, falling back to a 50-character prompt excerpt.
func (x *TemplateConfig) RenderCommitMessage(summary, prompt string) string {
	if summary == "" {
		summary = excerpt(prompt, maxTitleSummaryLen)
	}
	return RenderTemplate(x.CommitMessage, map[string]string{
		"summary": summary,
		"prompt":  prompt,
	})
}

// RenderPRTitle renders the pull request title, truncating the summary to 50
// and the whole title to 100 characters.
func (x *TemplateConfig) RenderPRTitle(result *AiderResult, prompt string) string {
	summary := result.Summary
	if summary == "" {
		summary = prompt
	}
	summary = excerpt(summary, maxTitleSummaryLen)

	title := RenderTemplate(x.PRTitle, map[string]string{
		"summary": summary,
		"prompt":  prompt,
	})
	return excerpt(title, maxTitleLen)
}

// RenderPRBody renders the pull request body with a bullet list of modified
// files, or literal placeholders when aider reported nothing.
func (x *TemplateConfig) RenderPRBody(result *AiderResult, prompt string) string {
	files := noModifiedFilesNote
	if len(result.ModifiedFiles) > 0 {
		files = strings.Join(slice.Map(result.ModifiedFiles, func(f string) string {
			return "- " + f
		}), "\n")
	}

	summary := result.Summary
	if summary == "" {
		summary = noSummaryNote
	}

	return RenderTemplate(x.PRBody, map[string]string{
		"prompt":         prompt,
		"modified_files": files,
		"aider_summary":  summary,
	})
}

func excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
