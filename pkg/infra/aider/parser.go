package aider

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aider-tools/aider-automation/pkg/domain/model"
)

// Aider's console output has no machine-readable contract. The extraction
// below matches the common patterns of recent releases and may under- or
// over-match; it is a best-effort heuristic, not an interface.

const maxModifiedFiles = 10

var (
	// "Modified: path", "Created: path", ... and Chinese equivalents.
	ptnFileVerb   = regexp.MustCompile(`(?im)(?:Modified|Created|Edited|Added|Updated):\s*(\S+)`)
	ptnFileVerbZh = regexp.MustCompile(`(?m)(?:修改|创建|编辑|添加|更新)[:：]\s*(\S+)`)
	// Checkmark followed by a path with a recognized extension.
	ptnFileCheck = regexp.MustCompile(`(?m)[✓✔]\s*(\S+\.(?:py|go|js|ts|java|cpp|c|h|md|txt|json|yaml|yml|xml|html|css))`)
	// Fallback: any path-like token with a recognized extension.
	ptnFileLike = regexp.MustCompile(`(\S+\.(?:py|go|js|ts|java|cpp|c|h|md|txt|json|yaml|yml|xml|html|css))`)

	ptnSummaryLine = regexp.MustCompile(`(?im)(?:Summary|摘要|Changes made|所做更改|Completed|完成)[:：]\s*(.+?)\s*$`)
)

// ParseOutput turns aider's combined stdout+stderr into a structured result.
func ParseOutput(output, prompt string) *model.AiderResult {
	files := extractModifiedFiles(output)

	return &model.AiderResult{
		Success:       true,
		ModifiedFiles: files,
		Summary:       extractSummary(output, prompt, files),
		Output:        output,
	}
}

func extractModifiedFiles(output string) []string {
	var files []string
	seen := map[string]struct{}{}

	appendMatch := func(path string) {
		path = strings.TrimSpace(path)
		if path == "" {
			return
		}
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, ptn := range []*regexp.Regexp{ptnFileVerb, ptnFileVerbZh, ptnFileCheck} {
		for _, m := range ptn.FindAllStringSubmatch(output, -1) {
			appendMatch(m[1])
		}
	}

	// No explicit markers: scan for anything path-like, skipping URLs.
	if len(files) == 0 {
		for _, m := range ptnFileLike.FindAllStringSubmatch(output, -1) {
			path := m[1]
			if strings.HasPrefix(path, "http") || looksLikeURL(path) {
				continue
			}
			appendMatch(path)
		}
	}

	if len(files) > maxModifiedFiles {
		files = files[:maxModifiedFiles]
	}
	return files
}

func looksLikeURL(path string) bool {
	head := path
	if len(head) > 10 {
		head = head[:10]
	}
	return strings.Contains(head, "/")
}

func extractSummary(output, prompt string, files []string) string {
	if m := ptnSummaryLine.FindStringSubmatch(output); m != nil {
		return strings.TrimSpace(m[1])
	}

	if len(files) > 0 {
		return fmt.Sprintf("modified %d file(s): %s", len(files), strings.Join(files, ", "))
	}

	excerpt := prompt
	if len([]rune(excerpt)) > 50 {
		excerpt = string([]rune(excerpt)[:50]) + "..."
	}
	return "executed prompt: " + excerpt
}
