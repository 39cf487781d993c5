package model

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"github.com/aider-tools/aider-automation/pkg/domain/types"
)

// Branch naming rules: no spaces, no leading/trailing '.', '-' or '/', no
// character outside word chars / '-' / '_' / '/', total length capped at 250.

const (
	maxBranchNameLen  = 250
	maxPromptWords    = 5
	minMeaningfulWord = 3 // tokens shorter than this are discarded
	branchFallback    = "feature"
)

var ptnWord = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// stopWords are discarded when deriving a branch name from a prompt.
// English function words plus a small set of Chinese particles.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "can": {}, "must": {}, "shall": {}, "this": {}, "that": {},
	"these": {}, "those": {},
	"的": {}, "了": {}, "在": {}, "是": {}, "有": {}, "和": {}, "与": {},
	"或": {}, "但": {}, "如果": {}, "因为": {}, "所以": {},
}

// GenerateBranchName derives a branch name from a prompt (or an explicit base
// name), prefixed and suffixed with a timestamp for uniqueness. Names longer
// than 250 characters are truncated with an 8-character content hash so the
// truncated form stays unique.
func GenerateBranchName(prompt, baseName, prefix string, now time.Time) types.BranchName {
	var clean string
	if baseName != "" {
		clean = SanitizeBranchName(baseName)
	} else {
		clean = nameFromPrompt(prompt)
	}

	full := prefix + clean + "-" + now.Format("20060102-150405")

	if len(full) > maxBranchNameLen {
		sum := md5.Sum([]byte(full))
		suffix := hex.EncodeToString(sum[:])[:8]
		full = full[:maxBranchNameLen-len(suffix)-1] + "-" + suffix
	}

	return types.BranchName(full)
}

func nameFromPrompt(prompt string) string {
	words := ptnWord.FindAllString(strings.ToLower(prompt), -1)

	var meaningful []string
	for _, w := range words {
		if _, ok := stopWords[w]; ok {
			continue
		}
		if len([]rune(w)) < minMeaningfulWord {
			continue
		}
		meaningful = append(meaningful, w)
	}

	var selected []string
	if len(meaningful) >= 3 {
		selected = meaningful[:min(len(meaningful), maxPromptWords)]
	} else {
		selected = meaningful
	}

	if len(selected) == 0 {
		return branchFallback
	}

	name := strings.Join(selected, "-")
	if len(name) > 50 {
		name = name[:50]
	}

	return SanitizeBranchName(name)
}

var (
	ptnInvalidChar = regexp.MustCompile(`[^\p{L}\p{N}_\-/]`)
	ptnHyphenRun   = regexp.MustCompile(`-+`)
)

// SanitizeBranchName rewrites a free-form string into a valid git branch
// segment: invalid characters become hyphens, hyphen runs collapse, edge
// characters illegal in ref names are stripped.
func SanitizeBranchName(name string) string {
	name = ptnInvalidChar.ReplaceAllString(name, "-")
	name = ptnHyphenRun.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-._/")

	if name == "" {
		return branchFallback
	}
	if strings.HasPrefix(name, ".") {
		name = "branch-" + name[1:]
	}

	return name
}
