package aider_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aider-tools/aider-automation/pkg/infra/aider"
	"github.com/m-mizutani/gt"
)

func TestParseOutputVerbMarkers(t *testing.T) {
	output := strings.Join([]string{
		"Aider v0.45.1",
		"Modified: src/login.html",
		"Created: src/auth.go",
		"updated: config/settings.json",
		"Summary: added a login page with authentication",
	}, "\n")

	result := aider.ParseOutput(output, "create a login page")
	gt.True(t, result.Success)
	gt.V(t, result.ModifiedFiles).Equal([]string{
		"src/login.html", "src/auth.go", "config/settings.json",
	})
	gt.V(t, result.Summary).Equal("added a login page with authentication")
}

func TestParseOutputChineseMarkers(t *testing.T) {
	output := "修改: 登录.html\n创建: auth.go\n摘要: 添加了登录页面"

	result := aider.ParseOutput(output, "添加登录页面")
	gt.V(t, result.ModifiedFiles).Equal([]string{"登录.html", "auth.go"})
	gt.V(t, result.Summary).Equal("添加了登录页面")
}

func TestParseOutputCheckmarks(t *testing.T) {
	output := "✓ main.go\n✔ handler.py\n✓ not-a-recognized-file.xyz"

	result := aider.ParseOutput(output, "prompt")
	gt.V(t, result.ModifiedFiles).Equal([]string{"main.go", "handler.py"})
}

func TestParseOutputFallbackSkipsURLs(t *testing.T) {
	output := "see https://docs.example.com/guide.html for details, touched main.go"

	result := aider.ParseOutput(output, "prompt")
	gt.V(t, result.ModifiedFiles).Equal([]string{"main.go"})
}

func TestParseOutputDeduplicatesAndCaps(t *testing.T) {
	var lines []string
	for i := 0; i < 15; i++ {
		lines = append(lines, fmt.Sprintf("Modified: file%02d.go", i))
	}
	lines = append(lines, "Modified: file00.go")

	result := aider.ParseOutput(strings.Join(lines, "\n"), "prompt")
	gt.A(t, result.ModifiedFiles).Length(10)
	gt.V(t, result.ModifiedFiles[0]).Equal("file00.go")
}

func TestParseOutputSummaryFromFileCount(t *testing.T) {
	output := "Modified: a.go\nModified: b.go"

	result := aider.ParseOutput(output, "prompt")
	gt.V(t, result.Summary).Equal("modified 2 file(s): a.go, b.go")
}

func TestParseOutputSummaryFromPromptExcerpt(t *testing.T) {
	long := strings.Repeat("x", 80)

	result := aider.ParseOutput("nothing recognizable here", long)
	gt.A(t, result.ModifiedFiles).Length(0)
	gt.V(t, result.Summary).Equal("executed prompt: " + strings.Repeat("x", 50) + "...")
}
