package gitx_test

import (
	"testing"

	"github.com/aider-tools/aider-automation/pkg/infra/gitx"
	"github.com/m-mizutani/gt"
)

func TestParsePorcelainStatus(t *testing.T) {
	out := " M pkg/cli/cli.go\n" +
		"A  pkg/infra/new_file.go\n" +
		"?? untracked.txt\n" +
		"R  old_name.go -> new_name.go\n" +
		"D  removed.go\n"

	files := gitx.ParsePorcelainStatus(out)
	gt.V(t, files).Equal([]string{
		"pkg/cli/cli.go",
		"pkg/infra/new_file.go",
		"untracked.txt",
		"new_name.go",
		"removed.go",
	})
}

func TestParsePorcelainStatusEmpty(t *testing.T) {
	gt.A(t, gitx.ParsePorcelainStatus("")).Length(0)
	gt.A(t, gitx.ParsePorcelainStatus("\n")).Length(0)
}

func TestParsePorcelainStatusPathWithSpaces(t *testing.T) {
	files := gitx.ParsePorcelainStatus(" M docs/with space.md\n")
	gt.V(t, files).Equal([]string{"docs/with space.md"})
}
