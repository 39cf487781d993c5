package gitx

import (
	"regexp"

	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ptnHTTPSRemote = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	ptnSSHRemote   = regexp.MustCompile(`^git@github\.com:([^/]+)/([^/]+?)(?:\.git)?/?$`)
)

// ParseRepoFromURL extracts owner/repo from a GitHub remote URL. Only the
// HTTPS and SSH forms of github.com are recognized; anything else is a fatal
// parse error since the rest of the pipeline talks to the GitHub API.
func ParseRepoFromURL(url string) (model.GitHubRepo, error) {
	for _, ptn := range []*regexp.Regexp{ptnHTTPSRemote, ptnSSHRemote} {
		if m := ptn.FindStringSubmatch(url); m != nil {
			return model.GitHubRepo{Owner: m[1], Name: m[2]}, nil
		}
	}

	return model.GitHubRepo{}, goerr.Wrap(types.ErrGitOperation, "unsupported remote URL format",
		goerr.V("url", url),
		goerr.V("hint", "only GitHub HTTPS and SSH remote URLs are supported"),
	)
}
