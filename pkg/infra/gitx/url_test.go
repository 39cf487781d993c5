package gitx_test

import (
	"testing"

	"github.com/aider-tools/aider-automation/pkg/infra/gitx"
	"github.com/m-mizutani/gt"
)

func TestParseRepoFromURL(t *testing.T) {
	cases := []struct {
		url   string
		owner string
		name  string
	}{
		{"https://github.com/octocat/hello-world.git", "octocat", "hello-world"},
		{"https://github.com/octocat/hello-world", "octocat", "hello-world"},
		{"https://github.com/octocat/hello-world/", "octocat", "hello-world"},
		{"git@github.com:octocat/hello-world.git", "octocat", "hello-world"},
		{"git@github.com:octocat/hello-world", "octocat", "hello-world"},
	}

	for _, tc := range cases {
		repo := gt.R1(gitx.ParseRepoFromURL(tc.url)).NoError(t)
		gt.V(t, repo.Owner).Equal(tc.owner)
		gt.V(t, repo.Name).Equal(tc.name)
	}
}

func TestParseRepoFromURLRejectsOtherHosts(t *testing.T) {
	for _, url := range []string{
		"https://gitlab.com/group/project.git",
		"git@bitbucket.org:team/repo.git",
		"ssh://git@github.com/octocat/hello-world.git",
		"not a url",
		"",
	} {
		_, err := gitx.ParseRepoFromURL(url)
		gt.Error(t, err)
	}
}
