package infra

import (
	"github.com/aider-tools/aider-automation/pkg/domain/interfaces"
)

// Clients bundles the external collaborators of one workflow run. All
// dependencies are injected at construction; there are no ambient globals.
type Clients struct {
	git    interfaces.Git
	aider  interfaces.Aider
	github interfaces.GitHub
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Git() interfaces.Git {
	return x.git
}

func (x *Clients) Aider() interfaces.Aider {
	return x.aider
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}

func WithGit(client interfaces.Git) Option {
	return func(x *Clients) {
		x.git = client
	}
}

func WithAider(client interfaces.Aider) Option {
	return func(x *Clients) {
		x.aider = client
	}
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}
