package usecase

import (
	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	cfg     *model.Config
}

func New(cfg *model.Config, clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
		cfg:     cfg,
	}
}
