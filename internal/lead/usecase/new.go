package usecase

import (
	"missed-call-recovery/internal/lead/repository"
	"missed-call-recovery/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

// New creates a new lead UseCase instance.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
