package service

import (
	"go.uber.org/zap"

	"github.com/Astemirdum/bookrental-service/internal/repository"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events *Publisher
}

// NewService wires the core operations. events may be nil, in which case
// rental audit events are not published.
func NewService(repo repository.Repository, events *Publisher, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
	}
}
