package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists auth events to the
// audit trail.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("persist audit event: %w", err)
	}

	s.log.Debug().
		Str("actor", event.Actor).
		Str("action", event.Action).
		Msg("audit event recorded")
	return nil
}
