package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
	"github.com/pizzeria-brothers/restaurant-system/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists events to the
// audit trail. Processing runs on dispatcher workers, off the request path.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if event.Action == "" || event.EntityKey == "" {
		return fmt.Errorf("audit: %w", domain.ErrInvalidInput)
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("audit: insert: %w", err)
	}

	s.log.Debug().
		Str("action", string(event.Action)).
		Str("entity", event.EntityKey).
		Bool("success", event.Success).
		Msg("evento de auditoría registrado")
	return nil
}
