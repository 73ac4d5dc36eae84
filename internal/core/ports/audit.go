package ports

import (
	"context"

	"github.com/pizzeria-brothers/restaurant-system/internal/core/domain"
)

// AuditRepository persists audit trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// AuditService processes audit events coming off the dispatcher.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditSink is the enqueue side handed to the services that emit events.
// The dispatcher implements it; emitting never blocks the request path
// beyond the worker channel buffer.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}
