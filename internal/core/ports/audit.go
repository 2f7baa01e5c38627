package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// AuditRecorder accepts auth audit events for asynchronous persistence.
// Implementations must not block the login/signup path.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}

// AuditRepository persists audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuditService processes a single audit event end to end.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}
