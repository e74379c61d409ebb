package ports

import (
	"context"
	"time"

	"github.com/qsafe/devicehub/internal/core/domain"
)

// AuditLog is the append-only ledger of mutations. Record may be
// asynchronous; List returns newest first.
type AuditLog interface {
	Record(ctx context.Context, event domain.AuditEvent) error
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error)
}

// TokenDenylist remembers revoked token ids until they would have expired
// anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
