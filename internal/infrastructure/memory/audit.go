// Package memory provides in-process stand-ins for the MongoDB ledger and the
// Redis denylist. They are used when those services are not configured.
package memory

import (
	"context"
	"sync"

	"github.com/qsafe/devicehub/internal/core/domain"
)

const defaultListSize = 100

// AuditLedger keeps audit events in a slice.
type AuditLedger struct {
	mu     sync.RWMutex
	events []domain.AuditEvent
}

func NewAuditLedger() *AuditLedger {
	return &AuditLedger{}
}

func (l *AuditLedger) Insert(_ context.Context, e domain.AuditEvent) error {
	l.mu.Lock()
	l.events = append(l.events, e)
	l.mu.Unlock()
	return nil
}

// List returns matching events newest first.
func (l *AuditLedger) List(_ context.Context, f domain.AuditFilter) ([]domain.AuditEvent, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultListSize
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.AuditEvent, 0, min(limit, len(l.events)))
	for i := len(l.events) - 1; i >= 0 && len(out) < limit; i-- {
		if f.Match(l.events[i]) {
			out = append(out, l.events[i])
		}
	}
	return out, nil
}

// Len reports how many events are stored.
func (l *AuditLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
