package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/store"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAuditLog struct {
	mu        sync.Mutex
	events    []domain.AuditEvent
	recordErr error
	listErr   error
}

func (l *stubAuditLog) Record(_ context.Context, e domain.AuditEvent) error {
	if l.recordErr != nil {
		return l.recordErr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
	return nil
}

func (l *stubAuditLog) List(_ context.Context, f domain.AuditFilter) ([]domain.AuditEvent, error) {
	if l.listErr != nil {
		return nil, l.listErr
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []domain.AuditEvent
	for i := len(l.events) - 1; i >= 0; i-- {
		if f.Match(l.events[i]) {
			out = append(out, l.events[i])
		}
	}
	return out, nil
}

func (l *stubAuditLog) kinds() []domain.AuditKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.AuditKind, len(l.events))
	for i, e := range l.events {
		out[i] = e.Kind
	}
	return out
}

type stubDenylist struct {
	revoked   map[string]time.Time
	revokeErr error
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Time)}
}

func (d *stubDenylist) Revoke(_ context.Context, jti string, until time.Time) error {
	if d.revokeErr != nil {
		return d.revokeErr
	}
	d.revoked[jti] = until
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := d.revoked[jti]
	return ok, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// today is mid-month so seeded schedules land in predictable buckets.
var today = time.Date(2026, time.June, 15, 8, 0, 0, 0, time.UTC)

const seedPassword = "devicehub-demo"

var seedHash string

func seededStore(t *testing.T) *store.Shared {
	t.Helper()
	if seedHash == "" {
		h, err := HashPassword(seedPassword)
		if err != nil {
			t.Fatalf("hash: %v", err)
		}
		seedHash = h
	}
	st := store.New(func() time.Time { return today })
	if err := store.Seed(st, seedHash); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store.NewShared(st)
}

var nop = zerolog.Nop()
