package memory

import (
	"context"
	"testing"
	"time"

	"github.com/qsafe/devicehub/internal/core/domain"
)

func TestAuditLedger_ListNewestFirst(t *testing.T) {
	l := NewAuditLedger()
	ctx := context.Background()
	for _, id := range []string{"a", "b", "c"} {
		_ = l.Insert(ctx, domain.AuditEvent{ID: id, Kind: domain.AuditPayment, DeviceID: "DEV001"})
	}
	_ = l.Insert(ctx, domain.AuditEvent{ID: "d", Kind: domain.AuditAccessGranted, DeviceID: "DEV001"})

	got, _ := l.List(ctx, domain.AuditFilter{Kind: domain.AuditPayment, Limit: 2})
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "b" {
		t.Fatalf("unexpected events: %+v", got)
	}
	if l.Len() != 4 {
		t.Fatalf("expected 4 stored, got %d", l.Len())
	}
}

func TestDenylist_ExpiresLazily(t *testing.T) {
	now := time.Date(2026, time.June, 15, 8, 0, 0, 0, time.UTC)
	d := NewDenylist()
	d.now = func() time.Time { return now }
	ctx := context.Background()

	_ = d.Revoke(ctx, "jti", now.Add(time.Minute))
	if ok, _ := d.IsRevoked(ctx, "jti"); !ok {
		t.Fatalf("expected revoked")
	}
	now = now.Add(2 * time.Minute)
	if ok, _ := d.IsRevoked(ctx, "jti"); ok {
		t.Fatalf("expected entry to expire")
	}
	if ok, _ := d.IsRevoked(ctx, "other"); ok {
		t.Fatalf("unknown jti reported revoked")
	}
}
