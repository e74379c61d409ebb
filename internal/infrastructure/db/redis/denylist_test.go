package redis

import (
	"testing"
	"time"
)

func TestRevokeTTL(t *testing.T) {
	now := time.Date(2026, time.June, 15, 8, 0, 0, 0, time.UTC)

	if got := revokeTTL(now.Add(2*time.Hour), now); got != 2*time.Hour {
		t.Fatalf("expected 2h, got %v", got)
	}
	if got := revokeTTL(now.Add(-time.Hour), now); got != minRevokeTTL {
		t.Fatalf("expired token should still be kept for %v, got %v", minRevokeTTL, got)
	}
}

func TestDenylistKey(t *testing.T) {
	d := NewDenylist(nil)
	if got := d.key("abc"); got != "revoked:abc" {
		t.Fatalf("unexpected key %q", got)
	}
}
