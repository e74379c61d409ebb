package mongo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/qsafe/devicehub/internal/core/domain"
)

func TestAuditDoc_PreservesAmountPrecision(t *testing.T) {
	amt := decimal.RequireFromString("119.96")
	in := domain.AuditEvent{
		ID:       "evt-1",
		Kind:     domain.AuditPayment,
		ActorID:  5,
		UserID:   2,
		DeviceID: "DEV003",
		Amount:   &amt,
		At:       time.Date(2026, time.June, 15, 8, 0, 0, 0, time.UTC),
	}

	doc := toAuditDoc(in)
	if doc.Amount != "119.96" {
		t.Fatalf("amount stored as %q", doc.Amount)
	}
	out, err := doc.event()
	if err != nil {
		t.Fatalf("event: %v", err)
	}
	if out.Amount == nil || !out.Amount.Equal(amt) {
		t.Fatalf("amount lost: %v", out.Amount)
	}
}

func TestAuditDoc_BadAmount(t *testing.T) {
	if _, err := (auditDoc{ID: "x", Amount: "lots"}).event(); err == nil {
		t.Fatalf("expected error for unparsable amount")
	}
}

func TestAuditQuery(t *testing.T) {
	q := auditQuery(domain.AuditFilter{Kind: domain.AuditPayment, DeviceID: "DEV001"})
	want := bson.M{"kind": "payment_recorded", "device_id": "DEV001"}
	if len(q) != len(want) || q["kind"] != want["kind"] || q["device_id"] != want["device_id"] {
		t.Fatalf("query = %v, want %v", q, want)
	}
	if len(auditQuery(domain.AuditFilter{})) != 0 {
		t.Fatalf("empty filter should match everything")
	}
}

func TestListLimit(t *testing.T) {
	cases := map[int]int64{0: defaultListSize, -3: defaultListSize, 25: 25, 5000: maxListSize}
	for in, want := range cases {
		if got := listLimit(in); got != want {
			t.Fatalf("listLimit(%d) = %d, want %d", in, got, want)
		}
	}
}
