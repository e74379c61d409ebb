package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/qsafe/devicehub/internal/core/domain"
)

var testRate = decimal.RequireFromString("29.99")

func TestBillingService_Overview(t *testing.T) {
	svc := NewBillingService(seededStore(t), nil, testRate, "USD", nop)

	ov, err := svc.Overview(context.Background(), "")
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	s := ov.Summary
	if s.Total != 4 || s.Online != 3 || s.Rental != 3 || s.Sold != 1 || s.Overdue != 1 || s.Blocked != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	// DEV001 9 months, DEV003 4 months, DEV004 7 months
	if got := s.TotalDue.StringFixed(2); got != "599.80" {
		t.Fatalf("total due = %s, want 599.80", got)
	}

	for _, r := range ov.Rows {
		switch r.Device.ID {
		case "DEV003":
			if r.DueAmount.StringFixed(2) != "119.96" {
				t.Fatalf("DEV003 due = %s, want 119.96", r.DueAmount.StringFixed(2))
			}
			if r.Owner == nil || r.Owner.ID != 2 {
				t.Fatalf("DEV003 owner should be user 2")
			}
		case "DEV002":
			if !r.DueAmount.IsZero() {
				t.Fatalf("sold device must owe nothing, got %s", r.DueAmount)
			}
		}
	}
}

func TestBillingService_Overview_SearchKeepsSummary(t *testing.T) {
	svc := NewBillingService(seededStore(t), nil, testRate, "USD", nop)

	ov, _ := svc.Overview(context.Background(), "backyard")
	if len(ov.Rows) != 1 || ov.Rows[0].Device.ID != "DEV003" {
		t.Fatalf("unexpected rows: %+v", ov.Rows)
	}
	if ov.Summary.Total != 4 {
		t.Fatalf("summary should cover every device, got %d", ov.Summary.Total)
	}
}

func TestBillingService_RecordPayment(t *testing.T) {
	audit := &stubAuditLog{}
	svc := NewBillingService(seededStore(t), audit, testRate, "USD", nop)
	ctx := context.Background()

	res, err := svc.RecordPayment(ctx, 5, "DEV003")
	if err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	if res.Device.Billing.PaymentStatus != domain.PaymentCurrent {
		t.Fatalf("expected Current after payment")
	}
	if res.Amount.StringFixed(2) != "119.96" {
		t.Fatalf("amount = %s", res.Amount.StringFixed(2))
	}

	payments, err := svc.Payments(ctx, "DEV003", 0)
	if err != nil {
		t.Fatalf("Payments: %v", err)
	}
	if len(payments) != 1 || payments[0].Amount == nil || !payments[0].Amount.Equal(res.Amount) {
		t.Fatalf("ledger entry missing or wrong: %+v", payments)
	}
	if payments[0].UserID != 2 {
		t.Fatalf("payment should name the owner, got %d", payments[0].UserID)
	}

	if _, err := svc.RecordPayment(ctx, 5, "DEV404"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBillingService_AuditFailureDoesNotFailPayment(t *testing.T) {
	audit := &stubAuditLog{recordErr: errors.New("mongo down")}
	svc := NewBillingService(seededStore(t), audit, testRate, "USD", nop)

	if _, err := svc.RecordPayment(context.Background(), 5, "DEV001"); err != nil {
		t.Fatalf("payment must succeed when the ledger write fails: %v", err)
	}
}

func TestBillingService_ToggleBlockAndStatus(t *testing.T) {
	svc := NewBillingService(seededStore(t), nil, testRate, "USD", nop)
	ctx := context.Background()

	blocked, err := svc.ToggleBlock(ctx, 5, "DEV004")
	if err != nil || !blocked {
		t.Fatalf("expected blocked, got %v %v", blocked, err)
	}
	ov, _ := svc.Overview(ctx, "")
	if ov.Summary.Blocked != 1 {
		t.Fatalf("blocked count = %d", ov.Summary.Blocked)
	}

	d, err := svc.SetPaymentStatus(ctx, 5, "DEV004", domain.PaymentOverdue)
	if err != nil {
		t.Fatalf("SetPaymentStatus: %v", err)
	}
	if d.Billing.PaymentStatus != domain.PaymentOverdue {
		t.Fatalf("status not set")
	}
	if _, err := svc.SetPaymentStatus(ctx, 5, "DEV004", domain.PaymentNA); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBillingService_UserDevices(t *testing.T) {
	svc := NewBillingService(seededStore(t), nil, testRate, "USD", nop)

	rows, err := svc.UserDevices(context.Background(), 3)
	if err != nil {
		t.Fatalf("UserDevices: %v", err)
	}
	if len(rows) != 2 || rows[0].Device.ID != "DEV001" || rows[1].Device.ID != "DEV004" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if _, err := svc.UserDevices(context.Background(), 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
