package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
	"github.com/qsafe/devicehub/internal/core/store"
)

// BillingService computes rental charges and records payments at a single
// monthly rate.
type BillingService struct {
	store    *store.Shared
	audit    auditor
	ledger   ports.AuditLog
	rate     decimal.Decimal
	currency string
	logger   zerolog.Logger
}

func NewBillingService(st *store.Shared, audit ports.AuditLog, rate decimal.Decimal, currency string, logger zerolog.Logger) *BillingService {
	return &BillingService{
		store:    st,
		audit:    auditor{log: audit, logger: logger},
		ledger:   audit,
		rate:     rate,
		currency: currency,
		logger:   logger,
	}
}

func (s *BillingService) row(st *store.Store, d domain.Device) ports.BillingRow {
	r := ports.BillingRow{
		Device:    d,
		Blocked:   st.IsBlocked(d.ID),
		DueAmount: domain.DueAmount(d, s.rate, st.Today()),
	}
	if owner, ok := st.OwnerOf(d.ID); ok {
		r.Owner = &owner
	}
	return r
}

// Overview builds the billing dashboard. The summary always covers the whole
// inventory; search only narrows the rows.
func (s *BillingService) Overview(_ context.Context, search string) (*ports.BillingOverview, error) {
	out := &ports.BillingOverview{Rate: s.rate, Currency: s.currency}
	_ = s.store.Read(func(st *store.Store) error {
		sum := domain.BillingSummary{TotalDue: decimal.Zero}
		for _, d := range st.Devices("") {
			r := s.row(st, d)
			sum.Total++
			if d.Status == domain.StatusOnline {
				sum.Online++
			}
			if d.Billing != nil {
				switch d.Billing.Type {
				case domain.BillingRental:
					sum.Rental++
				case domain.BillingPurchase:
					sum.Sold++
				}
			}
			if domain.PaymentStatusOf(d) == domain.PaymentOverdue {
				sum.Overdue++
			}
			if r.Blocked {
				sum.Blocked++
			}
			sum.TotalDue = sum.TotalDue.Add(r.DueAmount)
			if d.Matches(search) {
				out.Rows = append(out.Rows, r)
			}
		}
		out.Summary = sum
		return nil
	})
	return out, nil
}

// UserDevices is the billing view of one customer's granted devices.
func (s *BillingService) UserDevices(_ context.Context, userID int) ([]ports.BillingRow, error) {
	var rows []ports.BillingRow
	err := s.store.Read(func(st *store.Store) error {
		if _, err := st.User(userID); err != nil {
			return err
		}
		for _, v := range st.DevicesForUser(userID) {
			rows = append(rows, s.row(st, v.Device))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *BillingService) ToggleBlock(ctx context.Context, actorID int, deviceID string) (bool, error) {
	var blocked bool
	err := s.store.Write(func(st *store.Store) error {
		var err error
		blocked, err = st.ToggleDeviceBlock(deviceID)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("toggle block: %w", err)
	}

	kind := domain.AuditDeviceReleased
	if blocked {
		kind = domain.AuditDeviceBlocked
	}
	s.audit.record(ctx, domain.AuditEvent{Kind: kind, ActorID: actorID, DeviceID: deviceID})
	s.logger.Info().Str("device_id", deviceID).Bool("blocked", blocked).Msg("device block toggled")
	return blocked, nil
}

// RecordPayment marks the device paid today and appends the amount that was
// due at that moment to the ledger.
func (s *BillingService) RecordPayment(ctx context.Context, actorID int, deviceID string) (*ports.PaymentResult, error) {
	var (
		device domain.Device
		amount decimal.Decimal
	)
	err := s.store.Write(func(st *store.Store) error {
		before, err := st.Device(deviceID)
		if err != nil {
			return err
		}
		amount = domain.DueAmount(before, s.rate, st.Today())
		device, err = st.RecordPayment(deviceID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	e := domain.AuditEvent{Kind: domain.AuditPayment, ActorID: actorID, DeviceID: deviceID, Amount: &amount, Detail: s.currency}
	_ = s.store.Read(func(st *store.Store) error {
		if owner, ok := st.OwnerOf(deviceID); ok {
			e.UserID = owner.ID
		}
		return nil
	})
	s.audit.record(ctx, e)
	s.logger.Info().Str("device_id", deviceID).Str("amount", amount.StringFixed(2)).Msg("payment recorded")
	return &ports.PaymentResult{Device: device, Amount: amount, Currency: s.currency}, nil
}

func (s *BillingService) SetPaymentStatus(ctx context.Context, actorID int, deviceID string, status domain.PaymentStatus) (*domain.Device, error) {
	var device domain.Device
	err := s.store.Write(func(st *store.Store) error {
		var err error
		device, err = st.SetPaymentStatus(deviceID, status)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("set payment status: %w", err)
	}
	s.audit.record(ctx, domain.AuditEvent{Kind: domain.AuditPaymentStatus, ActorID: actorID, DeviceID: deviceID, Detail: string(status)})
	s.logger.Info().Str("device_id", deviceID).Str("payment_status", string(status)).Msg("payment status set")
	return &device, nil
}

// Payments reads the payment ledger, newest first.
func (s *BillingService) Payments(ctx context.Context, deviceID string, limit int) ([]domain.AuditEvent, error) {
	if s.ledger == nil {
		return nil, nil
	}
	events, err := s.ledger.List(ctx, domain.AuditFilter{Kind: domain.AuditPayment, DeviceID: deviceID, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return events, nil
}
