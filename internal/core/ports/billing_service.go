package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/qsafe/devicehub/internal/core/domain"
)

// BillingRow is one device on the billing dashboard.
type BillingRow struct {
	Device    domain.Device
	Owner     *domain.User // nil when unassigned
	Blocked   bool
	DueAmount decimal.Decimal
}

// BillingOverview is the dashboard: rows filtered by search, summary over
// every device.
type BillingOverview struct {
	Rows     []BillingRow
	Summary  domain.BillingSummary
	Rate     decimal.Decimal
	Currency string
}

// PaymentResult is returned after a payment is recorded.
type PaymentResult struct {
	Device   domain.Device
	Amount   decimal.Decimal
	Currency string
}

// BillingService covers rental charges, payments and billing blocks.
type BillingService interface {
	Overview(ctx context.Context, search string) (*BillingOverview, error)
	UserDevices(ctx context.Context, userID int) ([]BillingRow, error)
	ToggleBlock(ctx context.Context, actorID int, deviceID string) (blocked bool, err error)
	RecordPayment(ctx context.Context, actorID int, deviceID string) (*PaymentResult, error)
	SetPaymentStatus(ctx context.Context, actorID int, deviceID string, status domain.PaymentStatus) (*domain.Device, error)
	Payments(ctx context.Context, deviceID string, limit int) ([]domain.AuditEvent, error)
}
