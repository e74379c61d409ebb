package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DueAmount is (months elapsed since installation + 1) * rate for Rental
// devices with an installation date, and zero for everything else. Months are
// whole calendar months; an installation date in the future owes nothing.
func DueAmount(d Device, ratePerMonth decimal.Decimal, today time.Time) decimal.Decimal {
	if d.DeviceType != DeviceTypeRental || d.InstalledDate.IsZero() {
		return decimal.Zero
	}
	months := MonthsBetween(d.InstalledDate, today) + 1
	if months <= 0 || Day(today).Before(Day(d.InstalledDate)) {
		return decimal.Zero
	}
	return ratePerMonth.Mul(decimal.NewFromInt(int64(months)))
}

// PaymentStatusOf reads the flag from the billing record; devices without one
// report N/A.
func PaymentStatusOf(d Device) PaymentStatus {
	if d.Billing == nil || d.Billing.PaymentStatus == "" {
		return PaymentNA
	}
	return d.Billing.PaymentStatus
}

// RecordPayment marks the device as paid today. Earlier payments are not kept
// on the device; the audit ledger holds the history.
func RecordPayment(d Device, today time.Time) Device {
	out := d.Clone()
	b := Billing{Type: BillingRental}
	if out.Billing != nil {
		b = *out.Billing
	}
	b.LastPayment = Day(today)
	b.PaymentStatus = PaymentCurrent
	out.Billing = &b
	return out
}

// BillingSummary aggregates the billing dashboard counters.
type BillingSummary struct {
	Total    int
	Online   int
	Rental   int
	Sold     int
	Overdue  int
	Blocked  int
	TotalDue decimal.Decimal
}
