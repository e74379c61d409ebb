package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditKind names the mutation an AuditEvent records.
type AuditKind string

const (
	AuditUserCreated    AuditKind = "user_created"
	AuditUserUpdated    AuditKind = "user_updated"
	AuditRoleChanged    AuditKind = "role_changed"
	AuditDeviceAdded    AuditKind = "device_added"
	AuditConfigUpdated  AuditKind = "config_updated"
	AuditAccessGranted  AuditKind = "access_granted"
	AuditAccessRevoked  AuditKind = "access_revoked"
	AuditDeviceBlocked  AuditKind = "device_blocked"
	AuditDeviceReleased AuditKind = "device_unblocked"
	AuditPayment        AuditKind = "payment_recorded"
	AuditPaymentStatus  AuditKind = "payment_status_set"
	AuditCalibration    AuditKind = "calibration_recorded"
	AuditReminderSaved  AuditKind = "reminder_saved"
)

// AuditEvent is one append-only ledger entry.
type AuditEvent struct {
	ID       string
	Kind     AuditKind
	ActorID  int // 0 for system actions such as seeding
	UserID   int
	DeviceID string
	Amount   *decimal.Decimal // payments only
	Detail   string
	At       time.Time
}

// AuditFilter narrows a ledger query; zero values match everything.
type AuditFilter struct {
	Kind     AuditKind
	DeviceID string
	UserID   int
	Limit    int
}

// Match reports whether e satisfies f (Limit is ignored).
func (f AuditFilter) Match(e AuditEvent) bool {
	if f.Kind != "" && e.Kind != f.Kind {
		return false
	}
	if f.DeviceID != "" && e.DeviceID != f.DeviceID {
		return false
	}
	if f.UserID != 0 && e.UserID != f.UserID {
		return false
	}
	return true
}
