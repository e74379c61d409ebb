package ports

import (
	"context"
	"time"

	"github.com/qsafe/devicehub/internal/core/domain"
)

// CalibrationFilter narrows the calibration overview. Set flags combine with
// AND, as the console's filter chips do.
type CalibrationFilter struct {
	Overdue bool
	DueSoon bool
	Sales   bool
	Rental  bool
	Search  string
}

// CalibrationRow is one device on the calibration overview.
type CalibrationRow struct {
	Device domain.Device
	Status domain.ScheduleStatus // empty when the device has no due date
	Owner  *domain.User
}

type CalibrationOverview struct {
	Rows    []CalibrationRow
	Summary domain.ScheduleTally // over every device, ignoring the filter
}

// RecordCalibrationInput describes a completed calibration.
type RecordCalibrationInput struct {
	Date           time.Time
	IntervalMonths int // 0 means DefaultCalibrationInterval
}

// DefaultCalibrationInterval is applied when a calibration is recorded
// without an interval.
const DefaultCalibrationInterval = 12

type ReminderFilter struct {
	Overdue  bool
	DueSoon  bool
	Enabled  bool
	Disabled bool
	Search   string
}

type ReminderRow struct {
	Reminder domain.ServiceReminder
	User     domain.User
	Status   domain.ScheduleStatus
}

// ReminderSummary counts every reminder regardless of the filter.
type ReminderSummary struct {
	Total   int
	Overdue int
	DueSoon int
	Enabled int
}

type ReminderOverview struct {
	Rows    []ReminderRow
	Summary ReminderSummary
}

// AddReminderInput carries a new service reminder.
type AddReminderInput struct {
	UserID          int
	ServiceType     string
	SiteLocation    string
	LastServiceDate time.Time
	ReminderEnabled bool
	ReminderMonths  int
}

// MaintenanceService covers device calibration and on-site service reminders.
type MaintenanceService interface {
	CalibrationOverview(ctx context.Context, filter CalibrationFilter) (*CalibrationOverview, error)
	RecordCalibration(ctx context.Context, actorID int, deviceID string, in RecordCalibrationInput) (*domain.Device, error)
	ReminderOverview(ctx context.Context, filter ReminderFilter) (*ReminderOverview, error)
	GetReminder(ctx context.Context, id string) (*domain.ServiceReminder, error)
	AddReminder(ctx context.Context, actorID int, in AddReminderInput) (*domain.ServiceReminder, error)
	UpdateReminder(ctx context.Context, actorID int, id string, patch domain.ReminderPatch) (*domain.ServiceReminder, error)
}
