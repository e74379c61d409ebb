package domain

import (
	"strings"
	"time"
)

const (
	MinReminderMonths = 1
	MaxReminderMonths = 60
)

// ServiceReminder schedules recurring on-site service for a user.
type ServiceReminder struct {
	ID              string
	UserID          int
	ServiceType     string
	SiteLocation    string
	LastServiceDate time.Time
	DueDate         time.Time
	ReminderEnabled bool
	ReminderMonths  int
}

// ReminderPatch edits a reminder; nil means unchanged.
type ReminderPatch struct {
	ServiceType     *string
	SiteLocation    *string
	LastServiceDate *time.Time
	ReminderEnabled *bool
	ReminderMonths  *int
}

// ValidateReminderMonths bounds the reminder frequency.
func ValidateReminderMonths(n int) error {
	if n < MinReminderMonths || n > MaxReminderMonths {
		return invalid("reminder_months", "must be between 1 and 60")
	}
	return nil
}

// Reschedule sets the frequency and enabled flag and recomputes the due date
// from the last service date, whatever the previous due date was.
func (r ServiceReminder) Reschedule(months int, enabled bool) (ServiceReminder, error) {
	if err := ValidateReminderMonths(months); err != nil {
		return r, err
	}
	r.ReminderMonths = months
	r.ReminderEnabled = enabled
	r.DueDate = AddMonths(r.LastServiceDate, months)
	return r, nil
}

// Apply merges p. When the frequency or the last service date changes the due
// date is recomputed.
func (r ServiceReminder) Apply(p ReminderPatch) (ServiceReminder, error) {
	out := r
	if p.ServiceType != nil {
		if strings.TrimSpace(*p.ServiceType) == "" {
			return r, invalid("service_type", "must not be empty")
		}
		out.ServiceType = strings.TrimSpace(*p.ServiceType)
	}
	if p.SiteLocation != nil {
		out.SiteLocation = strings.TrimSpace(*p.SiteLocation)
	}
	if p.LastServiceDate != nil {
		out.LastServiceDate = Day(*p.LastServiceDate)
	}
	enabled := out.ReminderEnabled
	if p.ReminderEnabled != nil {
		enabled = *p.ReminderEnabled
	}
	months := out.ReminderMonths
	if p.ReminderMonths != nil {
		months = *p.ReminderMonths
	}
	if p.ReminderMonths != nil || p.LastServiceDate != nil {
		return out.Reschedule(months, enabled)
	}
	out.ReminderEnabled = enabled
	return out, nil
}

// Status is the schedule status of the reminder's due date.
func (r ServiceReminder) Status(today time.Time) ScheduleStatus {
	return ScheduleStatusAt(r.DueDate, today)
}
