package domain

import "time"

// ScheduleStatus classifies a due date relative to today.
type ScheduleStatus string

const (
	ScheduleOverdue  ScheduleStatus = "Overdue"
	ScheduleDueSoon  ScheduleStatus = "DueSoon"
	ScheduleUpToDate ScheduleStatus = "UpToDate"
)

// ScheduleStatusAt is Overdue when due < today, DueSoon when due falls before
// today + 1 month, UpToDate otherwise. Exactly one holds for any date.
func ScheduleStatusAt(due, today time.Time) ScheduleStatus {
	due, today = Day(due), Day(today)
	switch {
	case due.Before(today):
		return ScheduleOverdue
	case due.Before(AddMonths(today, 1)):
		return ScheduleDueSoon
	}
	return ScheduleUpToDate
}

// CalibrationStatus classifies a device's calibration due date. ok is false
// for devices without one; those are excluded from every bucket.
func CalibrationStatus(d Device, today time.Time) (status ScheduleStatus, ok bool) {
	if d.CalibrationDueDate == nil {
		return "", false
	}
	return ScheduleStatusAt(*d.CalibrationDueDate, today), true
}

// ScheduleTally counts items per status. Undated items are kept apart so
// UpToDate never includes them.
type ScheduleTally struct {
	Total    int `json:"total"`
	Overdue  int `json:"overdue"`
	DueSoon  int `json:"due_soon"`
	UpToDate int `json:"up_to_date"`
	Undated  int `json:"undated"`
}

func (t *ScheduleTally) Add(s ScheduleStatus, dated bool) {
	t.Total++
	if !dated {
		t.Undated++
		return
	}
	switch s {
	case ScheduleOverdue:
		t.Overdue++
	case ScheduleDueSoon:
		t.DueSoon++
	default:
		t.UpToDate++
	}
}
