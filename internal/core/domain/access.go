package domain

import "time"

// AccessRight grants (or, once toggled off, withholds) one user's access to
// one device. The store keeps at most one per (UserID, DeviceID).
type AccessRight struct {
	UserID       int
	DeviceID     string
	Granted      bool
	AssignedDate *time.Time
	DueDate      *time.Time
	DeviceType   DeviceType // snapshot taken on first grant
}

// View joins the right with its device, filling the assignment defaults
// (assigned today, due one month later) when the record carries none.
func (a AccessRight) View(d Device, today time.Time, blocked bool) DeviceView {
	v := DeviceView{
		Device:       d.Clone(),
		DeviceType:   a.DeviceType,
		AssignedDate: Day(today),
		DueDate:      AddMonths(today, 1),
		Blocked:      blocked,
	}
	if v.DeviceType == "" {
		v.DeviceType = d.DeviceType
	}
	if a.AssignedDate != nil {
		v.AssignedDate = *a.AssignedDate
	}
	if a.DueDate != nil {
		v.DueDate = *a.DueDate
	}
	return v
}
