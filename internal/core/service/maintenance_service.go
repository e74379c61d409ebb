package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
	"github.com/qsafe/devicehub/internal/core/store"
)

// MaintenanceService covers calibration schedules and service reminders.
type MaintenanceService struct {
	store  *store.Shared
	audit  auditor
	logger zerolog.Logger
}

func NewMaintenanceService(st *store.Shared, audit ports.AuditLog, logger zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{store: st, audit: auditor{log: audit, logger: logger}, logger: logger}
}

func calibrationMatch(f ports.CalibrationFilter, d domain.Device, status domain.ScheduleStatus, dated bool) bool {
	if !d.Matches(f.Search) {
		return false
	}
	switch {
	case f.Overdue && !(dated && status == domain.ScheduleOverdue),
		f.DueSoon && !(dated && status == domain.ScheduleDueSoon),
		f.Sales && d.DeviceType != domain.DeviceTypeSales,
		f.Rental && d.DeviceType != domain.DeviceTypeRental:
		return false
	}
	return true
}

func (s *MaintenanceService) CalibrationOverview(_ context.Context, f ports.CalibrationFilter) (*ports.CalibrationOverview, error) {
	out := &ports.CalibrationOverview{}
	_ = s.store.Read(func(st *store.Store) error {
		today := st.Today()
		for _, d := range st.Devices("") {
			status, dated := domain.CalibrationStatus(d, today)
			out.Summary.Add(status, dated)
			if !calibrationMatch(f, d, status, dated) {
				continue
			}
			row := ports.CalibrationRow{Device: d, Status: status}
			if owner, ok := st.OwnerOf(d.ID); ok {
				row.Owner = &owner
			}
			out.Rows = append(out.Rows, row)
		}
		return nil
	})
	return out, nil
}

func (s *MaintenanceService) RecordCalibration(ctx context.Context, actorID int, deviceID string, in ports.RecordCalibrationInput) (*domain.Device, error) {
	interval := in.IntervalMonths
	if interval == 0 {
		interval = ports.DefaultCalibrationInterval
	}
	var device domain.Device
	err := s.store.Write(func(st *store.Store) error {
		date := in.Date
		if date.IsZero() {
			date = st.Today()
		}
		var err error
		device, err = st.RecordCalibration(deviceID, date, interval)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("record calibration: %w", err)
	}
	s.audit.record(ctx, domain.AuditEvent{
		Kind: domain.AuditCalibration, ActorID: actorID, DeviceID: deviceID,
		Detail: "next due " + domain.FormatDate(*device.CalibrationDueDate),
	})
	s.logger.Info().Str("device_id", deviceID).Int("interval_months", interval).Msg("calibration recorded")
	return &device, nil
}

func reminderMatch(f ports.ReminderFilter, r domain.ServiceReminder, u domain.User, status domain.ScheduleStatus) bool {
	if term := strings.ToLower(f.Search); term != "" {
		hit := false
		for _, field := range []string{u.Name, u.Company, r.ServiceType, r.SiteLocation} {
			if strings.Contains(strings.ToLower(field), term) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	switch {
	case f.Overdue && status != domain.ScheduleOverdue,
		f.DueSoon && status != domain.ScheduleDueSoon,
		f.Enabled && !r.ReminderEnabled,
		f.Disabled && r.ReminderEnabled:
		return false
	}
	return true
}

// ReminderOverview lists reminders matching the filter. Reminders whose user
// no longer exists are left out of the rows but still counted in the summary.
func (s *MaintenanceService) ReminderOverview(_ context.Context, f ports.ReminderFilter) (*ports.ReminderOverview, error) {
	out := &ports.ReminderOverview{}
	_ = s.store.Read(func(st *store.Store) error {
		today := st.Today()
		for _, r := range st.Reminders() {
			status := r.Status(today)
			out.Summary.Total++
			switch status {
			case domain.ScheduleOverdue:
				out.Summary.Overdue++
			case domain.ScheduleDueSoon:
				out.Summary.DueSoon++
			}
			if r.ReminderEnabled {
				out.Summary.Enabled++
			}

			u, err := st.User(r.UserID)
			if err != nil {
				continue
			}
			if reminderMatch(f, r, u, status) {
				out.Rows = append(out.Rows, ports.ReminderRow{Reminder: r, User: u, Status: status})
			}
		}
		return nil
	})
	return out, nil
}

func (s *MaintenanceService) GetReminder(_ context.Context, id string) (*domain.ServiceReminder, error) {
	var r domain.ServiceReminder
	err := s.store.Read(func(st *store.Store) error {
		var err error
		r, err = st.Reminder(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *MaintenanceService) AddReminder(ctx context.Context, actorID int, in ports.AddReminderInput) (*domain.ServiceReminder, error) {
	var r domain.ServiceReminder
	err := s.store.Write(func(st *store.Store) error {
		var err error
		r, err = st.AddServiceReminder(store.NewReminder{
			UserID:          in.UserID,
			ServiceType:     in.ServiceType,
			SiteLocation:    in.SiteLocation,
			LastServiceDate: in.LastServiceDate,
			ReminderEnabled: in.ReminderEnabled,
			ReminderMonths:  in.ReminderMonths,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("add reminder: %w", err)
	}
	s.audit.record(ctx, domain.AuditEvent{Kind: domain.AuditReminderSaved, ActorID: actorID, UserID: r.UserID, Detail: r.ID})
	s.logger.Info().Str("reminder_id", r.ID).Int("user_id", r.UserID).Msg("service reminder added")
	return &r, nil
}

// UpdateReminder applies the patch; a new frequency or last service date
// recomputes the due date.
func (s *MaintenanceService) UpdateReminder(ctx context.Context, actorID int, id string, patch domain.ReminderPatch) (*domain.ServiceReminder, error) {
	var r domain.ServiceReminder
	err := s.store.Write(func(st *store.Store) error {
		var err error
		r, err = st.UpdateServiceReminder(id, patch)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update reminder: %w", err)
	}
	s.audit.record(ctx, domain.AuditEvent{Kind: domain.AuditReminderSaved, ActorID: actorID, UserID: r.UserID, Detail: r.ID})
	s.logger.Info().Str("reminder_id", id).Int("reminder_months", r.ReminderMonths).Bool("enabled", r.ReminderEnabled).Msg("service reminder updated")
	return &r, nil
}
