package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
)

func TestMaintenanceService_CalibrationOverview(t *testing.T) {
	svc := NewMaintenanceService(seededStore(t), nil, nop)
	ctx := context.Background()

	ov, err := svc.CalibrationOverview(ctx, ports.CalibrationFilter{})
	if err != nil {
		t.Fatalf("CalibrationOverview: %v", err)
	}
	want := domain.ScheduleTally{Total: 4, Overdue: 1, DueSoon: 1, UpToDate: 1, Undated: 1}
	if ov.Summary != want {
		t.Fatalf("summary = %+v, want %+v", ov.Summary, want)
	}
	if len(ov.Rows) != 4 {
		t.Fatalf("expected all rows without filter, got %d", len(ov.Rows))
	}

	cases := []struct {
		name   string
		filter ports.CalibrationFilter
		want   []string
	}{
		{"overdue", ports.CalibrationFilter{Overdue: true}, []string{"DEV001"}},
		{"due soon", ports.CalibrationFilter{DueSoon: true}, []string{"DEV002"}},
		{"sales", ports.CalibrationFilter{Sales: true}, []string{"DEV002"}},
		{"rental", ports.CalibrationFilter{Rental: true}, []string{"DEV001", "DEV003", "DEV004"}},
		{"overdue and sales", ports.CalibrationFilter{Overdue: true, Sales: true}, nil},
		{"search serial", ports.CalibrationFilter{Search: "hs-2024"}, []string{"DEV004"}},
	}
	for _, tc := range cases {
		ov, _ := svc.CalibrationOverview(ctx, tc.filter)
		var got []string
		for _, r := range ov.Rows {
			got = append(got, r.Device.ID)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
			}
		}
	}
}

func TestMaintenanceService_RecordCalibration(t *testing.T) {
	audit := &stubAuditLog{}
	svc := NewMaintenanceService(seededStore(t), audit, nop)
	ctx := context.Background()

	d, err := svc.RecordCalibration(ctx, 7, "DEV004", ports.RecordCalibrationInput{})
	if err != nil {
		t.Fatalf("RecordCalibration: %v", err)
	}
	if got := domain.FormatDate(*d.CalibrationDueDate); got != "2027-06-15" {
		t.Fatalf("due = %s, want 2027-06-15", got)
	}

	ov, _ := svc.CalibrationOverview(ctx, ports.CalibrationFilter{})
	if ov.Summary.Undated != 0 || ov.Summary.UpToDate != 2 {
		t.Fatalf("unexpected summary after calibration: %+v", ov.Summary)
	}
	if kinds := audit.kinds(); len(kinds) != 1 || kinds[0] != domain.AuditCalibration {
		t.Fatalf("expected calibration event, got %v", kinds)
	}

	if _, err := svc.RecordCalibration(ctx, 7, "DEV404", ports.RecordCalibrationInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMaintenanceService_ReminderOverview(t *testing.T) {
	svc := NewMaintenanceService(seededStore(t), nil, nop)
	ctx := context.Background()

	ov, err := svc.ReminderOverview(ctx, ports.ReminderFilter{})
	if err != nil {
		t.Fatalf("ReminderOverview: %v", err)
	}
	want := ports.ReminderSummary{Total: 3, Overdue: 1, DueSoon: 1, Enabled: 2}
	if ov.Summary != want {
		t.Fatalf("summary = %+v, want %+v", ov.Summary, want)
	}

	ov, _ = svc.ReminderOverview(ctx, ports.ReminderFilter{Disabled: true})
	if len(ov.Rows) != 1 || ov.Rows[0].User.ID != 3 {
		t.Fatalf("disabled filter: %+v", ov.Rows)
	}

	ov, _ = svc.ReminderOverview(ctx, ports.ReminderFilter{Search: "techsolutions"})
	if len(ov.Rows) != 1 || ov.Rows[0].Status != domain.ScheduleDueSoon {
		t.Fatalf("search by company: %+v", ov.Rows)
	}

	ov, _ = svc.ReminderOverview(ctx, ports.ReminderFilter{Enabled: true, Disabled: true})
	if len(ov.Rows) != 0 {
		t.Fatalf("enabled AND disabled must match nothing, got %d", len(ov.Rows))
	}
}

func TestMaintenanceService_UpdateReminder(t *testing.T) {
	audit := &stubAuditLog{}
	svc := NewMaintenanceService(seededStore(t), audit, nop)
	ctx := context.Background()

	r, err := svc.AddReminder(ctx, 8, ports.AddReminderInput{
		UserID:          1,
		ServiceType:     "Gateway Firmware",
		SiteLocation:    "Acme Annex",
		LastServiceDate: time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC),
		ReminderEnabled: false,
		ReminderMonths:  1,
	})
	if err != nil {
		t.Fatalf("AddReminder: %v", err)
	}

	months, enabled := 6, true
	r, err = svc.UpdateReminder(ctx, 8, r.ID, domain.ReminderPatch{ReminderMonths: &months, ReminderEnabled: &enabled})
	if err != nil {
		t.Fatalf("UpdateReminder: %v", err)
	}
	if got := domain.FormatDate(r.DueDate); got != "2026-10-02" {
		t.Fatalf("due = %s, want 2026-10-02", got)
	}
	if !r.ReminderEnabled {
		t.Fatalf("reminder should be enabled")
	}

	got, err := svc.GetReminder(ctx, r.ID)
	if err != nil || got.ReminderMonths != 6 {
		t.Fatalf("stored reminder not updated: %+v %v", got, err)
	}
	if len(audit.kinds()) != 2 {
		t.Fatalf("expected add and update audited, got %v", audit.kinds())
	}

	for _, bad := range []int{0, 61} {
		if _, err := svc.UpdateReminder(ctx, 8, r.ID, domain.ReminderPatch{ReminderMonths: &bad}); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("months %d: expected validation error, got %v", bad, err)
		}
	}
	long := 48
	if got, err := svc.UpdateReminder(ctx, 8, r.ID, domain.ReminderPatch{ReminderMonths: &long}); err != nil || got.ReminderMonths != 48 {
		t.Fatalf("48 months should be accepted, got %+v (%v)", got, err)
	}
}
