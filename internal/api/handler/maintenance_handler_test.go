package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
)

func TestMaintenanceHandler_Calibration_Filters(t *testing.T) {
	stub := &stubMaintenanceService{
		calibrationFn: func(ctx context.Context, f ports.CalibrationFilter) (*ports.CalibrationOverview, error) {
			want := ports.CalibrationFilter{Overdue: true, Rental: true, Search: "hs-2024"}
			if f != want {
				t.Fatalf("unexpected filter: %+v", f)
			}
			return &ports.CalibrationOverview{
				Rows:    []ports.CalibrationRow{{Device: domain.Device{ID: "DEV001"}, Status: domain.ScheduleOverdue}},
				Summary: domain.ScheduleTally{Total: 4, Overdue: 1, DueSoon: 1, UpToDate: 1, Undated: 1},
			}, nil
		},
	}
	handler := NewMaintenanceHandler(stub)

	c, rec := newContext(http.MethodGet, "/v1/calibration?overdue=true&rental=1&search=hs-2024", nil, "")
	expectCode(t, rec, handler.Calibration(c), http.StatusOK)

	var resp calibrationOverviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Summary.Undated != 1 || resp.Rows[0].Status != "Overdue" || resp.Rows[0].OwnerName != "Unassigned" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	c, _ = newContext(http.MethodGet, "/v1/calibration?overdue=maybe", nil, "")
	expectStatus(t, handler.Calibration(c), http.StatusBadRequest)
}

func TestMaintenanceHandler_RecordCalibration(t *testing.T) {
	stub := &stubMaintenanceService{
		recordFn: func(ctx context.Context, actorID int, deviceID string, in ports.RecordCalibrationInput) (*domain.Device, error) {
			if !in.Date.Equal(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)) || in.IntervalMonths != 0 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Device{ID: deviceID}, nil
		},
	}
	handler := NewMaintenanceHandler(stub)

	c, rec := newContext(http.MethodPost, "/v1/calibration/devices/DEV004", strings.NewReader(`{"date":"2026-06-01"}`), echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("DEV004")
	withActor(c, 7, domain.RoleCalibrationLabAdmin)
	expectCode(t, rec, handler.RecordCalibration(c), http.StatusOK)

	c, _ = newContext(http.MethodPost, "/v1/calibration/devices/DEV004", strings.NewReader(`{"date":"06/01/2026"}`), echo.MIMEApplicationJSON)
	withActor(c, 7, domain.RoleCalibrationLabAdmin)
	expectValidation(t, handler.RecordCalibration(c))
}

func TestMaintenanceHandler_UpdateReminder(t *testing.T) {
	stub := &stubMaintenanceService{
		updateFn: func(ctx context.Context, actorID int, id string, p domain.ReminderPatch) (*domain.ServiceReminder, error) {
			if p.ReminderMonths == nil || *p.ReminderMonths != 6 || p.LastServiceDate == nil {
				t.Fatalf("unexpected patch: %+v", p)
			}
			last := *p.LastServiceDate
			return &domain.ServiceReminder{ID: id, LastServiceDate: last, DueDate: domain.AddMonths(last, 6), ReminderMonths: 6}, nil
		},
	}
	handler := NewMaintenanceHandler(stub)

	body := `{"reminder_months":6,"last_service_date":"2026-01-31"}`
	c, rec := newContext(http.MethodPatch, "/v1/reminders/r1", strings.NewReader(body), echo.MIMEApplicationJSON)
	c.SetParamNames("id")
	c.SetParamValues("r1")
	withActor(c, 8, domain.RoleQSafeAdmin)
	expectCode(t, rec, handler.UpdateReminder(c), http.StatusOK)

	var resp reminderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DueDate != "2026-07-31" {
		t.Fatalf("unexpected due date %s", resp.DueDate)
	}

	c, _ = newContext(http.MethodPatch, "/v1/reminders/r1", strings.NewReader(`{"reminder_months":61}`), echo.MIMEApplicationJSON)
	withActor(c, 8, domain.RoleQSafeAdmin)
	expectValidation(t, handler.UpdateReminder(c))
}
