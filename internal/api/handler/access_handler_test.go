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

func TestAccessHandler_Toggle(t *testing.T) {
	assigned := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)
	stub := &stubAccessService{
		toggleFn: func(ctx context.Context, actorID, userID int, deviceID string) (*domain.AccessRight, error) {
			if actorID != 6 || userID != 2 || deviceID != "DEV001" {
				t.Fatalf("unexpected args: %d %d %s", actorID, userID, deviceID)
			}
			return &domain.AccessRight{UserID: 2, DeviceID: "DEV001", Granted: true, AssignedDate: &assigned, DueDate: &due, DeviceType: domain.DeviceTypeRental}, nil
		},
	}
	handler := NewAccessHandler(stub)

	c, rec := newContext(http.MethodPost, "/v1/access/toggle", strings.NewReader(`{"user_id":2,"device_id":"DEV001"}`), echo.MIMEApplicationJSON)
	withActor(c, 6, domain.RoleInventoryAdmin)
	expectCode(t, rec, handler.Toggle(c), http.StatusOK)

	var resp accessRightResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Granted || resp.AssignedDate != "2026-06-15" || resp.DueDate != "2026-07-15" || resp.DeviceType != "Rental" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAccessHandler_Toggle_MissingDevice(t *testing.T) {
	handler := NewAccessHandler(&stubAccessService{})
	c, _ := newContext(http.MethodPost, "/v1/access/toggle", strings.NewReader(`{"user_id":2}`), echo.MIMEApplicationJSON)
	withActor(c, 6, domain.RoleInventoryAdmin)
	expectValidation(t, handler.Toggle(c))
}

func TestAccessHandler_Check(t *testing.T) {
	stub := &stubAccessService{
		checkFn: func(ctx context.Context, userID int, deviceID string) (*ports.AccessStatus, error) {
			return &ports.AccessStatus{UserID: userID, DeviceID: deviceID, HasAccess: true, Blocked: true}, nil
		},
	}
	handler := NewAccessHandler(stub)

	c, rec := newContext(http.MethodGet, "/v1/access/check?user_id=2&device_id=DEV003", nil, "")
	expectCode(t, rec, handler.Check(c), http.StatusOK)

	var resp accessStatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.HasAccess || !resp.Blocked || resp.CanOperate {
		t.Fatalf("unexpected response: %+v", resp)
	}

	c, _ = newContext(http.MethodGet, "/v1/access/check?user_id=abc", nil, "")
	expectStatus(t, handler.Check(c), http.StatusBadRequest)
}

func TestAccessHandler_MyDevices_UsesCaller(t *testing.T) {
	stub := &stubAccessService{
		devicesFn: func(ctx context.Context, userID int) ([]domain.DeviceView, error) {
			if userID != 3 {
				t.Fatalf("expected caller 3, got %d", userID)
			}
			return []domain.DeviceView{{Device: domain.Device{ID: "DEV004"}, DeviceType: domain.DeviceTypeRental}}, nil
		},
	}
	handler := NewAccessHandler(stub)

	c, rec := newContext(http.MethodGet, "/v1/me/devices", nil, "")
	withActor(c, 3, domain.RoleNone)
	expectCode(t, rec, handler.MyDevices(c), http.StatusOK)

	var resp []deviceViewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].Device.ID != "DEV004" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAccessHandler_UserDevices_BadID(t *testing.T) {
	handler := NewAccessHandler(&stubAccessService{})
	c, _ := newContext(http.MethodGet, "/v1/access/users/x/devices", nil, "")
	c.SetParamNames("id")
	c.SetParamValues("x")
	expectValidation(t, handler.UserDevices(c))
}
