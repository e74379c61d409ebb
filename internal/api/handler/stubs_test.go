package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/qsafe/devicehub/internal/api/middleware"
	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
)

func newContext(method, target string, body io.Reader, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withActor(c echo.Context, id int, role domain.Role) {
	c.Set(middleware.KeyUserID, id)
	c.Set(middleware.KeyRole, string(role))
}

func expectStatus(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != code {
		t.Fatalf("expected HTTP %d error, got %v", code, err)
	}
}

func expectValidation(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func expectCode(t *testing.T, rec *httptest.ResponseRecorder, err error, code int) {
	t.Helper()
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != code {
		t.Fatalf("expected %d, got %d: %s", code, rec.Code, rec.Body.String())
	}
}

// --- stubs ---

type stubAuthService struct {
	loginFn  func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	logoutFn func(ctx context.Context, jti string, exp time.Time) error
	meFn     func(ctx context.Context, userID int) (*ports.Identity, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, jti string, exp time.Time) error {
	return s.logoutFn(ctx, jti, exp)
}

func (s *stubAuthService) Me(ctx context.Context, userID int) (*ports.Identity, error) {
	return s.meFn(ctx, userID)
}

func (s *stubAuthService) CurrentRole(context.Context, int) (domain.Role, error) {
	return domain.RoleNone, nil
}

type stubDeviceService struct {
	addFn    func(ctx context.Context, actorID int, in ports.AddDeviceInput) (*domain.Device, error)
	importFn func(ctx context.Context, actorID int, r io.Reader) (*ports.ImportResult, error)
	getFn    func(ctx context.Context, id string) (*domain.Device, error)
	listFn   func(ctx context.Context, search string) ([]domain.Device, error)
	configFn func(ctx context.Context, actorID int, id string, p domain.ConfigPatch) (*domain.Device, error)
}

func (s *stubDeviceService) AddDevice(ctx context.Context, actorID int, in ports.AddDeviceInput) (*domain.Device, error) {
	return s.addFn(ctx, actorID, in)
}

func (s *stubDeviceService) ImportDevices(ctx context.Context, actorID int, r io.Reader) (*ports.ImportResult, error) {
	return s.importFn(ctx, actorID, r)
}

func (s *stubDeviceService) GetDevice(ctx context.Context, id string) (*domain.Device, error) {
	return s.getFn(ctx, id)
}

func (s *stubDeviceService) ListDevices(ctx context.Context, search string) ([]domain.Device, error) {
	return s.listFn(ctx, search)
}

func (s *stubDeviceService) UpdateConfig(ctx context.Context, actorID int, id string, p domain.ConfigPatch) (*domain.Device, error) {
	return s.configFn(ctx, actorID, id, p)
}

type stubAccessService struct {
	toggleFn  func(ctx context.Context, actorID, userID int, deviceID string) (*domain.AccessRight, error)
	checkFn   func(ctx context.Context, userID int, deviceID string) (*ports.AccessStatus, error)
	devicesFn func(ctx context.Context, userID int) ([]domain.DeviceView, error)
}

func (s *stubAccessService) Toggle(ctx context.Context, actorID, userID int, deviceID string) (*domain.AccessRight, error) {
	return s.toggleFn(ctx, actorID, userID, deviceID)
}

func (s *stubAccessService) Check(ctx context.Context, userID int, deviceID string) (*ports.AccessStatus, error) {
	return s.checkFn(ctx, userID, deviceID)
}

func (s *stubAccessService) Matrix(context.Context, int) ([]ports.MatrixEntry, error) {
	return nil, nil
}

func (s *stubAccessService) Rights(context.Context) ([]domain.AccessRight, error) {
	return nil, nil
}

func (s *stubAccessService) Unassigned(context.Context) ([]domain.Device, error) {
	return nil, nil
}

func (s *stubAccessService) DevicesForUser(ctx context.Context, userID int) ([]domain.DeviceView, error) {
	return s.devicesFn(ctx, userID)
}

type stubBillingService struct {
	overviewFn func(ctx context.Context, search string) (*ports.BillingOverview, error)
	paymentFn  func(ctx context.Context, actorID int, deviceID string) (*ports.PaymentResult, error)
	statusFn   func(ctx context.Context, actorID int, deviceID string, st domain.PaymentStatus) (*domain.Device, error)
}

func (s *stubBillingService) Overview(ctx context.Context, search string) (*ports.BillingOverview, error) {
	return s.overviewFn(ctx, search)
}

func (s *stubBillingService) UserDevices(context.Context, int) ([]ports.BillingRow, error) {
	return nil, nil
}

func (s *stubBillingService) ToggleBlock(context.Context, int, string) (bool, error) {
	return true, nil
}

func (s *stubBillingService) RecordPayment(ctx context.Context, actorID int, deviceID string) (*ports.PaymentResult, error) {
	return s.paymentFn(ctx, actorID, deviceID)
}

func (s *stubBillingService) SetPaymentStatus(ctx context.Context, actorID int, deviceID string, st domain.PaymentStatus) (*domain.Device, error) {
	return s.statusFn(ctx, actorID, deviceID, st)
}

func (s *stubBillingService) Payments(context.Context, string, int) ([]domain.AuditEvent, error) {
	return nil, nil
}

type stubMaintenanceService struct {
	calibrationFn func(ctx context.Context, f ports.CalibrationFilter) (*ports.CalibrationOverview, error)
	recordFn      func(ctx context.Context, actorID int, deviceID string, in ports.RecordCalibrationInput) (*domain.Device, error)
	updateFn      func(ctx context.Context, actorID int, id string, p domain.ReminderPatch) (*domain.ServiceReminder, error)
}

func (s *stubMaintenanceService) CalibrationOverview(ctx context.Context, f ports.CalibrationFilter) (*ports.CalibrationOverview, error) {
	return s.calibrationFn(ctx, f)
}

func (s *stubMaintenanceService) RecordCalibration(ctx context.Context, actorID int, deviceID string, in ports.RecordCalibrationInput) (*domain.Device, error) {
	return s.recordFn(ctx, actorID, deviceID, in)
}

func (s *stubMaintenanceService) ReminderOverview(context.Context, ports.ReminderFilter) (*ports.ReminderOverview, error) {
	return &ports.ReminderOverview{}, nil
}

func (s *stubMaintenanceService) GetReminder(context.Context, string) (*domain.ServiceReminder, error) {
	return nil, domain.ReminderNotFound("x")
}

func (s *stubMaintenanceService) AddReminder(context.Context, int, ports.AddReminderInput) (*domain.ServiceReminder, error) {
	return nil, nil
}

func (s *stubMaintenanceService) UpdateReminder(ctx context.Context, actorID int, id string, p domain.ReminderPatch) (*domain.ServiceReminder, error) {
	return s.updateFn(ctx, actorID, id, p)
}
