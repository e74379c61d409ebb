package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
)

// MaintenanceHandler serves calibration and service reminder screens.
type MaintenanceHandler struct {
	service ports.MaintenanceService
}

func NewMaintenanceHandler(service ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// Calibration handles GET /v1/calibration.
//
// @Summary      Calibration overview
// @Description  Set filters combine; the summary ignores them.
// @Tags         calibration
// @Produce      json
// @Security     BearerAuth
// @Param        overdue   query     bool    false  "Only overdue devices"
// @Param        due_soon  query     bool    false  "Only devices due within a month"
// @Param        sales     query     bool    false  "Only sold devices"
// @Param        rental    query     bool    false  "Only rented devices"
// @Param        search    query     string  false  "Substring of id, name, location, model or serial"
// @Success      200       {object}  calibrationOverviewResponse
// @Router       /v1/calibration [get]
func (h *MaintenanceHandler) Calibration(c echo.Context) error {
	var f ports.CalibrationFilter
	if err := echo.QueryParamsBinder(c).
		Bool("overdue", &f.Overdue).
		Bool("due_soon", &f.DueSoon).
		Bool("sales", &f.Sales).
		Bool("rental", &f.Rental).
		String("search", &f.Search).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filter")
	}

	o, err := h.service.CalibrationOverview(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCalibrationOverviewResponse(o))
}

// RecordCalibration handles POST /v1/calibration/devices/:id.
//
// @Summary      Record a completed calibration
// @Tags         calibration
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Device id"
// @Param        body  body      recordCalibrationRequest  true  "Calibration date and interval (default 12 months)"
// @Success      200   {object}  deviceResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/calibration/devices/{id} [post]
func (h *MaintenanceHandler) RecordCalibration(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req recordCalibrationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	date, err := domain.ParseDate("date", req.Date)
	if err != nil {
		return err
	}

	device, err := h.service.RecordCalibration(c.Request().Context(), actorID, c.Param("id"), ports.RecordCalibrationInput{
		Date:           date,
		IntervalMonths: req.IntervalMonths,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeviceResponse(*device))
}

// Reminders handles GET /v1/reminders.
//
// @Summary      Service reminder overview
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Param        overdue   query     bool    false  "Only overdue reminders"
// @Param        due_soon  query     bool    false  "Only reminders due within a month"
// @Param        enabled   query     bool    false  "Only enabled reminders"
// @Param        disabled  query     bool    false  "Only disabled reminders"
// @Param        search    query     string  false  "Substring of user name, company, service type or site"
// @Success      200       {object}  reminderOverviewResponse
// @Router       /v1/reminders [get]
func (h *MaintenanceHandler) Reminders(c echo.Context) error {
	var f ports.ReminderFilter
	if err := echo.QueryParamsBinder(c).
		Bool("overdue", &f.Overdue).
		Bool("due_soon", &f.DueSoon).
		Bool("enabled", &f.Enabled).
		Bool("disabled", &f.Disabled).
		String("search", &f.Search).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filter")
	}

	o, err := h.service.ReminderOverview(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReminderOverviewResponse(o))
}

// GetReminder handles GET /v1/reminders/:id.
//
// @Summary      Get a service reminder
// @Tags         reminders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reminder id"
// @Success      200  {object}  reminderResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/reminders/{id} [get]
func (h *MaintenanceHandler) GetReminder(c echo.Context) error {
	r, err := h.service.GetReminder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReminderResponse(*r))
}

// AddReminder handles POST /v1/reminders.
//
// @Summary      Schedule a service reminder
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addReminderRequest  true  "Reminder details"
// @Success      201   {object}  reminderResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/reminders [post]
func (h *MaintenanceHandler) AddReminder(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req addReminderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	in, err := toAddReminderInput(req)
	if err != nil {
		return err
	}

	r, err := h.service.AddReminder(c.Request().Context(), actorID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toReminderResponse(*r))
}

// UpdateReminder handles PATCH /v1/reminders/:id.
//
// @Summary      Edit a service reminder
// @Description  Changing reminder_months recomputes the due date from the last service date.
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Reminder id"
// @Param        body  body      updateReminderRequest  true  "Fields to change"
// @Success      200   {object}  reminderResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/reminders/{id} [patch]
func (h *MaintenanceHandler) UpdateReminder(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req updateReminderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	patch, err := toReminderPatch(req)
	if err != nil {
		return err
	}

	r, err := h.service.UpdateReminder(c.Request().Context(), actorID, c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReminderResponse(*r))
}
