package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qsafe/devicehub/internal/api/metrics"
	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
)

// BillingHandler serves rental charges, payments and billing blocks.
type BillingHandler struct {
	service ports.BillingService
}

func NewBillingHandler(service ports.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

// Overview handles GET /v1/billing.
//
// @Summary      Billing dashboard
// @Description  Rows are narrowed by search; the summary always covers every device.
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring of name, location or id"
// @Success      200     {object}  billingOverviewResponse
// @Router       /v1/billing [get]
func (h *BillingHandler) Overview(c echo.Context) error {
	o, err := h.service.Overview(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBillingOverviewResponse(o))
}

// UserDevices handles GET /v1/billing/users/:id/devices.
//
// @Summary      Billing rows for a user's devices
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {array}   billingRowResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/billing/users/{id}/devices [get]
func (h *BillingHandler) UserDevices(c echo.Context) error {
	id, err := pathUserID(c)
	if err != nil {
		return err
	}
	rows, err := h.service.UserDevices(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBillingRowResponses(rows))
}

// ToggleBlock handles POST /v1/billing/devices/:id/block.
//
// @Summary      Block or unblock a device
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Device id"
// @Success      200  {object}  blockResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/billing/devices/{id}/block [post]
func (h *BillingHandler) ToggleBlock(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	blocked, err := h.service.ToggleBlock(c.Request().Context(), actorID, id)
	if err != nil {
		return err
	}
	state := "unblocked"
	if blocked {
		state = "blocked"
	}
	metrics.DeviceBlockTogglesTotal.WithLabelValues(state).Inc()
	return c.JSON(http.StatusOK, blockResponse{DeviceID: id, Blocked: blocked})
}

// RecordPayment handles POST /v1/billing/devices/:id/payments.
//
// @Summary      Record a payment
// @Description  Charges the amount due today, marks the device Current and appends the payment to the ledger.
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Device id"
// @Success      201  {object}  paymentResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/billing/devices/{id}/payments [post]
func (h *BillingHandler) RecordPayment(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}
	res, err := h.service.RecordPayment(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}
	metrics.PaymentsRecordedTotal.Inc()
	metrics.PaymentAmountTotal.WithLabelValues(res.Currency).Add(res.Amount.InexactFloat64())

	return c.JSON(http.StatusCreated, paymentResponse{
		Device:   toDeviceResponse(res.Device),
		Amount:   money(res.Amount),
		Currency: res.Currency,
	})
}

// SetPaymentStatus handles PUT /v1/billing/devices/:id/payment-status.
//
// @Summary      Set a device's payment status
// @Tags         billing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Device id"
// @Param        body  body      paymentStatusRequest  true  "Current or Overdue"
// @Success      200   {object}  deviceResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/billing/devices/{id}/payment-status [put]
func (h *BillingHandler) SetPaymentStatus(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req paymentStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	status, err := domain.ParsePaymentStatus(req.Status)
	if err != nil {
		return err
	}

	device, err := h.service.SetPaymentStatus(c.Request().Context(), actorID, c.Param("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeviceResponse(*device))
}

// Payments handles GET /v1/billing/payments.
//
// @Summary      Payment ledger
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Param        device_id  query     string  false  "Only payments for this device"
// @Param        limit      query     int     false  "Maximum entries (default 100)"
// @Success      200        {array}   auditEventResponse
// @Router       /v1/billing/payments [get]
func (h *BillingHandler) Payments(c echo.Context) error {
	var deviceID string
	var limit int
	if err := echo.QueryParamsBinder(c).
		String("device_id", &deviceID).
		Int("limit", &limit).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
	}

	events, err := h.service.Payments(c.Request().Context(), deviceID, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuditEventResponses(events))
}
