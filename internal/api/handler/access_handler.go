package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qsafe/devicehub/internal/api/metrics"
	"github.com/qsafe/devicehub/internal/core/ports"
)

// AccessHandler serves grants between users and devices.
type AccessHandler struct {
	service ports.AccessService
}

func NewAccessHandler(service ports.AccessService) *AccessHandler {
	return &AccessHandler{service: service}
}

// Toggle handles POST /v1/access/toggle.
//
// @Summary      Toggle a user's access to a device
// @Tags         access
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      toggleAccessRequest  true  "User and device"
// @Success      200   {object}  accessRightResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/access/toggle [post]
func (h *AccessHandler) Toggle(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req toggleAccessRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	right, err := h.service.Toggle(c.Request().Context(), actorID, req.UserID, req.DeviceID)
	if err != nil {
		return err
	}
	result := "revoked"
	if right.Granted {
		result = "granted"
	}
	metrics.AccessTogglesTotal.WithLabelValues(result).Inc()
	return c.JSON(http.StatusOK, toAccessRightResponse(*right))
}

// Check handles GET /v1/access/check.
//
// @Summary      Check whether a user may use a device
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Param        user_id    query     int     true  "User id"
// @Param        device_id  query     string  true  "Device id"
// @Success      200        {object}  accessStatusResponse
// @Failure      404        {object}  errorResponse
// @Router       /v1/access/check [get]
func (h *AccessHandler) Check(c echo.Context) error {
	var userID int
	var deviceID string
	if err := echo.QueryParamsBinder(c).
		MustInt("user_id", &userID).
		MustString("device_id", &deviceID).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id and device_id are required")
	}

	st, err := h.service.Check(c.Request().Context(), userID, deviceID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accessStatusResponse{
		UserID:     st.UserID,
		DeviceID:   st.DeviceID,
		HasAccess:  st.HasAccess,
		Blocked:    st.Blocked,
		CanOperate: st.CanOperate,
	})
}

// Matrix handles GET /v1/access/users/:id.
//
// @Summary      Every device with the user's grant flag
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {array}   matrixEntryResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/access/users/{id} [get]
func (h *AccessHandler) Matrix(c echo.Context) error {
	id, err := pathUserID(c)
	if err != nil {
		return err
	}
	entries, err := h.service.Matrix(c.Request().Context(), id)
	if err != nil {
		return err
	}
	out := make([]matrixEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, matrixEntryResponse{Device: toDeviceResponse(e.Device), Granted: e.Granted})
	}
	return c.JSON(http.StatusOK, out)
}

// Rights handles GET /v1/access/rights.
//
// @Summary      List access records
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  accessRightResponse
// @Router       /v1/access/rights [get]
func (h *AccessHandler) Rights(c echo.Context) error {
	rights, err := h.service.Rights(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]accessRightResponse, 0, len(rights))
	for _, r := range rights {
		out = append(out, toAccessRightResponse(r))
	}
	return c.JSON(http.StatusOK, out)
}

// Unassigned handles GET /v1/access/unassigned.
//
// @Summary      Devices nobody holds a grant for
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  deviceResponse
// @Router       /v1/access/unassigned [get]
func (h *AccessHandler) Unassigned(c echo.Context) error {
	devices, err := h.service.Unassigned(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeviceResponses(devices))
}

// UserDevices handles GET /v1/access/users/:id/devices.
//
// @Summary      Devices granted to a user
// @Tags         access
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {array}   deviceViewResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/access/users/{id}/devices [get]
func (h *AccessHandler) UserDevices(c echo.Context) error {
	id, err := pathUserID(c)
	if err != nil {
		return err
	}
	return h.devicesFor(c, id)
}

// MyDevices handles GET /v1/me/devices.
//
// @Summary      Devices granted to the caller
// @Tags         me
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   deviceViewResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/me/devices [get]
func (h *AccessHandler) MyDevices(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}
	return h.devicesFor(c, actorID)
}

func (h *AccessHandler) devicesFor(c echo.Context, userID int) error {
	views, err := h.service.DevicesForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeviceViewResponses(views))
}
