package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/qsafe/devicehub/internal/api/metrics"
	"github.com/qsafe/devicehub/internal/core/ports"
)

// DeviceHandler serves the device inventory.
type DeviceHandler struct {
	service ports.DeviceService
}

func NewDeviceHandler(service ports.DeviceService) *DeviceHandler {
	return &DeviceHandler{service: service}
}

// List handles GET /v1/devices.
//
// @Summary      List devices
// @Tags         devices
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring of name, location or id"
// @Success      200     {array}   deviceResponse
// @Router       /v1/devices [get]
func (h *DeviceHandler) List(c echo.Context) error {
	devices, err := h.service.ListDevices(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeviceResponses(devices))
}

// Get handles GET /v1/devices/:id.
//
// @Summary      Get a device
// @Tags         devices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Device id (e.g. DEV001)"
// @Success      200  {object}  deviceResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/devices/{id} [get]
func (h *DeviceHandler) Get(c echo.Context) error {
	device, err := h.service.GetDevice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeviceResponse(*device))
}

// Create handles POST /v1/devices.
//
// @Summary      Register a device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addDeviceRequest  true  "Device details"
// @Success      201   {object}  deviceResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/devices [post]
func (h *DeviceHandler) Create(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req addDeviceRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	in, err := toAddDeviceInput(req)
	if err != nil {
		return err
	}

	device, err := h.service.AddDevice(c.Request().Context(), actorID, in)
	if err != nil {
		return err
	}
	metrics.DevicesRegisteredTotal.WithLabelValues("api").Inc()
	return c.JSON(http.StatusCreated, toDeviceResponse(*device))
}

// Import handles POST /v1/devices/import. The payload is either the raw
// text body or a multipart "file" field.
//
// @Summary      Bulk import devices
// @Tags         devices
// @Accept       plain,mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file    false  "Import file with an id,name,location header"
// @Success      201   {object}  importResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/devices/import [post]
func (h *DeviceHandler) Import(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	var body io.Reader = c.Request().Body
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "missing file field")
		}
		f, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
		}
		defer f.Close()
		body = f
	}

	res, err := h.service.ImportDevices(c.Request().Context(), actorID, body)
	if err != nil {
		return err
	}
	metrics.DevicesRegisteredTotal.WithLabelValues("import").Add(float64(len(res.Added)))
	metrics.ImportRowsSkippedTotal.Add(float64(len(res.Skipped)))

	return c.JSON(http.StatusCreated, importResponse{
		AddedCount: len(res.Added),
		Added:      toDeviceResponses(res.Added),
		Skipped:    res.Skipped,
	})
}

// UpdateConfig handles PATCH /v1/devices/:id/config.
//
// @Summary      Update device configuration
// @Tags         devices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Device id"
// @Param        body  body      configPatchRequest  true  "Keys valid for the device category"
// @Success      200   {object}  deviceResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/devices/{id}/config [patch]
func (h *DeviceHandler) UpdateConfig(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req configPatchRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	device, err := h.service.UpdateConfig(c.Request().Context(), actorID, c.Param("id"), toConfigPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDeviceResponse(*device))
}
