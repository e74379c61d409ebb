package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qsafe/devicehub/internal/core/domain"
	"github.com/qsafe/devicehub/internal/core/ports"
)

// AuditHandler exposes the mutation ledger.
type AuditHandler struct {
	log ports.AuditLog
}

func NewAuditHandler(log ports.AuditLog) *AuditHandler {
	return &AuditHandler{log: log}
}

// List handles GET /v1/audit.
//
// @Summary      Audit trail
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        kind       query     string  false  "Event kind (e.g. access_granted)"
// @Param        device_id  query     string  false  "Device id"
// @Param        user_id    query     int     false  "User id"
// @Param        limit      query     int     false  "Maximum entries (default 100)"
// @Success      200        {array}   auditEventResponse
// @Failure      403        {object}  errorResponse
// @Router       /v1/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	var f domain.AuditFilter
	var kind string
	if err := echo.QueryParamsBinder(c).
		String("kind", &kind).
		String("device_id", &f.DeviceID).
		Int("user_id", &f.UserID).
		Int("limit", &f.Limit).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id and limit must be integers")
	}
	f.Kind = domain.AuditKind(kind)

	events, err := h.log.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuditEventResponses(events))
}
