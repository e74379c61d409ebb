package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/qsafe/devicehub/internal/api/middleware"
	"github.com/qsafe/devicehub/internal/core/domain"
)

// ctxActor extracts the caller id injected by the Auth middleware. A missing
// id means the route was mounted without Auth; reject with 401.
func ctxActor(c echo.Context) (int, error) {
	id, _ := c.Get(middleware.KeyUserID).(int)
	if id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// ctxToken returns the jti and expiry of the caller's token.
func ctxToken(c echo.Context) (string, time.Time) {
	jti, _ := c.Get(middleware.KeyJTI).(string)
	exp, _ := c.Get(middleware.KeyExpiry).(time.Time)
	return jti, exp
}

// bind decodes and validates the request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}

func pathUserID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	return id, nil
}
