package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/qsafe/devicehub/internal/core/domain"
)

// errorBody is the envelope every failed request gets: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// sentinelStatus maps domain sentinels to a status and a fixed message. An
// empty message means the error text itself is safe to show.
var sentinelStatus = []struct {
	err  error
	code int
	msg  string
}{
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
	{domain.ErrUserExists, http.StatusConflict, "user already exists"},
	{domain.ErrDeviceExists, http.StatusConflict, "device already exists"},
	{domain.ErrNotFound, http.StatusNotFound, ""},
	{domain.ErrValidation, http.StatusUnprocessableEntity, ""},
}

// NewHTTPErrorHandler renders handler errors as JSON. Unknown errors are
// logged with the request path and answered with a bare 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, known := statusFor(err)
		if !known {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorBody{Error: msg})
	}
}

func statusFor(err error) (code int, msg string, known bool) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message), true
	}

	// Typed errors carry the entity or field, which is more useful than the
	// sentinel text.
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, nf.Error(), true
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ve.Error(), true
	}

	for _, s := range sentinelStatus {
		if errors.Is(err, s.err) {
			if s.msg == "" {
				return s.code, err.Error(), true
			}
			return s.code, s.msg, true
		}
	}
	return http.StatusInternalServerError, "internal server error", false
}
