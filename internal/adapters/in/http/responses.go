package http

import (
	"errors"
	"net/http"

	"courierhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// envelope is the uniform JSON response body. Data is present on success,
// Message on failure.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func ok(ctx echo.Context, data any) error {
	return ctx.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func created(ctx echo.Context, data any) error {
	return ctx.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Message: message})
}

// fail maps a domain error to an HTTP status using the errs sentinels.
// Unclassified errors become 500 with a generic message so internals never
// leak to callers.
func fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, envelope{Success: false, Message: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, envelope{Success: false, Message: err.Error()})
	default:
		log.Errorf("unhandled error on %s %s: %v", ctx.Request().Method, ctx.Request().URL.Path, err)
		return ctx.JSON(http.StatusInternalServerError,
			envelope{Success: false, Message: "internal server error"})
	}
}
