package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront.GO/magento"
	"storefront.GO/resolver"
)

// BadRequestError is a malformed or missing request input.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// BadRequest returns a *BadRequestError.
func BadRequest(msg string) error {
	return &BadRequestError{Message: msg}
}

// StatusFor maps an error onto an HTTP status.
func StatusFor(err error) int {
	var (
		bad  *BadRequestError
		verr validator.ValidationErrors
		terr *magento.TransportError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &bad), errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, resolver.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &terr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Error writes err as {"error": ...}. Input and configuration errors carry
// their own message, anything else is reported as fallback.
func Error(c echo.Context, logger *zap.Logger, err error, fallback string) error {
	status := StatusFor(err)
	msg := fallback
	switch {
	case status == http.StatusBadRequest:
		msg = err.Error()
	case status == http.StatusNotFound:
		msg = "Product not found"
	case errors.Is(err, magento.ErrNotConfigured):
		msg = "Magento endpoint is not configured"
	}
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, zap.Int("status", status), zap.Error(err))
	}
	return c.JSON(status, echo.Map{"error": msg})
}
