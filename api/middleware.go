package api

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront.GO/magento"
)

// StoreContext copies the Store request header into the request context.
func StoreContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if store := c.Request().Header.Get(magento.HeaderStore); store != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(magento.WithStore(req.Context(), store)))
			}
			return next(c)
		}
	}
}

// RequestLogger logs every request and sets the X-Request-Duration-ms header.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			c.Response().Before(func() {
				c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
			})
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			logger.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()))
			return nil
		}
	}
}
