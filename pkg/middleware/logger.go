package middleware

import (
	"strconv"

	"inventory-system/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// InjectLogger puts the logger into the request context.
func InjectLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("logger", logger)
			return next(c)
		}
	}
}

// CountRequests records per-route prometheus counters.
func CountRequests() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			metrics.HTTPRequests.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status/100*100),
			).Inc()
			return err
		}
	}
}
