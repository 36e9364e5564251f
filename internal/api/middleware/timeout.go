package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies a longer timeout to AI-backed resume
// endpoints and the default timeout everywhere else
func SelectiveTimeoutConfig(defaultTimeout, aiTimeout time.Duration) echo.MiddlewareFunc {
	standard := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultTimeout,
		Skipper: isResumePath,
	})
	extended := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: aiTimeout,
		Skipper: func(c echo.Context) bool { return !isResumePath(c) },
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return standard(extended(next))
	}
}

func isResumePath(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/v1/resume")
}
