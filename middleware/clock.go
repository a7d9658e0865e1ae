package middleware

import (
	"court_docket_app_go/services"

	"github.com/labstack/echo/v4"
)

const ContextKeyClock = "clock"

// InjectClock makes clock available to handlers
func InjectClock(clock services.Clock) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyClock, clock)
			return next(c)
		}
	}
}

// GetClock retrieves the request clock, falling back to the UTC wall clock
func GetClock(c echo.Context) services.Clock {
	if clock, ok := c.Get(ContextKeyClock).(services.Clock); ok && clock != nil {
		return clock
	}
	return services.SystemClock{}
}
