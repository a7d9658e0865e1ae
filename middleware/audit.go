package middleware

import (
	"court_docket_app_go/services"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	ContextKeyAuditContext = "audit_context"
	// HeaderActorID identifies the acting user. Authentication happens upstream.
	HeaderActorID = "X-User-ID"
)

// AuditContext is middleware that extracts actor info for audit logging
func AuditContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyAuditContext, services.AuditContext{
				ActorID:   strings.TrimSpace(c.Request().Header.Get(HeaderActorID)),
				IPAddress: c.RealIP(),
				UserAgent: c.Request().UserAgent(),
			})
			return next(c)
		}
	}
}

// GetAuditContext retrieves the audit context from the request
func GetAuditContext(c echo.Context) services.AuditContext {
	if ctx, ok := c.Get(ContextKeyAuditContext).(services.AuditContext); ok {
		return ctx
	}
	return services.AuditContext{}
}

// GetActorID returns the acting user ID, empty when anonymous
func GetActorID(c echo.Context) string {
	return GetAuditContext(c).ActorID
}
