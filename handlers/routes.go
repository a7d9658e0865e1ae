package handlers

import (
	"court_docket_app_go/middleware"

	"github.com/labstack/echo/v4"
)

// RegisterAPIRoutes mounts the docket API on g
func RegisterAPIRoutes(g *echo.Group) {
	g.POST("/cases", CreateCaseHandler)
	g.GET("/cases/:id/hearings", ListCaseHearingsHandler)
	g.POST("/cases/:id/hearings", CreateHearingHandler)
	g.GET("/cases/:id/hearings/export", ExportCaseHearingsHandler, middleware.ExportRateLimiter.Middleware())
	g.GET("/cases/:id/history", CaseHistoryHandler)

	// static segments first for readability; echo prefers them over :id anyway
	g.GET("/hearings/reminders", ListDueRemindersHandler)
	g.POST("/hearings/reminders/export", ExportDueRemindersHandler, middleware.ExportRateLimiter.Middleware())

	g.GET("/hearings/:id", GetHearingHandler)
	g.PUT("/hearings/:id", UpdateHearingHandler)
	g.DELETE("/hearings/:id", DeleteHearingHandler)
	g.GET("/hearings/:id/ics", HearingICSHandler)
	g.POST("/hearings/:id/enrolment", MarkEnrolmentDoneHandler)
	g.GET("/hearings/:id/history", HearingHistoryHandler)

	g.GET("/hearings/:id/outcome", GetOutcomeHandler)
	g.POST("/hearings/:id/outcome", RecordOutcomeHandler)
	g.PUT("/hearings/:id/outcome", UpdateOutcomeHandler)
	g.DELETE("/hearings/:id/outcome", RemoveOutcomeHandler)

	g.GET("/exports/*", DownloadExportHandler)
	g.DELETE("/exports/*", DeleteExportHandler)
}
