package handlers

import (
	"court_docket_app_go/db"
	"court_docket_app_go/models"
	"court_docket_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// auditEntry is an audit log row with its field-level diff
type auditEntry struct {
	models.AuditLog
	Changes []models.AuditChange `json:"changes,omitempty"`
}

func auditTimeline(logs []models.AuditLog) []auditEntry {
	entries := make([]auditEntry, 0, len(logs))
	for i := range logs {
		entries = append(entries, auditEntry{AuditLog: logs[i], Changes: logs[i].Changes()})
	}
	return entries
}

// CaseHistoryHandler returns the audit history of a case
func CaseHistoryHandler(c echo.Context) error {
	caseID := c.Param("id")

	exists, err := services.CaseExists(c.Request().Context(), db.DB, caseID)
	if err != nil {
		return serviceError(err, "Failed to fetch case")
	}
	if !exists {
		return serviceError(services.ErrCaseNotFound, "Failed to fetch case")
	}

	logs, err := services.GetResourceAuditHistory(db.DB, caseID, models.AuditResourceCase)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch history")
	}
	return c.JSON(http.StatusOK, auditTimeline(logs))
}

// HearingHistoryHandler returns the audit history of a hearing and its outcome.
// Deleted hearings keep their history.
func HearingHistoryHandler(c echo.Context) error {
	hearingID := c.Param("id")

	logs, err := services.GetResourceAuditHistory(db.DB, hearingID, models.AuditResourceHearing, models.AuditResourceOutcome)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch history")
	}

	if len(logs) == 0 {
		if _, err := hearingService(c).GetHearing(c.Request().Context(), hearingID); err != nil {
			return serviceError(err, "Failed to fetch hearing")
		}
	}
	return c.JSON(http.StatusOK, auditTimeline(logs))
}
