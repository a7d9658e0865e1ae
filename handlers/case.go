package handlers

import (
	"court_docket_app_go/db"
	"court_docket_app_go/middleware"
	"court_docket_app_go/models"
	"court_docket_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

type createCaseRequest struct {
	CaseNumber string  `json:"case_number" validate:"required,max=100"`
	Title      *string `json:"title" validate:"omitempty,max=255"`
	Status     string  `json:"status" validate:"omitempty,oneof=OPEN ON_HOLD CLOSED"`
}

// CreateCaseHandler registers a case hearings can be attached to
func CreateCaseHandler(c echo.Context) error {
	var req createCaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	caseRecord := models.Case{
		CaseNumber: req.CaseNumber,
		Title:      req.Title,
		Status:     req.Status,
	}
	if err := services.CreateCase(c.Request().Context(), db.DB, &caseRecord); err != nil {
		return serviceError(err, "Failed to create case")
	}

	services.LogAuditEvent(db.DB, middleware.GetAuditContext(c), models.AuditActionCreate,
		models.AuditResourceCase, caseRecord.ID, caseRecord.CaseNumber,
		"Case created", nil, caseRecord)

	return c.JSON(http.StatusCreated, caseRecord)
}
