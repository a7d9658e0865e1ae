package handlers

import (
	"court_docket_app_go/db"
	"court_docket_app_go/middleware"
	"court_docket_app_go/models"
	"court_docket_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

type outcomeRequest struct {
	Type               *string `json:"type"`
	NewDate            *string `json:"new_date" validate:"omitempty,datetime=2006-01-02"`
	PostponementReason *string `json:"postponement_reason" validate:"omitempty,max=1000"`
	StrikeOffReason    *string `json:"strike_off_reason" validate:"omitempty,max=1000"`
	DeliberationText   *string `json:"deliberation_text"`
}

func (r outcomeRequest) input() services.OutcomeInput {
	return services.OutcomeInput{
		Type:               r.Type,
		NewDate:            r.NewDate,
		PostponementReason: r.PostponementReason,
		StrikeOffReason:    r.StrikeOffReason,
		DeliberationText:   r.DeliberationText,
	}
}

// RecordOutcomeHandler records the outcome of a hearing
func RecordOutcomeHandler(c echo.Context) error {
	hearingID := c.Param("id")

	var req outcomeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	outcome, err := hearingService(c).RecordOutcome(c.Request().Context(), hearingID, req.input(), middleware.GetActorID(c))
	if err != nil {
		return serviceError(err, "Failed to record outcome")
	}

	services.LogAuditEvent(db.DB, middleware.GetAuditContext(c), models.AuditActionCreate,
		models.AuditResourceOutcome, hearingID, outcome.Type,
		"Hearing outcome recorded", nil, outcome)

	return c.JSON(http.StatusCreated, outcome)
}

// GetOutcomeHandler returns the outcome of a hearing
func GetOutcomeHandler(c echo.Context) error {
	outcome, err := hearingService(c).GetOutcome(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "Failed to fetch outcome")
	}
	return c.JSON(http.StatusOK, outcome)
}

// UpdateOutcomeHandler edits the outcome of a hearing
func UpdateOutcomeHandler(c echo.Context) error {
	hearingID := c.Param("id")
	svc := hearingService(c)

	var req outcomeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	before, err := svc.GetOutcome(c.Request().Context(), hearingID)
	if err != nil {
		return serviceError(err, "Failed to fetch outcome")
	}

	outcome, err := svc.UpdateOutcome(c.Request().Context(), hearingID, req.input())
	if err != nil {
		return serviceError(err, "Failed to update outcome")
	}

	services.LogAuditEvent(db.DB, middleware.GetAuditContext(c), models.AuditActionUpdate,
		models.AuditResourceOutcome, hearingID, outcome.Type,
		"Hearing outcome updated", before, outcome)

	return c.JSON(http.StatusOK, outcome)
}

// RemoveOutcomeHandler deletes the outcome of a hearing
func RemoveOutcomeHandler(c echo.Context) error {
	hearingID := c.Param("id")
	svc := hearingService(c)

	before, err := svc.GetOutcome(c.Request().Context(), hearingID)
	if err != nil {
		return serviceError(err, "Failed to fetch outcome")
	}

	if err := svc.RemoveOutcome(c.Request().Context(), hearingID); err != nil {
		return serviceError(err, "Failed to remove outcome")
	}

	services.LogAuditEvent(db.DB, middleware.GetAuditContext(c), models.AuditActionDelete,
		models.AuditResourceOutcome, hearingID, before.Type,
		"Hearing outcome removed", before, nil)

	return c.NoContent(http.StatusNoContent)
}
