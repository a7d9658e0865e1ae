package handlers

import (
	"bytes"
	"court_docket_app_go/db"
	"court_docket_app_go/middleware"
	"court_docket_app_go/models"
	"court_docket_app_go/services"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// hearingRequest is the body of hearing create and update calls. Absent
// fields are left alone on update.
type hearingRequest struct {
	Date             *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time             *string `json:"time" validate:"omitempty,datetime=15:04"`
	Type             *string `json:"type" validate:"omitempty,max=30"`
	Jurisdiction     *string `json:"jurisdiction" validate:"omitempty,max=200"`
	Chamber          *string `json:"chamber" validate:"omitempty,max=200"`
	City             *string `json:"city" validate:"omitempty,max=100"`
	PreparationNotes *string `json:"preparation_notes"`
	Prepared         *bool   `json:"prepared"`
	ReminderEnabled  *bool   `json:"reminder_enabled"`
	EnrolmentDone    *bool   `json:"enrolment_done"`
	Status           *string `json:"status"`
}

func (r hearingRequest) input() services.HearingInput {
	return services.HearingInput{
		Date:             r.Date,
		Time:             r.Time,
		Type:             r.Type,
		Jurisdiction:     r.Jurisdiction,
		Chamber:          r.Chamber,
		City:             r.City,
		PreparationNotes: r.PreparationNotes,
		Prepared:         r.Prepared,
		ReminderEnabled:  r.ReminderEnabled,
		EnrolmentDone:    r.EnrolmentDone,
		Status:           r.Status,
	}
}

func hearingService(c echo.Context) *services.HearingService {
	return services.NewHearingService(db.DB, middleware.GetClock(c))
}

// CreateHearingHandler schedules a hearing for a case
func CreateHearingHandler(c echo.Context) error {
	caseID := c.Param("id")

	var req hearingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	hearing, err := hearingService(c).CreateHearing(c.Request().Context(), caseID, req.input(), middleware.GetActorID(c))
	if err != nil {
		return serviceError(err, "Failed to create hearing")
	}

	services.LogAuditEvent(db.DB, middleware.GetAuditContext(c), models.AuditActionCreate,
		models.AuditResourceHearing, hearing.ID, hearing.DateString(),
		"Hearing scheduled", nil, hearing)

	return c.JSON(http.StatusCreated, hearing)
}

// ListCaseHearingsHandler returns the hearings of a case, earliest first
func ListCaseHearingsHandler(c echo.Context) error {
	hearings, err := hearingService(c).ListCaseHearings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "Failed to fetch hearings")
	}
	return c.JSON(http.StatusOK, hearings)
}

// ExportCaseHearingsHandler downloads the hearings of a case as XLSX
func ExportCaseHearingsHandler(c echo.Context) error {
	svc := hearingService(c)
	buf, err := svc.ExportCaseHearings(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "Failed to export hearings")
	}

	filename := services.ExportFileName("case-hearings", middleware.GetClock(c).Today())
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, services.XLSXContentType, buf.Bytes())
}

// GetHearingHandler returns a hearing with its outcome
func GetHearingHandler(c echo.Context) error {
	hearing, err := hearingService(c).GetHearing(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "Failed to fetch hearing")
	}
	return c.JSON(http.StatusOK, hearing)
}

// UpdateHearingHandler applies a partial update to a hearing
func UpdateHearingHandler(c echo.Context) error {
	hearingID := c.Param("id")
	svc := hearingService(c)

	var req hearingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	before, err := svc.GetHearing(c.Request().Context(), hearingID)
	if err != nil {
		return serviceError(err, "Failed to fetch hearing")
	}

	hearing, err := svc.UpdateHearing(c.Request().Context(), hearingID, req.input())
	if err != nil {
		return serviceError(err, "Failed to update hearing")
	}

	services.LogAuditEvent(db.DB, middleware.GetAuditContext(c), models.AuditActionUpdate,
		models.AuditResourceHearing, hearing.ID, hearing.DateString(),
		"Hearing updated", before, hearing)

	return c.JSON(http.StatusOK, hearing)
}

// DeleteHearingHandler removes a hearing and its outcome
func DeleteHearingHandler(c echo.Context) error {
	hearingID := c.Param("id")
	svc := hearingService(c)

	before, err := svc.GetHearing(c.Request().Context(), hearingID)
	if err != nil {
		return serviceError(err, "Failed to fetch hearing")
	}

	if err := svc.DeleteHearing(c.Request().Context(), hearingID); err != nil {
		return serviceError(err, "Failed to delete hearing")
	}

	services.LogAuditEvent(db.DB, middleware.GetAuditContext(c), models.AuditActionDelete,
		models.AuditResourceHearing, hearingID, before.DateString(),
		"Hearing deleted", before, nil)

	return c.NoContent(http.StatusNoContent)
}

// HearingICSHandler downloads a hearing as an iCalendar file
func HearingICSHandler(c echo.Context) error {
	ctx := c.Request().Context()

	hearing, err := hearingService(c).GetHearing(ctx, c.Param("id"))
	if err != nil {
		return serviceError(err, "Failed to fetch hearing")
	}

	caseNumber := hearing.CaseID
	if caseRecord, err := services.GetCaseByID(ctx, db.DB, hearing.CaseID); err == nil {
		caseNumber = caseRecord.CaseNumber
	}

	icsContent, err := services.GenerateHearingICS(hearing, caseNumber)
	if err != nil {
		return serviceError(err, "Failed to generate calendar file")
	}

	c.Response().Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="hearing-%s.ics"`, hearing.DateString()))
	return c.Stream(http.StatusOK, services.ICSContentType, bytes.NewReader(icsContent))
}

// MarkEnrolmentDoneHandler flags the enrolment of a hearing as done
func MarkEnrolmentDoneHandler(c echo.Context) error {
	hearing, err := hearingService(c).MarkEnrolmentDone(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "Failed to mark enrolment done")
	}

	services.LogAuditEvent(db.DB, middleware.GetAuditContext(c), models.AuditActionUpdate,
		models.AuditResourceHearing, hearing.ID, hearing.DateString(),
		"Enrolment marked done", nil, map[string]bool{"enrolment_done": true})

	return c.JSON(http.StatusOK, hearing)
}

// ListDueRemindersHandler returns the hearings whose enrolment reminder is due
func ListDueRemindersHandler(c echo.Context) error {
	hearings, err := hearingService(c).ListDueEnrolmentReminders(c.Request().Context())
	if err != nil {
		return serviceError(err, "Failed to fetch reminders")
	}
	return c.JSON(http.StatusOK, hearings)
}

type exportResponse struct {
	Key         string `json:"key"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
	Count       int    `json:"count"`
}

// ExportDueRemindersHandler writes the due-reminder list to storage as XLSX
func ExportDueRemindersHandler(c echo.Context) error {
	if services.Storage == nil || !services.Storage.IsConfigured() {
		return serviceError(services.ErrStorageDisabled, "Failed to export reminders")
	}

	result, hearings, err := hearingService(c).ExportDueEnrolmentReminders(c.Request().Context(), services.Storage)
	if err != nil {
		return serviceError(err, "Failed to export reminders")
	}

	services.LogAuditEvent(db.DB, middleware.GetAuditContext(c), models.AuditActionExport,
		models.AuditResourceDocket, result.Key, result.FileName,
		fmt.Sprintf("Exported %d due enrolment reminders", len(hearings)), nil, nil)

	return c.JSON(http.StatusCreated, exportResponse{
		Key:         result.Key,
		FileName:    result.FileName,
		FileSize:    result.FileSize,
		URL:         result.URL,
		DownloadURL: "/api/" + result.Key,
		Count:       len(hearings),
	})
}
