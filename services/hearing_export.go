package services

import (
	"bytes"
	"context"
	"court_docket_app_go/models"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the MIME type of generated workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names of docket exports
const (
	SheetEnrolmentReminders = "Enrolment reminders"
	SheetCaseHearings       = "Hearings"
)

var docketHeaders = []string{
	"Case number", "Hearing date", "Time", "Type", "Jurisdiction", "Chamber", "City",
	"Status", "Reminder date", "Enrolment done", "Outcome", "Postponed to",
}

// BuildHearingWorkbook renders hearings as a single-sheet XLSX workbook
func BuildHearingWorkbook(sheet string, hearings []models.Hearing) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E7FF"}, Pattern: 1},
	})

	for i, header := range docketHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(docketHeaders), 1)
	f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for i := range hearings {
		row := i + 2
		for col, value := range hearingRow(&hearings[i]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	f.SetColWidth(sheet, "A", "L", 18)

	return f.WriteToBuffer()
}

func hearingRow(h *models.Hearing) []interface{} {
	caseNumber := h.CaseID
	if h.Case != nil && h.Case.CaseNumber != "" {
		caseNumber = h.Case.CaseNumber
	}

	enrolment := "No"
	if h.EnrolmentDone {
		enrolment = "Yes"
	}

	outcome, postponed := "", ""
	switch {
	case h.Outcome != nil:
		outcome = h.Outcome.Type
		if newDate, ok := postponedTo(h.Outcome); ok {
			postponed = newDate.Format(DateLayout)
		}
	case !h.IsUpcoming() && !h.IsReported():
		outcome = "Not reported"
	}

	return []interface{}{
		caseNumber,
		h.DateString(),
		derefString(h.Time),
		h.Type,
		derefString(h.Jurisdiction),
		derefString(h.Chamber),
		derefString(h.City),
		h.Status,
		h.EnrolmentReminderDate.UTC().Format(DateLayout),
		enrolment,
		outcome,
		postponed,
	}
}

// ExportDueEnrolmentReminders writes the due-reminder list to storage as XLSX
func (s *HearingService) ExportDueEnrolmentReminders(ctx context.Context, storage StorageProvider) (*StorageResult, []models.Hearing, error) {
	hearings, err := s.ListDueEnrolmentReminders(ctx)
	if err != nil {
		return nil, nil, err
	}

	buf, err := BuildHearingWorkbook(SheetEnrolmentReminders, hearings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build reminder workbook: %w", err)
	}

	key := GenerateDocketExportKey("enrolment-reminders", s.clock.Today())
	size := int64(buf.Len())
	result, err := storage.UploadReader(ctx, buf, key, XLSXContentType, size)
	if err != nil {
		return nil, nil, err
	}
	return result, hearings, nil
}

// ExportCaseHearings renders every hearing of a case as XLSX
func (s *HearingService) ExportCaseHearings(ctx context.Context, caseID string) (*bytes.Buffer, error) {
	hearings, err := s.ListCaseHearings(ctx, caseID)
	if err != nil {
		return nil, err
	}
	caseRecord, err := GetCaseByID(ctx, s.db, caseID)
	if err != nil {
		return nil, err
	}
	for i := range hearings {
		hearings[i].Case = caseRecord
	}
	return BuildHearingWorkbook(SheetCaseHearings, hearings)
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// ExportFileName names a downloaded export after its kind and day
func ExportFileName(kind string, day time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", kind, day.Format(DateLayout))
}
