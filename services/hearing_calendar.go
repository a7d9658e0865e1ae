package services

import (
	"court_docket_app_go/models"
	"fmt"
	"strings"
	"time"
)

// ICSContentType is the MIME type of generated calendar files
const ICSContentType = "text/calendar; charset=utf-8"

// GenerateHearingICS generates an ICS file content for a hearing.
// Hearings without a time become all-day events; with a time they are
// floating local-time events, since the court's timezone is not stored.
func GenerateHearingICS(h *models.Hearing, caseNumber string) ([]byte, error) {
	if h == nil {
		return nil, fmt.Errorf("hearing is required")
	}

	dtStamp := time.Now().UTC().Format("20060102T150405Z")

	var dtStart, dtEnd string
	if h.Time != nil && *h.Time != "" {
		clock, err := time.Parse("15:04", *h.Time)
		if err != nil {
			return nil, fmt.Errorf("invalid hearing time %q: %w", *h.Time, err)
		}
		start := time.Date(h.Date.Year(), h.Date.Month(), h.Date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
		dtStart = "DTSTART:" + start.Format("20060102T150405")
		dtEnd = "DTEND:" + start.Add(time.Hour).Format("20060102T150405")
	} else {
		dtStart = "DTSTART;VALUE=DATE:" + h.Date.Format("20060102")
		dtEnd = "DTEND;VALUE=DATE:" + h.Date.AddDate(0, 0, 1).Format("20060102")
	}

	summary := fmt.Sprintf("Hearing %s: %s", strings.ReplaceAll(h.Type, "_", " "), caseNumber)

	var location []string
	for _, part := range []*string{h.Chamber, h.Jurisdiction, h.City} {
		if part != nil && *part != "" {
			location = append(location, *part)
		}
	}

	description := fmt.Sprintf("Status: %s\\nEnrolment reminder: %s", h.Status, h.EnrolmentReminderDate.Format(DateLayout))
	if newDate, ok := postponedTo(h.Outcome); ok {
		description += "\\nPostponed to: " + newDate.Format(DateLayout)
	} else if !h.IsUpcoming() && !h.IsReported() {
		description += "\\nOutcome not reported"
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//CourtDocket//Hearing//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + h.ID,
		"DTSTAMP:" + dtStamp,
		dtStart,
		dtEnd,
		"SUMMARY:" + escapeICSText(summary),
		"DESCRIPTION:" + description,
	}
	if len(location) > 0 {
		lines = append(lines, "LOCATION:"+escapeICSText(strings.Join(location, ", ")))
	}
	status := "CONFIRMED"
	if h.IsReported() && h.Outcome != nil && h.Outcome.Type == models.OutcomeTypeStrikeOff {
		status = "CANCELLED"
	}
	lines = append(lines, "STATUS:"+status, "END:VEVENT", "END:VCALENDAR")

	return []byte(strings.Join(lines, "\r\n")), nil
}

// escapeICSText escapes backslashes, semicolons, commas and newlines
func escapeICSText(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)
	return replacer.Replace(s)
}
