package services

import (
	"context"
	"court_docket_app_go/models"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

// HearingService schedules hearings, records their outcomes and answers
// enrolment reminder queries
type HearingService struct {
	db    *gorm.DB
	clock Clock
}

// NewHearingService creates a hearing service. A nil clock reads the wall clock in UTC.
func NewHearingService(db *gorm.DB, clock Clock) *HearingService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &HearingService{db: db, clock: clock}
}

// HearingInput carries hearing fields on create and update. Nil means "not supplied".
type HearingInput struct {
	Date             *string // YYYY-MM-DD
	Time             *string // HH:MM
	Type             *string
	Jurisdiction     *string
	Chamber          *string
	City             *string
	PreparationNotes *string
	Prepared         *bool
	ReminderEnabled  *bool
	EnrolmentDone    *bool
	Status           *string
}

// statusDirective resolves the explicit-or-derived status choice once
func (in HearingInput) statusDirective() (StatusDirective, error) {
	if in.Status == nil {
		return DerivedStatus(), nil
	}
	status := strings.ToUpper(strings.TrimSpace(*in.Status))
	if !models.IsValidHearingStatus(status) {
		return StatusDirective{}, validationError("invalid hearing status %q", *in.Status)
	}
	if status == models.HearingStatusReported {
		return StatusDirective{}, validationError("status %s can only be set by recording an outcome", status)
	}
	return ExplicitStatus(status), nil
}

// scheduleDate parses a hearing date and rejects weekends
func scheduleDate(value string) (time.Time, error) {
	date, err := ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	if IsWeekend(date) {
		Metrics.ScheduleRejections.WithLabelValues(date.Weekday().String()).Inc()
		return time.Time{}, fmt.Errorf("%w: hearing date %s falls on a %s; the next business day is %s",
			ErrInvalidSchedule, date.Format(DateLayout), date.Weekday(), NextWorkingDay(date).Format(DateLayout))
	}
	return date, nil
}

func parseHearingType(value string) (string, error) {
	hearingType := strings.ToUpper(strings.TrimSpace(value))
	if !models.IsValidHearingType(hearingType) {
		return "", validationError("invalid hearing type %q", value)
	}
	return hearingType, nil
}

// CreateHearing schedules a hearing for an existing case
func (s *HearingService) CreateHearing(ctx context.Context, caseID string, input HearingInput, actorID string) (*models.Hearing, error) {
	exists, err := CaseExists(ctx, s.db, caseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCaseNotFound
	}

	if input.Date == nil {
		return nil, validationError("hearing date is required")
	}
	date, err := scheduleDate(*input.Date)
	if err != nil {
		return nil, err
	}

	hearingType := models.HearingTypeOther
	if input.Type != nil {
		if hearingType, err = parseHearingType(*input.Type); err != nil {
			return nil, err
		}
	}

	directive, err := input.statusDirective()
	if err != nil {
		return nil, err
	}
	status := models.HearingStatusUpcoming
	if directive.IsExplicit() {
		status = directive.Resolve(status, date, s.clock.Today(), false)
	}

	hearing := &models.Hearing{
		CaseID:                caseID,
		Date:                  date,
		Type:                  hearingType,
		Jurisdiction:          trimmedOrNil(input.Jurisdiction),
		Chamber:               trimmedOrNil(input.Chamber),
		City:                  trimmedOrNil(input.City),
		Status:                status,
		PreparationNotes:      sanitizeText(input.PreparationNotes),
		ReminderEnabled:       true,
		EnrolmentReminderDate: EnrolmentReminderDate(date),
		CreatedBy:             trimmedOrNil(&actorID),
	}
	if input.Time != nil && strings.TrimSpace(*input.Time) != "" {
		clockTime, err := ParseClockTime(strings.TrimSpace(*input.Time))
		if err != nil {
			return nil, err
		}
		hearing.Time = &clockTime
	}
	if input.Prepared != nil {
		hearing.Prepared = *input.Prepared
	}
	if input.ReminderEnabled != nil {
		hearing.ReminderEnabled = *input.ReminderEnabled
	}
	if input.EnrolmentDone != nil {
		hearing.EnrolmentDone = *input.EnrolmentDone
	}

	if err := s.db.WithContext(ctx).Create(hearing).Error; err != nil {
		return nil, err
	}

	Metrics.HearingsScheduled.Inc()
	log.Printf("[HEARING] Scheduled hearing %s for case %s on %s (reminder %s)",
		hearing.ID, caseID, hearing.DateString(), hearing.EnrolmentReminderDate.Format(DateLayout))
	return hearing, nil
}

// UpdateHearing applies a partial update. A new date is re-validated and
// recomputes the reminder date and the status; an explicit status in the
// same call wins over the derived one. Without a date, status and reminder
// date only change when supplied.
func (s *HearingService) UpdateHearing(ctx context.Context, hearingID string, input HearingInput) (*models.Hearing, error) {
	hearing, err := s.GetHearing(ctx, hearingID)
	if err != nil {
		return nil, err
	}

	directive, err := input.statusDirective()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if input.Date != nil {
		date, err := scheduleDate(*input.Date)
		if err != nil {
			return nil, err
		}
		updates["date"] = date
		updates["enrolment_reminder_date"] = EnrolmentReminderDate(date)
		updates["status"] = directive.Resolve(hearing.Status, date, s.clock.Today(), hearing.Outcome != nil)
		if !SameDay(date, hearing.Date) {
			Metrics.HearingsRescheduled.Inc()
		}
	} else if directive.IsExplicit() {
		updates["status"] = directive.Resolve(hearing.Status, hearing.Date, s.clock.Today(), hearing.Outcome != nil)
	}

	if input.Time != nil {
		if strings.TrimSpace(*input.Time) == "" {
			updates["time"] = nil
		} else {
			clockTime, err := ParseClockTime(strings.TrimSpace(*input.Time))
			if err != nil {
				return nil, err
			}
			updates["time"] = clockTime
		}
	}
	if input.Type != nil {
		hearingType, err := parseHearingType(*input.Type)
		if err != nil {
			return nil, err
		}
		updates["type"] = hearingType
	}
	if input.Jurisdiction != nil {
		updates["jurisdiction"] = trimmedOrNil(input.Jurisdiction)
	}
	if input.Chamber != nil {
		updates["chamber"] = trimmedOrNil(input.Chamber)
	}
	if input.City != nil {
		updates["city"] = trimmedOrNil(input.City)
	}
	if input.PreparationNotes != nil {
		updates["preparation_notes"] = sanitizeText(input.PreparationNotes)
	}
	if input.Prepared != nil {
		updates["prepared"] = *input.Prepared
	}
	if input.ReminderEnabled != nil {
		updates["reminder_enabled"] = *input.ReminderEnabled
	}
	if input.EnrolmentDone != nil {
		updates["enrolment_done"] = *input.EnrolmentDone
	}

	if len(updates) == 0 {
		return hearing, nil
	}

	if err := s.db.WithContext(ctx).Model(&models.Hearing{}).
		Where("id = ?", hearingID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	if status, ok := updates["status"]; ok && status != hearing.Status {
		log.Printf("[HEARING] Hearing %s status %s -> %s", hearingID, hearing.Status, status)
	}

	return s.GetHearing(ctx, hearingID)
}

// GetHearing fetches a hearing with its outcome
func (s *HearingService) GetHearing(ctx context.Context, hearingID string) (*models.Hearing, error) {
	var hearing models.Hearing
	err := s.db.WithContext(ctx).Preload("Outcome").First(&hearing, "id = ?", hearingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHearingNotFound
		}
		return nil, err
	}
	return &hearing, nil
}

// ListCaseHearings returns the hearings of a case, earliest first
func (s *HearingService) ListCaseHearings(ctx context.Context, caseID string) ([]models.Hearing, error) {
	exists, err := CaseExists(ctx, s.db, caseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCaseNotFound
	}

	var hearings []models.Hearing
	err = s.db.WithContext(ctx).Preload("Outcome").
		Where("case_id = ?", caseID).
		Order("date ASC").
		Find(&hearings).Error
	return hearings, err
}

// DeleteHearing removes a hearing together with its outcome
func (s *HearingService) DeleteHearing(ctx context.Context, hearingID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hearing models.Hearing
		if err := tx.First(&hearing, "id = ?", hearingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHearingNotFound
			}
			return err
		}
		if err := tx.Where("hearing_id = ?", hearingID).Delete(&models.HearingOutcome{}).Error; err != nil {
			return err
		}
		return tx.Delete(&hearing).Error
	})
}
