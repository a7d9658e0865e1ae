package services

import (
	"context"
	"court_docket_app_go/models"
	"errors"
	"log"

	"gorm.io/gorm"
)

// ListDueEnrolmentReminders returns the upcoming hearings whose enrolment
// reminder date has arrived and whose enrolment is still pending, earliest
// hearing first. Read-only.
func (s *HearingService) ListDueEnrolmentReminders(ctx context.Context) ([]models.Hearing, error) {
	var hearings []models.Hearing
	err := s.db.WithContext(ctx).Preload("Case").
		Where("reminder_enabled = ? AND enrolment_done = ?", true, false).
		// Today(), not Now(): a reminder is due from the start of its day in the
		// reminder timezone rather than from 12:00 UTC. Keep it that way.
		Where("enrolment_reminder_date <= ?", s.clock.Today()).
		Where("status = ?", models.HearingStatusUpcoming).
		Order("date ASC").
		Find(&hearings).Error
	if err != nil {
		return nil, err
	}

	Metrics.RemindersDue.Set(float64(len(hearings)))
	return hearings, nil
}

// MarkEnrolmentDone flags the enrolment of a hearing as done. Idempotent; status is untouched.
func (s *HearingService) MarkEnrolmentDone(ctx context.Context, hearingID string) (*models.Hearing, error) {
	var hearing models.Hearing
	if err := s.db.WithContext(ctx).First(&hearing, "id = ?", hearingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHearingNotFound
		}
		return nil, err
	}

	if !hearing.EnrolmentDone {
		if err := s.db.WithContext(ctx).Model(&models.Hearing{}).
			Where("id = ?", hearingID).
			Update("enrolment_done", true).Error; err != nil {
			return nil, err
		}
		log.Printf("[HEARING] Enrolment marked done for hearing %s", hearingID)
	}

	return s.GetHearing(ctx, hearingID)
}
