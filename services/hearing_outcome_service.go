package services

import (
	"context"
	"court_docket_app_go/models"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OutcomeInput carries outcome fields on record and update. Nil means "not supplied".
type OutcomeInput struct {
	Type               *string
	NewDate            *string // YYYY-MM-DD, postponements only
	PostponementReason *string
	StrikeOffReason    *string
	DeliberationText   *string
}

// applyOutcomeInput merges input into outcome and checks the type/new-date pairing
func applyOutcomeInput(outcome *models.HearingOutcome, input OutcomeInput) error {
	if input.Type != nil {
		outcomeType := strings.ToUpper(strings.TrimSpace(*input.Type))
		if !models.IsValidOutcomeType(outcomeType) {
			return validationError("invalid outcome type %q", *input.Type)
		}
		outcome.Type = outcomeType
	}
	if outcome.Type == "" {
		return validationError("outcome type is required")
	}

	if input.NewDate != nil {
		if outcome.Type != models.OutcomeTypePostponement {
			return validationError("new date is only allowed for a %s outcome", models.OutcomeTypePostponement)
		}
		newDate, err := ParseDate(*input.NewDate)
		if err != nil {
			return err
		}
		outcome.NewDate = &newDate
	}

	if outcome.Type == models.OutcomeTypePostponement {
		if outcome.NewDate == nil {
			return validationError("new date is required for a %s outcome", models.OutcomeTypePostponement)
		}
	} else {
		outcome.NewDate = nil
	}

	if input.PostponementReason != nil {
		outcome.PostponementReason = trimmedOrNil(input.PostponementReason)
	}
	if input.StrikeOffReason != nil {
		outcome.StrikeOffReason = trimmedOrNil(input.StrikeOffReason)
	}
	if input.DeliberationText != nil {
		outcome.DeliberationText = sanitizeText(input.DeliberationText)
	}
	return nil
}

// RecordOutcome stores the single outcome of a hearing and reports the hearing.
// The unique index on hearing_id settles concurrent attempts: the loser gets
// ErrOutcomeExists instead of a second row.
func (s *HearingService) RecordOutcome(ctx context.Context, hearingID string, input OutcomeInput, actorID string) (*models.HearingOutcome, error) {
	outcome := &models.HearingOutcome{
		HearingID: hearingID,
		CreatedBy: trimmedOrNil(&actorID),
	}
	if err := applyOutcomeInput(outcome, input); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// row lock on Postgres; local SQLite transactions already begin IMMEDIATE
		var hearing models.Hearing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&hearing, "id = ?", hearingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHearingNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.HearingOutcome{}).Where("hearing_id = ?", hearingID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrOutcomeExists
		}

		if err := tx.Create(outcome).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrOutcomeExists
			}
			return err
		}

		return tx.Model(&models.Hearing{}).
			Where("id = ?", hearingID).
			Update("status", StatusOnOutcomeRecorded()).Error
	})
	if err != nil {
		return nil, err
	}

	Metrics.OutcomesRecorded.WithLabelValues(outcome.Type).Inc()
	log.Printf("[OUTCOME] Recorded %s outcome for hearing %s", outcome.Type, hearingID)
	return outcome, nil
}

// GetOutcome fetches the outcome of a hearing
func (s *HearingService) GetOutcome(ctx context.Context, hearingID string) (*models.HearingOutcome, error) {
	return findOutcome(s.db.WithContext(ctx), hearingID)
}

func findOutcome(db *gorm.DB, hearingID string) (*models.HearingOutcome, error) {
	var outcome models.HearingOutcome
	if err := db.First(&outcome, "hearing_id = ?", hearingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOutcomeNotFound
		}
		return nil, err
	}
	return &outcome, nil
}

// UpdateOutcome edits an outcome in place. Hearing status is left alone.
func (s *HearingService) UpdateOutcome(ctx context.Context, hearingID string, input OutcomeInput) (*models.HearingOutcome, error) {
	outcome, err := s.GetOutcome(ctx, hearingID)
	if err != nil {
		return nil, err
	}
	if err := applyOutcomeInput(outcome, input); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Model(outcome).
		Select("type", "new_date", "postponement_reason", "strike_off_reason", "deliberation_text").
		Updates(outcome).Error
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

// RemoveOutcome deletes the outcome and re-derives the hearing status from its date
func (s *HearingService) RemoveOutcome(ctx context.Context, hearingID string) error {
	var restored string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		outcome, err := findOutcome(tx, hearingID)
		if err != nil {
			return err
		}
		if err := tx.Delete(outcome).Error; err != nil {
			return err
		}

		var hearing models.Hearing
		if err := tx.First(&hearing, "id = ?", hearingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// outcome of a deleted hearing; nothing left to re-derive
				return nil
			}
			return err
		}

		restored = StatusOnOutcomeRemoved(hearing.Date, s.clock.Today())
		return tx.Model(&models.Hearing{}).
			Where("id = ?", hearingID).
			Update("status", restored).Error
	})
	if err != nil {
		return err
	}

	Metrics.OutcomesRemoved.Inc()
	log.Printf("[OUTCOME] Removed outcome of hearing %s (status now %s)", hearingID, restored)
	return nil
}

// postponedTo returns the new date of a postponement, if any
func postponedTo(outcome *models.HearingOutcome) (time.Time, bool) {
	if outcome == nil || !outcome.IsPostponement() || outcome.NewDate == nil {
		return time.Time{}, false
	}
	return *outcome.NewDate, true
}
