package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Outcome type constants
const (
	OutcomeTypePostponement = "POSTPONEMENT"
	OutcomeTypeStrikeOff    = "STRIKE_OFF"
	OutcomeTypeDeliberation = "DELIBERATION"
)

// HearingOutcome is the single recorded disposition of a hearing.
// Rows are hard-deleted so the unique index on hearing_id stays reusable.
type HearingOutcome struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	HearingID string `gorm:"type:uuid;not null;uniqueIndex:idx_outcome_hearing" json:"hearing_id"`

	Type string `gorm:"size:20;not null" json:"type"`

	// Postponement only
	NewDate            *time.Time `json:"new_date,omitempty"`
	PostponementReason *string    `gorm:"type:text" json:"postponement_reason,omitempty"`

	StrikeOffReason  *string `gorm:"type:text" json:"strike_off_reason,omitempty"`
	DeliberationText *string `gorm:"type:text" json:"deliberation_text,omitempty"`

	CreatedBy *string `gorm:"size:64" json:"created_by,omitempty"`
}

// BeforeCreate hook to generate UUID
func (o *HearingOutcome) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for HearingOutcome model
func (HearingOutcome) TableName() string {
	return "hearing_outcomes"
}

// IsValidOutcomeType checks if the outcome type is valid
func IsValidOutcomeType(outcomeType string) bool {
	switch outcomeType {
	case OutcomeTypePostponement, OutcomeTypeStrikeOff, OutcomeTypeDeliberation:
		return true
	}
	return false
}

// IsPostponement checks if the hearing was postponed to a new date
func (o *HearingOutcome) IsPostponement() bool {
	return o.Type == OutcomeTypePostponement
}
