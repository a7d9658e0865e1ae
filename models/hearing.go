package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hearing status constants
const (
	HearingStatusUpcoming       = "UPCOMING"
	HearingStatusPastUnreported = "PAST_UNREPORTED"
	HearingStatusReported       = "REPORTED"
)

// Hearing type constants
const (
	HearingTypeCaseManagement    = "CASE_MANAGEMENT"
	HearingTypePleadings         = "PLEADINGS"
	HearingTypeSummaryProceeding = "SUMMARY_PROCEEDING"
	HearingTypeEvocation         = "EVOCATION"
	HearingTypeConciliation      = "CONCILIATION"
	HearingTypeMediation         = "MEDIATION"
	HearingTypeOther             = "OTHER"
)

// Hearing represents a scheduled court appearance tied to a case
type Hearing struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Case relationship
	CaseID string `gorm:"type:uuid;not null;index:idx_hearing_case" json:"case_id"`
	Case   *Case  `gorm:"foreignKey:CaseID" json:"case,omitempty"`

	// Schedule. Date is stored at 12:00 UTC so no timezone shifts the calendar day.
	Date time.Time `gorm:"not null;index" json:"date"`
	Time *string   `gorm:"size:5" json:"time,omitempty"` // HH:MM, court local time

	Type         string  `gorm:"size:30;not null" json:"type"`
	Jurisdiction *string `gorm:"size:200" json:"jurisdiction,omitempty"`
	Chamber      *string `gorm:"size:200" json:"chamber,omitempty"`
	City         *string `gorm:"size:100" json:"city,omitempty"`

	// Lifecycle
	Status string `gorm:"size:20;not null;default:'UPCOMING';index:idx_hearing_reminder,priority:4" json:"status"`

	// Preparation
	PreparationNotes *string `gorm:"type:text" json:"preparation_notes,omitempty"`
	Prepared         bool    `gorm:"not null;default:false" json:"prepared"`

	// Enrolment reminder
	ReminderEnabled       bool      `gorm:"not null;index:idx_hearing_reminder,priority:1" json:"reminder_enabled"`
	EnrolmentDone         bool      `gorm:"not null;default:false;index:idx_hearing_reminder,priority:2" json:"enrolment_done"`
	EnrolmentReminderDate time.Time `gorm:"not null;index:idx_hearing_reminder,priority:3" json:"enrolment_reminder_date"`

	CreatedBy *string `gorm:"size:64" json:"created_by,omitempty"`

	Outcome *HearingOutcome `gorm:"foreignKey:HearingID" json:"outcome,omitempty"`
}

// BeforeCreate hook to generate UUID
func (h *Hearing) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	if h.Status == "" {
		h.Status = HearingStatusUpcoming
	}
	return nil
}

// TableName specifies the table name for Hearing model
func (Hearing) TableName() string {
	return "hearings"
}

// IsValidHearingStatus checks if the status is valid
func IsValidHearingStatus(status string) bool {
	switch status {
	case HearingStatusUpcoming, HearingStatusPastUnreported, HearingStatusReported:
		return true
	}
	return false
}

// IsValidHearingType checks if the hearing type is valid
func IsValidHearingType(hearingType string) bool {
	validTypes := []string{
		HearingTypeCaseManagement,
		HearingTypePleadings,
		HearingTypeSummaryProceeding,
		HearingTypeEvocation,
		HearingTypeConciliation,
		HearingTypeMediation,
		HearingTypeOther,
	}
	for _, t := range validTypes {
		if t == hearingType {
			return true
		}
	}
	return false
}

// IsUpcoming checks if the hearing is still ahead
func (h *Hearing) IsUpcoming() bool {
	return h.Status == HearingStatusUpcoming
}

// IsReported checks if an outcome has been recorded for the hearing
func (h *Hearing) IsReported() bool {
	return h.Status == HearingStatusReported
}

// DateString returns the hearing calendar day as YYYY-MM-DD
func (h *Hearing) DateString() string {
	return h.Date.UTC().Format("2006-01-02")
}
