package services

import (
	"context"
	"court_docket_app_go/models"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// CaseExists reports whether a (non-deleted) case with the given ID exists
func CaseExists(ctx context.Context, db *gorm.DB, caseID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&models.Case{}).Where("id = ?", caseID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetCaseByID retrieves a case by ID
func GetCaseByID(ctx context.Context, db *gorm.DB, caseID string) (*models.Case, error) {
	var caseRecord models.Case
	if err := db.WithContext(ctx).First(&caseRecord, "id = ?", caseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, err
	}
	return &caseRecord, nil
}

// CreateCase registers a case so hearings can be attached to it
func CreateCase(ctx context.Context, db *gorm.DB, caseRecord *models.Case) error {
	caseRecord.CaseNumber = strings.TrimSpace(caseRecord.CaseNumber)
	if caseRecord.CaseNumber == "" {
		return validationError("case number is required")
	}
	if caseRecord.Status != "" && !models.IsValidCaseStatus(caseRecord.Status) {
		return validationError("invalid case status %q", caseRecord.Status)
	}

	if err := db.WithContext(ctx).Create(caseRecord).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCaseNumberTaken
		}
		return err
	}
	return nil
}
