package services

import (
	"court_docket_app_go/models"
	"encoding/json"
	"log"
	"sync"

	"gorm.io/gorm"
)

// AuditContext contains contextual information for audit logging
type AuditContext struct {
	ActorID   string
	IPAddress string
	UserAgent string
}

// auditWrites lets tests wait for asynchronous audit entries
var auditWrites sync.WaitGroup

// LogAuditEvent creates a new audit log entry asynchronously
func LogAuditEvent(
	db *gorm.DB,
	ctx AuditContext,
	action models.AuditAction,
	resourceType string,
	resourceID string,
	resourceName string,
	description string,
	oldValues interface{},
	newValues interface{},
) {
	auditLog := models.AuditLog{
		ActorID:      ptrIfNotEmpty(ctx.ActorID),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		ResourceName: resourceName,
		Action:       action,
		Description:  description,
		OldValues:    marshalAuditValues(oldValues),
		NewValues:    marshalAuditValues(newValues),
		IPAddress:    ctx.IPAddress,
		UserAgent:    ctx.UserAgent,
	}

	// Run in goroutine to avoid blocking the request
	auditWrites.Add(1)
	go func() {
		defer auditWrites.Done()
		if err := db.Create(&auditLog).Error; err != nil {
			log.Printf("[AUDIT] Failed to create audit log: %v", err)
		}
	}()
}

// WaitForAuditWrites blocks until pending audit entries are written
func WaitForAuditWrites() {
	auditWrites.Wait()
}

func marshalAuditValues(values interface{}) string {
	if values == nil {
		return ""
	}
	bytes, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(bytes)
}

// ptrIfNotEmpty returns a pointer to the string if not empty, nil otherwise
func ptrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetResourceAuditHistory retrieves the audit history of a resource, newest
// first. A hearing and its outcome share the hearing id, so several resource
// types may be asked for at once.
func GetResourceAuditHistory(db *gorm.DB, resourceID string, resourceTypes ...string) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := db.Where("resource_id = ? AND resource_type IN ?", resourceID, resourceTypes).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
