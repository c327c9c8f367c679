package services

import (
	"log"
	"time"

	"partner-portal-api/config"
	"partner-portal-api/models"
)

// LogActivity appends one activity log entry. Best effort: a failed append is
// logged and ignored so it never reverts the action it records.
func LogActivity(userID int, action, entityType string, entityID int, detail, ipAddress string) {
	entry := models.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		CreatedAt:  time.Now(),
	}
	if entityID > 0 {
		entry.EntityID = &entityID
	}
	if detail != "" {
		entry.Detail = &detail
	}
	if ipAddress != "" {
		entry.IPAddress = &ipAddress
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		log.Printf("Warning: failed to append activity log (%s %s): %v", action, entityType, err)
	}
}
