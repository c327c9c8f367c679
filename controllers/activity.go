package controllers

import (
	"net/http"
	"strconv"

	"partner-portal-api/models"

	"github.com/gin-gonic/gin"
)

// GetRecentActivity lists recent activity log entries (admin only). The log is
// append-only; this endpoint never mutates it.
func GetRecentActivity(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	query := getDB().Preload("User")
	if entityType := c.Query("entity_type"); entityType != "" {
		query = query.Where("entity_type = ?", entityType)
	}
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}

	var entries []models.ActivityLog
	if err := query.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity": entries,
		"total":    len(entries),
	})
}
