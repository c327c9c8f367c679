package controllers

import (
	"net/http"
	"strconv"
	"time"

	"partner-portal-api/models"
	"partner-portal-api/services"

	"github.com/gin-gonic/gin"
)

// GetReminderRules lists configured reminder rules (admin only).
func GetReminderRules(c *gin.Context) {
	var rules []models.ReminderRule
	if err := getDB().Where("delete_at IS NULL").Order("days_before ASC").Find(&rules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reminder rules"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rules": rules,
		"total": len(rules),
	})
}

// CreateReminderRule adds a deadline reminder rule (admin only).
func CreateReminderRule(c *gin.Context) {
	var req models.ReminderRuleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := getCurrentUserID(c)
	now := time.Now()

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	rule := models.ReminderRule{
		Title:      req.Title,
		Message:    req.Message,
		DaysBefore: req.DaysBefore,
		Enabled:    enabled,
		CreatedBy:  userID,
		CreateAt:   now,
		UpdateAt:   now,
	}

	if err := getDB().Create(&rule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder rule"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Reminder rule created successfully",
		"rule":    rule,
	})
}

// UpdateReminderRule edits a reminder rule (admin only).
func UpdateReminderRule(c *gin.Context) {
	ruleID, err := strconv.Atoi(c.Param("id"))
	if err != nil || ruleID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rule ID"})
		return
	}

	var req models.ReminderRuleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rule models.ReminderRule
	if err := getDB().Where("rule_id = ? AND delete_at IS NULL", ruleID).First(&rule).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder rule not found"})
		return
	}

	updates := map[string]interface{}{"update_at": time.Now()}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Message != nil {
		updates["message"] = *req.Message
	}
	if req.DaysBefore != nil {
		updates["days_before"] = *req.DaysBefore
	}
	if req.Enabled != nil {
		updates["enabled"] = *req.Enabled
	}

	if err := getDB().Model(&rule).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reminder rule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder rule updated successfully"})
}

// DeleteReminderRule soft-deletes a reminder rule (admin only).
func DeleteReminderRule(c *gin.Context) {
	ruleID, err := strconv.Atoi(c.Param("id"))
	if err != nil || ruleID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rule ID"})
		return
	}

	now := time.Now()
	result := getDB().Model(&models.ReminderRule{}).
		Where("rule_id = ? AND delete_at IS NULL", ruleID).
		Update("delete_at", now)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder rule"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder rule not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder rule deleted successfully"})
}

// RunReminders triggers the reminder sweep immediately (admin only). Deploys
// without a scheduler hit this from cron.
func RunReminders(c *gin.Context) {
	sent, err := services.RunReminderSweep(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	userID, _ := getCurrentUserID(c)
	services.LogActivity(userID, "run", "reminder_sweep", 0, "sent="+strconv.Itoa(sent), c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"message":        "Reminder sweep completed",
		"reminders_sent": sent,
	})
}
