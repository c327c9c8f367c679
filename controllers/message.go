package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"partner-portal-api/models"
	"partner-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// GetMessages returns the caller's support thread. Partner users read their
// own partner's thread; staff pass an explicit partner_id.
func GetMessages(c *gin.Context) {
	partnerID, err := resolveThreadPartner(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if partnerID == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var messages []models.Message
	if err := getDB().Preload("Sender").
		Where("partner_id = ?", partnerID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	// Mark the other side's messages as read.
	roleID, _ := getCurrentRoleID(c)
	now := time.Now()
	getDB().Model(&models.Message{}).
		Where("partner_id = ? AND from_staff = ? AND read_at IS NULL", partnerID, !isAdminRole(roleID)).
		Update("read_at", now)

	c.JSON(http.StatusOK, gin.H{
		"partner_id": partnerID,
		"messages":   messages,
	})
}

// PostMessage appends a message to the thread.
func PostMessage(c *gin.Context) {
	partnerID, err := resolveThreadPartner(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if partnerID == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var req models.MessageCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := getCurrentUserID(c)
	roleID, _ := getCurrentRoleID(c)

	message := models.Message{
		PartnerID: partnerID,
		SenderID:  userID,
		Body:      utils.SanitizeInput(req.Body),
		FromStaff: isAdminRole(roleID),
		CreatedAt: time.Now(),
	}

	if err := getDB().Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent",
		"entry":   message,
	})
}

// resolveThreadPartner determines which partner thread the request targets.
// Returns 0 when the caller may not access any thread.
func resolveThreadPartner(c *gin.Context) (int, error) {
	roleID, _ := getCurrentRoleID(c)
	if isAdminRole(roleID) {
		raw := c.Query("partner_id")
		if raw == "" {
			raw = c.Param("id")
		}
		partnerID, err := strconv.Atoi(raw)
		if err != nil || partnerID <= 0 {
			return 0, errors.New("partner_id is required")
		}
		return partnerID, nil
	}

	if partnerID, ok := getCurrentPartnerID(c); ok {
		return partnerID, nil
	}
	return 0, nil
}
