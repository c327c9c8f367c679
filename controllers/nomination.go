package controllers

import (
	"net/http"
	"strconv"
	"time"

	"partner-portal-api/models"
	"partner-portal-api/services"
	"partner-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// CreateNomination records a partner nomination.
func CreateNomination(c *gin.Context) {
	var req models.NominationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partnerID, ok := getCurrentPartnerID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only partner accounts can submit nominations"})
		return
	}

	userID, _ := getCurrentUserID(c)
	now := time.Now()

	nomination := models.Nomination{
		PartnerID:   partnerID,
		SubmittedBy: userID,
		Category:    req.Category,
		Title:       utils.SanitizeInput(req.Title),
		NomineeName: utils.SanitizeInput(req.NomineeName),
		Description: req.Description,
		Tags:        req.Tags,
		Status:      models.NominationStatusSubmitted,
		CreateAt:    now,
		UpdateAt:    now,
	}

	if err := getDB().Create(&nomination).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create nomination"})
		return
	}

	services.LogActivity(userID, "create", "nomination", nomination.NominationID, nomination.Title, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Nomination submitted successfully",
		"nomination": nomination,
	})
}

// GetNominations lists nominations visible to the caller.
func GetNominations(c *gin.Context) {
	partnerIDs, err := scopedPartnerIDs(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve partner scope"})
		return
	}

	query := getDB().Preload("Partner").Preload("Submitter").Where("delete_at IS NULL")
	if partnerIDs != nil {
		query = query.Where("partner_id IN ?", partnerIDs)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var nominations []models.Nomination
	if err := query.Order("create_at DESC").Find(&nominations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nominations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nominations": nominations,
		"total":       len(nominations),
	})
}

// UpdateNominationStatus moves a nomination through review (admin only).
func UpdateNominationStatus(c *gin.Context) {
	nominationID, err := strconv.Atoi(c.Param("id"))
	if err != nil || nominationID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nomination ID"})
		return
	}

	var req models.NominationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var nomination models.Nomination
	if err := getDB().Where("nomination_id = ? AND delete_at IS NULL", nominationID).First(&nomination).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nomination not found"})
		return
	}

	userID, _ := getCurrentUserID(c)
	now := time.Now()

	updates := map[string]interface{}{
		"status":      req.Status,
		"reviewed_by": userID,
		"reviewed_at": now,
		"update_at":   now,
	}
	if err := getDB().Model(&nomination).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update nomination"})
		return
	}

	services.LogActivity(userID, "review", "nomination", nominationID, "status="+req.Status, c.ClientIP())
	services.Notify(nomination.SubmittedBy, "Nomination updated",
		"Your nomination \""+nomination.Title+"\" is now "+req.Status+".",
		"info", "nomination", nominationID)

	c.JSON(http.StatusOK, gin.H{"message": "Nomination status updated"})
}
