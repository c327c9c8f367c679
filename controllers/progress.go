package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"partner-portal-api/models"
	"partner-portal-api/services"
	"partner-portal-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetPartnerProgress returns the completeness percentage for one partner.
func GetPartnerProgress(c *gin.Context) {
	partnerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || partnerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partner ID"})
		return
	}

	if !callerMayAccessPartner(c, partnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var progress models.PartnerProgress
	if err := getDB().Where("partner_id = ?", partnerID).First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No record yet: report zero instead of an error.
			c.JSON(http.StatusOK, gin.H{
				"partner_id":          partnerID,
				"progress_percentage": 0,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"partner_id":          progress.PartnerID,
		"progress_percentage": progress.ProgressPercentage,
		"update_at":           progress.UpdateAt,
	})
}

// UpsertPartnerProgress sets the completeness percentage for a partner
// (admin only). One row per partner.
func UpsertPartnerProgress(c *gin.Context) {
	partnerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || partnerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partner ID"})
		return
	}

	var req models.ProgressUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var partner models.Partner
	if err := getDB().Where("partner_id = ? AND delete_at IS NULL", partnerID).First(&partner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	userID, _ := getCurrentUserID(c)
	progress := models.PartnerProgress{
		PartnerID:          partnerID,
		ProgressPercentage: utils.ClampPercentage(*req.ProgressPercentage),
		UpdatedBy:          userID,
		UpdateAt:           time.Now(),
	}

	if err := getDB().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "partner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress_percentage", "updated_by", "update_at"}),
	}).Create(&progress).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save progress"})
		return
	}

	services.LogActivity(userID, "update", "progress", partnerID,
		"progress="+strconv.Itoa(progress.ProgressPercentage), c.ClientIP())

	c.JSON(http.StatusOK, gin.H{
		"message":  "Progress saved successfully",
		"progress": progress,
	})
}
