package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"partner-portal-api/models"
	"partner-portal-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDeliverables lists deliverables visible to the caller, optionally
// filtered by partner.
func GetDeliverables(c *gin.Context) {
	partnerIDs, err := scopedPartnerIDs(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve partner scope"})
		return
	}

	query := getDB().Preload("Partner").Where("delete_at IS NULL")
	if partnerIDs != nil {
		query = query.Where("partner_id IN ?", partnerIDs)
	}
	if pid := c.Query("partner_id"); pid != "" {
		id, convErr := strconv.Atoi(pid)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partner_id filter"})
			return
		}
		query = query.Where("partner_id = ?", id)
	}

	var deliverables []models.Deliverable
	if err := query.Order("due_date ASC NULLS LAST").Find(&deliverables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliverables"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deliverables": deliverables,
		"total":        len(deliverables),
	})
}

// GetDeliverable returns one deliverable with its submission history, newest
// version first.
func GetDeliverable(c *gin.Context) {
	deliverableID, err := strconv.Atoi(c.Param("id"))
	if err != nil || deliverableID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deliverable ID"})
		return
	}

	var deliverable models.Deliverable
	if err := getDB().Preload("Partner").
		Where("deliverable_id = ? AND delete_at IS NULL", deliverableID).
		First(&deliverable).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deliverable not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliverable"})
		return
	}

	if !callerMayAccessPartner(c, deliverable.PartnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var submissions []models.Submission
	if err := getDB().Preload("Submitter").Preload("File").
		Where("deliverable_id = ?", deliverableID).
		Order("version DESC").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deliverable": deliverable,
		"submissions": submissions,
	})
}

// CreateDeliverable defines a required artifact for a partner (admin only).
func CreateDeliverable(c *gin.Context) {
	var req models.DeliverableCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var partner models.Partner
	if err := getDB().Where("partner_id = ? AND delete_at IS NULL", req.PartnerID).First(&partner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	userID, _ := getCurrentUserID(c)
	now := time.Now()

	deliverable := models.Deliverable{
		PartnerID:   req.PartnerID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Required:    req.Required,
		CreatedBy:   userID,
		CreateAt:    now,
		UpdateAt:    now,
	}

	if err := getDB().Create(&deliverable).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deliverable"})
		return
	}

	services.LogActivity(userID, "create", "deliverable", deliverable.DeliverableID, deliverable.Title, c.ClientIP())
	services.NotifyPartnerUsers(req.PartnerID, "New deliverable assigned",
		"A new deliverable \""+deliverable.Title+"\" has been assigned to your organization.",
		"info", "deliverable", deliverable.DeliverableID)

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Deliverable created successfully",
		"deliverable": deliverable,
	})
}

// UpdateDeliverable updates a deliverable definition (admin only).
func UpdateDeliverable(c *gin.Context) {
	deliverableID, err := strconv.Atoi(c.Param("id"))
	if err != nil || deliverableID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deliverable ID"})
		return
	}

	var req models.DeliverableUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var deliverable models.Deliverable
	if err := getDB().Where("deliverable_id = ? AND delete_at IS NULL", deliverableID).First(&deliverable).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deliverable not found"})
		return
	}

	updates := map[string]interface{}{"update_at": time.Now()}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.Required != nil {
		updates["required"] = *req.Required
	}

	if err := getDB().Model(&deliverable).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update deliverable"})
		return
	}

	userID, _ := getCurrentUserID(c)
	services.LogActivity(userID, "update", "deliverable", deliverableID, "", c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Deliverable updated successfully"})
}

// DeleteDeliverable soft-deletes a deliverable (admin only).
func DeleteDeliverable(c *gin.Context) {
	deliverableID, err := strconv.Atoi(c.Param("id"))
	if err != nil || deliverableID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deliverable ID"})
		return
	}

	now := time.Now()
	result := getDB().Model(&models.Deliverable{}).
		Where("deliverable_id = ? AND delete_at IS NULL", deliverableID).
		Update("delete_at", now)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete deliverable"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deliverable not found"})
		return
	}

	userID, _ := getCurrentUserID(c)
	services.LogActivity(userID, "delete", "deliverable", deliverableID, "", c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Deliverable deleted successfully"})
}
