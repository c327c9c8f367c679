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

// GetPartners lists partners visible to the caller.
func GetPartners(c *gin.Context) {
	partnerIDs, err := scopedPartnerIDs(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve partner scope"})
		return
	}

	query := getDB().Preload("AssignedAdmin").Where("delete_at IS NULL")
	if partnerIDs != nil {
		query = query.Where("partner_id IN ?", partnerIDs)
	}
	if tier := c.Query("tier"); tier != "" {
		query = query.Where("tier = ?", tier)
	}

	var partners []models.Partner
	if err := query.Order("name ASC").Find(&partners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch partners"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"partners": partners,
		"total":    len(partners),
	})
}

// GetPartner returns one partner with its booth and progress.
func GetPartner(c *gin.Context) {
	partnerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || partnerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partner ID"})
		return
	}

	if !callerMayAccessPartner(c, partnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var partner models.Partner
	if err := getDB().Preload("AssignedAdmin").
		Where("partner_id = ? AND delete_at IS NULL", partnerID).
		First(&partner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch partner"})
		return
	}

	var booth models.Booth
	boothLoaded := getDB().Where("partner_id = ? AND delete_at IS NULL", partnerID).First(&booth).Error == nil

	var progress models.PartnerProgress
	progressLoaded := getDB().Where("partner_id = ?", partnerID).First(&progress).Error == nil

	response := gin.H{"partner": partner}
	if boothLoaded {
		response["booth"] = booth
	}
	if progressLoaded {
		response["progress"] = progress
	}

	c.JSON(http.StatusOK, response)
}

// CreatePartner creates a partner organization (admin only).
func CreatePartner(c *gin.Context) {
	var req models.PartnerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := getCurrentUserID(c)
	now := time.Now()

	tier := req.Tier
	if tier == "" {
		tier = "community"
	}

	partner := models.Partner{
		Name:            req.Name,
		Tier:            tier,
		ContractStatus:  models.ContractStatusDraft,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Website:         req.Website,
		AssignedAdminID: req.AssignedAdminID,
		CreatedBy:       userID,
		CreateAt:        now,
		UpdateAt:        now,
	}

	if err := getDB().Create(&partner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create partner"})
		return
	}

	services.LogActivity(userID, "create", "partner", partner.PartnerID, "Partner "+partner.Name+" created", c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Partner created successfully",
		"partner": partner,
	})
}

// UpdatePartner updates partner fields (admin only).
func UpdatePartner(c *gin.Context) {
	partnerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || partnerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partner ID"})
		return
	}

	var req models.PartnerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var partner models.Partner
	if err := getDB().Where("partner_id = ? AND delete_at IS NULL", partnerID).First(&partner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	updates := map[string]interface{}{"update_at": time.Now()}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Tier != nil {
		updates["tier"] = *req.Tier
	}
	if req.ContractStatus != nil {
		updates["contract_status"] = *req.ContractStatus
	}
	if req.ContactEmail != nil {
		updates["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.AssignedAdminID != nil {
		updates["assigned_admin_id"] = *req.AssignedAdminID
	}

	if err := getDB().Model(&partner).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		return
	}

	userID, _ := getCurrentUserID(c)
	services.LogActivity(userID, "update", "partner", partnerID, "", c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Partner updated successfully"})
}

// DeletePartner soft-deletes a partner (admin only).
func DeletePartner(c *gin.Context) {
	partnerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || partnerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partner ID"})
		return
	}

	now := time.Now()
	result := getDB().Model(&models.Partner{}).
		Where("partner_id = ? AND delete_at IS NULL", partnerID).
		Update("delete_at", now)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete partner"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	userID, _ := getCurrentUserID(c)
	services.LogActivity(userID, "delete", "partner", partnerID, "", c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted successfully"})
}

// callerMayAccessPartner checks partner visibility for the current request.
func callerMayAccessPartner(c *gin.Context, partnerID int) bool {
	roleID, _ := getCurrentRoleID(c)
	if isAdminRole(roleID) {
		return true
	}
	own, ok := getCurrentPartnerID(c)
	return ok && own == partnerID
}
