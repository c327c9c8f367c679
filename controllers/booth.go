package controllers

import (
	"net/http"
	"strconv"
	"time"

	"partner-portal-api/models"
	"partner-portal-api/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// GetBooths lists booths visible to the caller.
func GetBooths(c *gin.Context) {
	partnerIDs, err := scopedPartnerIDs(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve partner scope"})
		return
	}

	query := getDB().Preload("Partner").Where("delete_at IS NULL")
	if partnerIDs != nil {
		query = query.Where("partner_id IN ?", partnerIDs)
	}
	if zone := c.Query("zone"); zone != "" {
		query = query.Where("zone = ?", zone)
	}

	var booths []models.Booth
	if err := query.Order("booth_number ASC").Find(&booths).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booths"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booths": booths,
		"total":  len(booths),
	})
}

// CreateBooth assigns a booth to a partner (admin only).
func CreateBooth(c *gin.Context) {
	var req models.BoothCreateRequest
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

	booth := models.Booth{
		PartnerID:   req.PartnerID,
		BoothNumber: req.BoothNumber,
		Zone:        req.Zone,
		SizeSqm:     req.SizeSqm,
		Amenities:   req.Amenities,
		SetupStatus: models.BoothSetupNotStarted,
		Notes:       req.Notes,
		CreatedBy:   userID,
		CreateAt:    now,
		UpdateAt:    now,
	}

	if err := getDB().Create(&booth).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booth"})
		return
	}

	services.LogActivity(userID, "create", "booth", booth.BoothID, "Booth "+booth.BoothNumber, c.ClientIP())
	services.NotifyPartnerUsers(req.PartnerID, "Booth assigned",
		"Booth "+booth.BoothNumber+" in zone "+booth.Zone+" has been assigned to your organization.",
		"info", "booth", booth.BoothID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booth created successfully",
		"booth":   booth,
	})
}

// UpdateBooth updates booth details or setup state (admin only).
func UpdateBooth(c *gin.Context) {
	boothID, err := strconv.Atoi(c.Param("id"))
	if err != nil || boothID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booth ID"})
		return
	}

	var req models.BoothUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var booth models.Booth
	if err := getDB().Where("booth_id = ? AND delete_at IS NULL", boothID).First(&booth).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booth not found"})
		return
	}

	updates := map[string]interface{}{"update_at": time.Now()}
	if req.BoothNumber != nil {
		updates["booth_number"] = *req.BoothNumber
	}
	if req.Zone != nil {
		updates["zone"] = *req.Zone
	}
	if req.SizeSqm != nil {
		updates["size_sqm"] = *req.SizeSqm
	}
	if req.Amenities != nil {
		updates["amenities"] = pq.StringArray(*req.Amenities)
	}
	if req.SetupStatus != nil {
		updates["setup_status"] = *req.SetupStatus
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if err := getDB().Model(&booth).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booth"})
		return
	}

	userID, _ := getCurrentUserID(c)
	services.LogActivity(userID, "update", "booth", boothID, "", c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Booth updated successfully"})
}

// DeleteBooth soft-deletes a booth assignment (admin only).
func DeleteBooth(c *gin.Context) {
	boothID, err := strconv.Atoi(c.Param("id"))
	if err != nil || boothID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booth ID"})
		return
	}

	now := time.Now()
	result := getDB().Model(&models.Booth{}).
		Where("booth_id = ? AND delete_at IS NULL", boothID).
		Update("delete_at", now)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booth"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booth not found"})
		return
	}

	userID, _ := getCurrentUserID(c)
	services.LogActivity(userID, "delete", "booth", boothID, "", c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "Booth deleted successfully"})
}
