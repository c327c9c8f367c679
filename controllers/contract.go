package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"partner-portal-api/models"
	"partner-portal-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadContract attaches a contract document to a partner and marks it sent
// (admin only). Multipart form fields: file, title optional.
func UploadContract(c *gin.Context) {
	partnerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || partnerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partner ID"})
		return
	}

	var partner models.Partner
	if err := getDB().Where("partner_id = ? AND delete_at IS NULL", partnerID).First(&partner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	storedName := uuid.New().String() + filepath.Ext(file.Filename)
	fullPath := filepath.Join(uploadPath(), "contracts", storedName)
	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	userID, _ := getCurrentUserID(c)
	now := time.Now()
	size := file.Size

	contract := models.Contract{
		PartnerID: partnerID,
		FileName:  file.Filename,
		FilePath:  fullPath,
		FileSize:  &size,
		MimeType:  strPtr(file.Header.Get("Content-Type")),
		Status:    models.ContractStatusSent,
		SentAt:    &now,
		CreatedBy: userID,
		CreateAt:  now,
		UpdateAt:  now,
	}

	tx := getDB().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&contract).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contract"})
		return
	}

	if err := tx.Model(&models.Partner{}).
		Where("partner_id = ?", partnerID).
		Updates(map[string]interface{}{
			"contract_status": models.ContractStatusSent,
			"update_at":       now,
		}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize contract"})
		return
	}

	services.LogActivity(userID, "upload", "contract", contract.ContractID, "Contract sent to "+partner.Name, c.ClientIP())
	services.NotifyPartnerUsers(partnerID, "Contract ready for signing",
		"A contract document is ready for your review and signature.",
		"info", "contract", contract.ContractID)

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Contract uploaded successfully",
		"contract": contract,
	})
}

// GetPartnerContract returns the latest contract for a partner.
func GetPartnerContract(c *gin.Context) {
	partnerID, err := strconv.Atoi(c.Param("id"))
	if err != nil || partnerID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partner ID"})
		return
	}

	if !callerMayAccessPartner(c, partnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var contract models.Contract
	if err := getDB().Preload("Signer").
		Where("partner_id = ? AND delete_at IS NULL", partnerID).
		Order("create_at DESC").
		First(&contract).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No contract on file"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contract"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contract": contract})
}

// SignContract records the partner's signature on a sent contract and mirrors
// the signed state onto the partner record.
func SignContract(c *gin.Context) {
	contractID, err := strconv.Atoi(c.Param("id"))
	if err != nil || contractID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID"})
		return
	}

	var contract models.Contract
	if err := getDB().Where("contract_id = ? AND delete_at IS NULL", contractID).First(&contract).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
		return
	}

	partnerID, ok := getCurrentPartnerID(c)
	if !ok || partnerID != contract.PartnerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	if contract.Status != models.ContractStatusSent {
		c.JSON(http.StatusConflict, gin.H{"error": "Contract is not awaiting signature"})
		return
	}

	userID, _ := getCurrentUserID(c)
	now := time.Now()

	tx := getDB().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&models.Contract{}).
		Where("contract_id = ?", contractID).
		Updates(map[string]interface{}{
			"status":    models.ContractStatusSigned,
			"signed_at": now,
			"signed_by": userID,
			"update_at": now,
		}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign contract"})
		return
	}

	if err := tx.Model(&models.Partner{}).
		Where("partner_id = ?", contract.PartnerID).
		Updates(map[string]interface{}{
			"contract_status": models.ContractStatusSigned,
			"update_at":       now,
		}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update partner"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize signature"})
		return
	}

	services.LogActivity(userID, "sign", "contract", contractID, "", c.ClientIP())
	services.Notify(contract.CreatedBy, "Contract signed",
		"The contract for partner "+strconv.Itoa(contract.PartnerID)+" has been signed.",
		"success", "contract", contractID)

	c.JSON(http.StatusOK, gin.H{"message": "Contract signed successfully"})
}
