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

const maxUploadBytes = 20 * 1024 * 1024 // 20 MB

func uploadPath() string {
	path := os.Getenv("UPLOAD_PATH")
	if path == "" {
		path = "./uploads"
	}
	return path
}

// UploadFile stores an uploaded file under a generated name and records its
// metadata. The returned file_id is referenced by file submissions.
func UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File exceeds the 20 MB limit"})
		return
	}

	mime := file.Header.Get("Content-Type")
	upload := models.FileUpload{
		OriginalName: file.Filename,
		FileSize:     file.Size,
		MimeType:     mime,
	}
	if !upload.IsValidDocumentType() && !upload.IsValidImageType() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
		return
	}

	storedName := uuid.New().String() + filepath.Ext(file.Filename)
	fullPath := filepath.Join(uploadPath(), storedName)
	if err := os.MkdirAll(uploadPath(), os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	userID, _ := getCurrentUserID(c)
	upload.StoredPath = fullPath
	upload.UploadedBy = userID
	upload.UploadedAt = time.Now()

	if err := getDB().Create(&upload).Error; err != nil {
		// Remove the orphaned file so storage does not drift from the table.
		os.Remove(fullPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record upload"})
		return
	}

	services.LogActivity(userID, "upload", "file", upload.FileID, file.Filename, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{
		"message": "File uploaded successfully",
		"file":    upload,
	})
}

// DownloadFile streams a stored file back to its owner or staff.
func DownloadFile(c *gin.Context) {
	fileID, err := strconv.Atoi(c.Param("id"))
	if err != nil || fileID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	var upload models.FileUpload
	if err := getDB().Where("file_id = ? AND delete_at IS NULL", fileID).First(&upload).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch file"})
		return
	}

	roleID, _ := getCurrentRoleID(c)
	userID, _ := getCurrentUserID(c)
	if !upload.IsPublic && !isAdminRole(roleID) && upload.UploadedBy != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	if _, err := os.Stat(upload.StoredPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File is missing from storage"})
		return
	}

	c.FileAttachment(upload.StoredPath, upload.OriginalName)
}

// DownloadApprovalFile streams the document of an approval request to its
// recipients and staff.
func DownloadApprovalFile(c *gin.Context) {
	approvalID, err := strconv.Atoi(c.Param("id"))
	if err != nil || approvalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approval request ID"})
		return
	}

	var request models.ApprovalRequest
	if err := getDB().Preload("Responses").
		Where("approval_id = ? AND delete_at IS NULL", approvalID).
		First(&request).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Approval request not found"})
		return
	}

	roleID, _ := getCurrentRoleID(c)
	if !isAdminRole(roleID) {
		partnerID, ok := getCurrentPartnerID(c)
		if !ok || request.ResponseFor(partnerID) == nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
	}

	if _, err := os.Stat(request.FilePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File is missing from storage"})
		return
	}

	c.FileAttachment(request.FilePath, request.FileName)
}
