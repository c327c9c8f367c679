package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"partner-portal-api/models"
	"partner-portal-api/services"
	"partner-portal-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateApprovalRequest uploads a document and fans it out to a set of partner
// recipients, each starting at pending (admin only). Multipart form fields:
// file, title, description, partner_ids (comma separated).
func CreateApprovalRequest(c *gin.Context) {
	title := utils.SanitizeInput(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	recipientIDs, err := parsePartnerIDs(c.PostForm("partner_ids"))
	if err != nil || len(recipientIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "partner_ids must be a comma separated list of partner IDs"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	var partners []models.Partner
	if err := getDB().Where("partner_id IN ? AND delete_at IS NULL", recipientIDs).Find(&partners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify recipients"})
		return
	}
	if len(partners) != len(recipientIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "One or more recipient partners do not exist"})
		return
	}

	storedName := uuid.New().String() + filepath.Ext(file.Filename)
	fullPath := filepath.Join(uploadPath(), "approvals", storedName)
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
	mime := file.Header.Get("Content-Type")

	request := models.ApprovalRequest{
		Title:       title,
		Description: strPtr(utils.SanitizeInput(c.PostForm("description"))),
		FileName:    file.Filename,
		FilePath:    fullPath,
		FileSize:    &size,
		MimeType:    strPtr(mime),
		Status:      models.ApprovalStatusPending,
		UploadedBy:  userID,
		CreateAt:    now,
		UpdateAt:    now,
	}

	tx := getDB().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&request).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create approval request"})
		return
	}

	for _, partnerID := range recipientIDs {
		response := models.PartnerResponse{
			ApprovalID: request.ApprovalID,
			PartnerID:  partnerID,
			Response:   models.ResponsePending,
		}
		if err := tx.Create(&response).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipient entries"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize approval request"})
		return
	}

	services.LogActivity(userID, "upload", "approval_request", request.ApprovalID, title, c.ClientIP())
	for _, partnerID := range recipientIDs {
		services.NotifyPartnerUsers(partnerID, "Approval requested",
			"\""+title+"\" is awaiting your organization's sign-off.",
			"info", "approval_request", request.ApprovalID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Approval request created successfully",
		"approval": request,
	})
}

// GetApprovalRequests lists approval requests: all for admins, the assigned
// ones for partner users.
func GetApprovalRequests(c *gin.Context) {
	roleID, _ := getCurrentRoleID(c)

	query := getDB().Preload("Uploader").Preload("Responses").Where("delete_at IS NULL")
	if !isAdminRole(roleID) {
		partnerID, ok := getCurrentPartnerID(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		query = query.Joins("JOIN partner_responses pr ON pr.approval_id = approval_requests.approval_id").
			Where("pr.partner_id = ?", partnerID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("approval_requests.status = ?", status)
	}

	var requests []models.ApprovalRequest
	if err := query.Order("approval_requests.create_at DESC").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch approval requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"approvals": requests,
		"total":     len(requests),
	})
}

// GetApprovalRequest returns one request with responses and the comment thread.
func GetApprovalRequest(c *gin.Context) {
	approvalID, err := strconv.Atoi(c.Param("id"))
	if err != nil || approvalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approval request ID"})
		return
	}

	var request models.ApprovalRequest
	if err := getDB().Preload("Uploader").
		Preload("Responses.Partner").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.Author").
		Where("approval_id = ? AND delete_at IS NULL", approvalID).
		First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Approval request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch approval request"})
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

	c.JSON(http.StatusOK, gin.H{"approval": request})
}

// RespondToApproval records the calling partner's approve/reject decision and
// re-derives the overall status. The request row is read under a row lock so
// concurrent responses reconcile against fresh snapshots instead of racing.
func RespondToApproval(c *gin.Context) {
	approvalID, err := strconv.Atoi(c.Param("id"))
	if err != nil || approvalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approval request ID"})
		return
	}

	var req models.ApprovalRespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := strings.TrimSpace(req.Comment)
	if req.Response == models.ResponseRejected && comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A comment is required when rejecting"})
		return
	}

	partnerID, ok := getCurrentPartnerID(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only partner accounts can respond to approval requests"})
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

	var request models.ApprovalRequest
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("approval_id = ? AND delete_at IS NULL", approvalID).
		First(&request).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Approval request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load approval request"})
		return
	}

	if err := tx.Where("approval_id = ?", approvalID).
		Order("response_id ASC").
		Find(&request.Responses).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load responses"})
		return
	}

	reconciled, err := services.RecordResponse(request, partnerID, req.Response, comment, now)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, services.ErrUnknownRecipient) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Your organization is not a recipient of this request"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updatedResponse := reconciled.ResponseFor(partnerID)
	if err := tx.Model(&models.PartnerResponse{}).
		Where("approval_id = ? AND partner_id = ?", approvalID, partnerID).
		Updates(map[string]interface{}{
			"response":     updatedResponse.Response,
			"comment":      updatedResponse.Comment,
			"responded_at": updatedResponse.RespondedAt,
		}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record response"})
		return
	}

	if err := tx.Model(&models.ApprovalRequest{}).
		Where("approval_id = ?", approvalID).
		Updates(map[string]interface{}{
			"status":    reconciled.Status,
			"update_at": now,
		}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update approval status"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize response"})
		return
	}

	// Fire-and-forget side effects: the committed reconciliation stands even
	// if notification or audit writes fail.
	detail := fmt.Sprintf("%s by partner %d, overall now %s", req.Response, partnerID, reconciled.Status)
	services.LogActivity(userID, "respond", "approval_request", approvalID, detail, c.ClientIP())
	services.Notify(request.UploadedBy, "Approval response received",
		fmt.Sprintf("A recipient %s \"%s\". Overall status: %s.", req.Response, request.Title, reconciled.Status),
		"info", "approval_request", approvalID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Response recorded successfully",
		"status":  reconciled.Status,
	})
}

// AddApprovalComment appends to the request's comment thread.
func AddApprovalComment(c *gin.Context) {
	approvalID, err := strconv.Atoi(c.Param("id"))
	if err != nil || approvalID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid approval request ID"})
		return
	}

	var req models.ApprovalCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	userID, _ := getCurrentUserID(c)
	comment := models.ApprovalComment{
		ApprovalID: approvalID,
		AuthorID:   userID,
		Text:       utils.SanitizeInput(req.Text),
		CreatedAt:  time.Now(),
	}

	if err := getDB().Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

func parsePartnerIDs(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	seen := make(map[int]bool)
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid partner id %q", part)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}
