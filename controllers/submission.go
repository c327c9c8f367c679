package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"partner-portal-api/models"
	"partner-portal-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateSubmission records a new submission version against a deliverable.
// Versions strictly increase per deliverable; the row lock on the version
// lookup keeps concurrent submitters from claiming the same number.
func CreateSubmission(c *gin.Context) {
	deliverableID, err := strconv.Atoi(c.Param("id"))
	if err != nil || deliverableID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deliverable ID"})
		return
	}

	var req models.SubmissionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Kind {
	case models.SubmissionKindFile:
		if req.FileID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file_id is required for file submissions"})
			return
		}
	case models.SubmissionKindURL:
		if req.URL == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url is required for url submissions"})
			return
		}
	case models.SubmissionKindText:
		if req.Text == nil || strings.TrimSpace(*req.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text is required for text submissions"})
			return
		}
	}

	var deliverable models.Deliverable
	if err := getDB().Where("deliverable_id = ? AND delete_at IS NULL", deliverableID).First(&deliverable).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deliverable not found"})
		return
	}

	if !callerMayAccessPartner(c, deliverable.PartnerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
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

	var lastVersion struct {
		Version int
	}
	if err := tx.Model(&models.Submission{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("COALESCE(MAX(version), 0) AS version").
		Where("deliverable_id = ?", deliverableID).
		Scan(&lastVersion).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to determine submission version"})
		return
	}

	submission := models.Submission{
		DeliverableID: deliverableID,
		PartnerID:     deliverable.PartnerID,
		SubmittedBy:   userID,
		Version:       lastVersion.Version + 1,
		Kind:          req.Kind,
		FileID:        req.FileID,
		URL:           req.URL,
		Text:          req.Text,
		Status:        models.SubmissionStatusSubmitted,
		SubmittedAt:   now,
	}

	if err := tx.Create(&submission).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize submission"})
		return
	}

	detail := fmt.Sprintf("Version %d submitted for \"%s\"", submission.Version, deliverable.Title)
	services.LogActivity(userID, "submit", "submission", submission.SubmissionID, detail, c.ClientIP())

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Submission recorded successfully",
		"submission": submission,
	})
}

// GetSubmissions lists submissions visible to the caller, optionally filtered
// by status or deliverable.
func GetSubmissions(c *gin.Context) {
	partnerIDs, err := scopedPartnerIDs(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve partner scope"})
		return
	}

	query := getDB().Preload("Deliverable").Preload("Submitter").Preload("File")
	if partnerIDs != nil {
		query = query.Where("partner_id IN ?", partnerIDs)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if did := c.Query("deliverable_id"); did != "" {
		id, convErr := strconv.Atoi(did)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deliverable_id filter"})
			return
		}
		query = query.Where("deliverable_id = ?", id)
	}

	var submissions []models.Submission
	if err := query.Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"submissions": submissions,
		"total":       len(submissions),
	})
}

// ReviewSubmission handles an admin decision on a submission. A rejection or
// revision request requires a comment for the partner.
func ReviewSubmission(c *gin.Context) {
	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	var req models.SubmissionReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := strings.TrimSpace(req.Comment)
	if req.Decision != models.SubmissionStatusApproved && comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A comment is required when rejecting or requesting revision"})
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

	var submission models.Submission
	if err := tx.Preload("Deliverable").
		Where("submission_id = ?", submissionID).
		First(&submission).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return
	}

	if !submission.IsPendingReview() {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{"error": "Submission has already been reviewed"})
		return
	}

	updates := map[string]interface{}{
		"status":      req.Decision,
		"reviewed_by": userID,
		"reviewed_at": now,
	}
	if comment != "" {
		updates["review_comment"] = comment
	}

	if err := tx.Model(&models.Submission{}).
		Where("submission_id = ?", submissionID).
		Updates(updates).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize review"})
		return
	}

	detail := fmt.Sprintf("Submission v%d of \"%s\" %s", submission.Version, submission.Deliverable.Title, req.Decision)
	services.LogActivity(userID, "review", "submission", submissionID, detail, c.ClientIP())

	message := fmt.Sprintf("Your submission for \"%s\" was %s.", submission.Deliverable.Title,
		strings.ReplaceAll(req.Decision, "_", " "))
	if comment != "" {
		message += " Reviewer comment: " + comment
	}
	notifType := "success"
	if req.Decision != models.SubmissionStatusApproved {
		notifType = "warning"
	}
	services.Notify(submission.SubmittedBy, "Submission reviewed", message, notifType, "submission", submissionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Review recorded successfully",
		"status":  req.Decision,
	})
}
