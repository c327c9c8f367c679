package models

import "time"

// Submission statuses. "submitted" and "pending_review" both count as pending.
const (
	SubmissionStatusSubmitted        = "submitted"
	SubmissionStatusPendingReview    = "pending_review"
	SubmissionStatusApproved         = "approved"
	SubmissionStatusRejected         = "rejected"
	SubmissionStatusRevisionRequired = "revision_required"
)

// Submission kinds.
const (
	SubmissionKindFile = "file"
	SubmissionKindURL  = "url"
	SubmissionKindText = "text"
)

// Submission is a versioned artifact a partner submits against a deliverable.
// Version strictly increases per deliverable; the highest version is the one
// reflected in deliverable-level status.
type Submission struct {
	SubmissionID  int     `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	DeliverableID int     `gorm:"column:deliverable_id" json:"deliverable_id"`
	PartnerID     int     `gorm:"column:partner_id" json:"partner_id"`
	SubmittedBy   int     `gorm:"column:submitted_by" json:"submitted_by"`
	Version       int     `gorm:"column:version" json:"version"`
	Kind          string  `gorm:"column:kind;type:varchar(10)" json:"kind"`
	FileID        *int    `gorm:"column:file_id" json:"file_id,omitempty"`
	URL           *string `gorm:"column:url" json:"url,omitempty"`
	Text          *string `gorm:"column:text" json:"text,omitempty"`
	Status        string  `gorm:"column:status;type:varchar(20);default:'submitted'" json:"status"`

	ReviewComment *string    `gorm:"column:review_comment" json:"review_comment,omitempty"`
	ReviewedBy    *int       `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	SubmittedAt   time.Time  `gorm:"column:submitted_at" json:"submitted_at"`

	// Relations
	Deliverable Deliverable `gorm:"foreignKey:DeliverableID" json:"deliverable,omitempty"`
	Submitter   User        `gorm:"foreignKey:SubmittedBy" json:"submitter,omitempty"`
	File        *FileUpload `gorm:"foreignKey:FileID" json:"file,omitempty"`
	Reviewer    *User       `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}

// IsPendingReview reports whether the submission still waits for a decision.
func (s *Submission) IsPendingReview() bool {
	return s.Status == SubmissionStatusSubmitted || s.Status == SubmissionStatusPendingReview
}

type SubmissionCreateRequest struct {
	Kind   string  `json:"kind" binding:"required,oneof=file url text"`
	FileID *int    `json:"file_id"`
	URL    *string `json:"url" binding:"omitempty,url"`
	Text   *string `json:"text"`
}

type SubmissionReviewRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved rejected revision_required"`
	Comment  string `json:"comment"`
}
