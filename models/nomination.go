package models

import (
	"time"

	"github.com/lib/pq"
)

// Nomination statuses.
const (
	NominationStatusSubmitted   = "submitted"
	NominationStatusUnderReview = "under_review"
	NominationStatusApproved    = "approved"
	NominationStatusRejected    = "rejected"
	NominationStatusPending     = "pending"
)

// Nomination is a partner-submitted speaker/startup/workshop/award nomination.
type Nomination struct {
	NominationID int            `gorm:"primaryKey;column:nomination_id" json:"nomination_id"`
	PartnerID    int            `gorm:"column:partner_id" json:"partner_id"`
	SubmittedBy  int            `gorm:"column:submitted_by" json:"submitted_by"`
	Category     string         `gorm:"column:category;type:varchar(20)" json:"category"` // speaker|startup|workshop|award
	Title        string         `gorm:"column:title" json:"title"`
	NomineeName  string         `gorm:"column:nominee_name" json:"nominee_name"`
	Description  *string        `gorm:"column:description" json:"description,omitempty"`
	Tags         pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"`
	Status       string         `gorm:"column:status;type:varchar(20);default:'submitted'" json:"status"`

	ReviewedBy *int       `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	CreateAt   time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt   time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt   *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Partner   Partner `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	Submitter User    `gorm:"foreignKey:SubmittedBy" json:"submitter,omitempty"`
}

func (Nomination) TableName() string {
	return "nominations"
}

type NominationCreateRequest struct {
	Category    string   `json:"category" binding:"required,oneof=speaker startup workshop award"`
	Title       string   `json:"title" binding:"required"`
	NomineeName string   `json:"nominee_name" binding:"required"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

type NominationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=submitted under_review approved rejected pending"`
}
