package models

import "time"

// Deliverable is an admin-defined artifact a partner must submit.
type Deliverable struct {
	DeliverableID int        `gorm:"primaryKey;column:deliverable_id" json:"deliverable_id"`
	PartnerID     int        `gorm:"column:partner_id" json:"partner_id"`
	Title         string     `gorm:"column:title" json:"title"`
	Description   *string    `gorm:"column:description" json:"description,omitempty"`
	DueDate       *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	Required      bool       `gorm:"column:required" json:"required"`

	CreatedBy int        `gorm:"column:created_by" json:"created_by"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Partner Partner `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	Creator User    `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Deliverable) TableName() string {
	return "deliverables"
}

type DeliverableCreateRequest struct {
	PartnerID   int        `json:"partner_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Required    bool       `json:"required"`
}

type DeliverableUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Required    *bool      `json:"required"`
}
