package models

import "time"

// PartnerProgress holds one profile/registration completeness percentage per partner.
type PartnerProgress struct {
	ProgressID         int       `gorm:"primaryKey;column:progress_id" json:"progress_id"`
	PartnerID          int       `gorm:"column:partner_id;unique" json:"partner_id"`
	ProgressPercentage int       `gorm:"column:progress_percentage" json:"progress_percentage"`
	UpdatedBy          int       `gorm:"column:updated_by" json:"updated_by"`
	UpdateAt           time.Time `gorm:"column:update_at" json:"update_at"`

	Partner Partner `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
}

func (PartnerProgress) TableName() string {
	return "partner_progress"
}

type ProgressUpsertRequest struct {
	ProgressPercentage *int `json:"progress_percentage" binding:"required,min=0,max=100"`
}
