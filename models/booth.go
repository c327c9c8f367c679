package models

import (
	"time"

	"github.com/lib/pq"
)

// Booth setup states.
const (
	BoothSetupNotStarted = "not_started"
	BoothSetupInProgress = "in_progress"
	BoothSetupReady      = "ready"
)

// Booth represents an exhibitor booth assigned to a partner.
type Booth struct {
	BoothID     int            `gorm:"primaryKey;column:booth_id" json:"booth_id"`
	PartnerID   int            `gorm:"column:partner_id" json:"partner_id"`
	BoothNumber string         `gorm:"column:booth_number;unique" json:"booth_number"`
	Zone        string         `gorm:"column:zone" json:"zone"`
	SizeSqm     *float64       `gorm:"column:size_sqm" json:"size_sqm,omitempty"`
	Amenities   pq.StringArray `gorm:"column:amenities;type:text[]" json:"amenities"`
	SetupStatus string         `gorm:"column:setup_status;type:varchar(20);default:'not_started'" json:"setup_status"`
	Notes       *string        `gorm:"column:notes" json:"notes,omitempty"`

	CreatedBy int        `gorm:"column:created_by" json:"created_by"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Partner Partner `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
}

func (Booth) TableName() string {
	return "booths"
}

type BoothCreateRequest struct {
	PartnerID   int      `json:"partner_id" binding:"required"`
	BoothNumber string   `json:"booth_number" binding:"required"`
	Zone        string   `json:"zone" binding:"required"`
	SizeSqm     *float64 `json:"size_sqm"`
	Amenities   []string `json:"amenities"`
	Notes       *string  `json:"notes"`
}

type BoothUpdateRequest struct {
	BoothNumber *string   `json:"booth_number"`
	Zone        *string   `json:"zone"`
	SizeSqm     *float64  `json:"size_sqm"`
	Amenities   *[]string `json:"amenities"`
	SetupStatus *string   `json:"setup_status" binding:"omitempty,oneof=not_started in_progress ready"`
	Notes       *string   `json:"notes"`
}
