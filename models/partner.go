package models

import "time"

// Partner represents the partners table
type Partner struct {
	PartnerID       int     `gorm:"primaryKey;column:partner_id" json:"partner_id"`
	Name            string  `gorm:"column:name" json:"name"`
	Tier            string  `gorm:"column:tier;type:varchar(20);default:'community'" json:"tier"` // platinum|gold|silver|community
	ContractStatus  string  `gorm:"column:contract_status;type:varchar(20);default:'draft'" json:"contract_status"`
	ContactEmail    *string `gorm:"column:contact_email" json:"contact_email,omitempty"`
	ContactPhone    *string `gorm:"column:contact_phone" json:"contact_phone,omitempty"`
	Website         *string `gorm:"column:website" json:"website,omitempty"`
	AssignedAdminID *int    `gorm:"column:assigned_admin_id" json:"assigned_admin_id,omitempty"`

	CreatedBy int        `gorm:"column:created_by" json:"created_by"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	AssignedAdmin *User `gorm:"foreignKey:AssignedAdminID" json:"assigned_admin,omitempty"`
	Creator       User  `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Partner) TableName() string {
	return "partners"
}

// Contract status values shared by Partner and Contract.
const (
	ContractStatusDraft   = "draft"
	ContractStatusSent    = "sent"
	ContractStatusSigned  = "signed"
	ContractStatusExpired = "expired"
)

// HasSignedContract reports whether the partner finished contract signing.
func (p *Partner) HasSignedContract() bool {
	return p.ContractStatus == ContractStatusSigned
}

// GetTierName returns the display label for the partner tier.
func (p *Partner) GetTierName() string {
	switch p.Tier {
	case "platinum":
		return "Platinum Partner"
	case "gold":
		return "Gold Partner"
	case "silver":
		return "Silver Partner"
	case "community":
		return "Community Partner"
	default:
		return p.Tier
	}
}

// ===== Request DTOs =====

type PartnerCreateRequest struct {
	Name            string  `json:"name" binding:"required"`
	Tier            string  `json:"tier" binding:"omitempty,oneof=platinum gold silver community"`
	ContactEmail    *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone    *string `json:"contact_phone"`
	Website         *string `json:"website"`
	AssignedAdminID *int    `json:"assigned_admin_id"`
}

type PartnerUpdateRequest struct {
	Name            *string `json:"name"`
	Tier            *string `json:"tier" binding:"omitempty,oneof=platinum gold silver community"`
	ContractStatus  *string `json:"contract_status" binding:"omitempty,oneof=draft sent signed expired"`
	ContactEmail    *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone    *string `json:"contact_phone"`
	Website         *string `json:"website"`
	AssignedAdminID *int    `json:"assigned_admin_id"`
}
