package models

import "time"

// Contract is a contract document distributed to a partner for signing.
// Partner.ContractStatus mirrors the latest contract's status.
type Contract struct {
	ContractID int     `gorm:"primaryKey;column:contract_id" json:"contract_id"`
	PartnerID  int     `gorm:"column:partner_id" json:"partner_id"`
	FileName   string  `gorm:"column:file_name" json:"file_name"`
	FilePath   string  `gorm:"column:file_path" json:"file_path"`
	FileSize   *int64  `gorm:"column:file_size" json:"file_size,omitempty"`
	MimeType   *string `gorm:"column:mime_type" json:"mime_type,omitempty"`
	Status     string  `gorm:"column:status;type:varchar(20);default:'draft'" json:"status"`

	SentAt   *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
	SignedAt *time.Time `gorm:"column:signed_at" json:"signed_at,omitempty"`
	SignedBy *int       `gorm:"column:signed_by" json:"signed_by,omitempty"`

	CreatedBy int        `gorm:"column:created_by" json:"created_by"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Partner Partner `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
	Signer  *User   `gorm:"foreignKey:SignedBy" json:"signer,omitempty"`
}

func (Contract) TableName() string {
	return "contracts"
}

// IsSigned reports whether the contract has been signed by the partner.
func (c *Contract) IsSigned() bool {
	return c.Status == ContractStatusSigned
}
