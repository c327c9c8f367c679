package models

import "time"

// Message is one entry of the support chat between a partner's users and staff.
// Messages are grouped into a single thread per partner.
type Message struct {
	MessageID int        `gorm:"primaryKey;column:message_id" json:"message_id"`
	PartnerID int        `gorm:"column:partner_id" json:"partner_id"`
	SenderID  int        `gorm:"column:sender_id" json:"sender_id"`
	Body      string     `gorm:"column:body" json:"body"`
	FromStaff bool       `gorm:"column:from_staff" json:"from_staff"`
	ReadAt    *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`

	Sender User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}

type MessageCreateRequest struct {
	Body string `json:"body" binding:"required"`
}
