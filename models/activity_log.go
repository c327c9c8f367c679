package models

import "time"

// ActivityLog is an immutable, append-only record of a notable action.
// Rows are never updated or deleted by normal flow.
type ActivityLog struct {
	LogID      int       `gorm:"primaryKey;column:log_id" json:"log_id"`
	UserID     int       `gorm:"column:user_id" json:"user_id"`
	Action     string    `gorm:"column:action" json:"action"`
	EntityType string    `gorm:"column:entity_type" json:"entity_type"`
	EntityID   *int      `gorm:"column:entity_id" json:"entity_id,omitempty"`
	Detail     *string   `gorm:"column:detail" json:"detail,omitempty"`
	IPAddress  *string   `gorm:"column:ip_address" json:"ip_address,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
