package models

import "time"

// ReminderRule configures a deadline reminder: partners with a deliverable due
// within DaysBefore days get a notification and a mail when the sweep runs.
type ReminderRule struct {
	RuleID     int        `gorm:"primaryKey;column:rule_id" json:"rule_id"`
	Title      string     `gorm:"column:title" json:"title"`
	Message    string     `gorm:"column:message" json:"message"`
	DaysBefore int        `gorm:"column:days_before" json:"days_before"`
	Enabled    bool       `gorm:"column:enabled;default:true" json:"enabled"`
	LastRunAt  *time.Time `gorm:"column:last_run_at" json:"last_run_at,omitempty"`

	CreatedBy int        `gorm:"column:created_by" json:"created_by"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (ReminderRule) TableName() string {
	return "reminder_rules"
}

type ReminderRuleCreateRequest struct {
	Title      string `json:"title" binding:"required"`
	Message    string `json:"message" binding:"required"`
	DaysBefore int    `json:"days_before" binding:"required,min=1,max=60"`
	Enabled    *bool  `json:"enabled"`
}

type ReminderRuleUpdateRequest struct {
	Title      *string `json:"title"`
	Message    *string `json:"message"`
	DaysBefore *int    `json:"days_before" binding:"omitempty,min=1,max=60"`
	Enabled    *bool   `json:"enabled"`
}
