package models

import (
	"time"
)

// Role IDs as seeded in the roles table.
const (
	RolePartner = 1
	RoleStaff   = 2
	RoleAdmin   = 3
)

type User struct {
	UserID    int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	FirstName string     `gorm:"column:first_name" json:"first_name"`
	LastName  string     `gorm:"column:last_name" json:"last_name"`
	Email     string     `gorm:"column:email;unique" json:"email"`
	Password  string     `gorm:"column:password" json:"-"`
	RoleID    int        `gorm:"column:role_id" json:"role_id"`
	PartnerID *int       `gorm:"column:partner_id" json:"partner_id,omitempty"`
	Phone     *string    `gorm:"column:phone" json:"phone,omitempty"`
	JobTitle  *string    `gorm:"column:job_title" json:"job_title,omitempty"`
	LastLogin *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Role    Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Partner *Partner `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
}

type Role struct {
	RoleID   int        `gorm:"primaryKey;column:role_id" json:"role_id"`
	Role     string     `gorm:"column:role" json:"role"`
	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (Role) TableName() string {
	return "roles"
}

// FullName returns the display name used in notifications and mail.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsAdminRole reports whether the user can act across partners.
func (u *User) IsAdminRole() bool {
	return u.RoleID == RoleAdmin || u.RoleID == RoleStaff
}
