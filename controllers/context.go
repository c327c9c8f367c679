package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"partner-portal-api/config"
	"partner-portal-api/models"
)

func getDB() *gorm.DB { return config.DB }

func getCurrentUserID(c *gin.Context) (int, bool) {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(int); ok {
			return id, true
		}
	}
	return 0, false
}

func getCurrentRoleID(c *gin.Context) (int, bool) {
	if v, ok := c.Get("roleID"); ok {
		if id, ok := v.(int); ok {
			return id, true
		}
	}
	return 0, false
}

// getCurrentPartnerID returns the partner the caller belongs to. Admin and
// staff accounts carry no partner.
func getCurrentPartnerID(c *gin.Context) (int, bool) {
	if v, ok := c.Get("partnerID"); ok {
		if id, ok := v.(int); ok {
			return id, true
		}
	}
	return 0, false
}

func isAdminRole(roleID int) bool {
	return roleID == models.RoleAdmin || roleID == models.RoleStaff
}

// scopedPartnerIDs returns the partner IDs the caller may see: all partners
// for admins, the assigned subset for staff, and the own partner for partner
// users. A nil slice means unscoped.
func scopedPartnerIDs(c *gin.Context) ([]int, error) {
	roleID, _ := getCurrentRoleID(c)

	switch roleID {
	case models.RoleAdmin:
		return nil, nil
	case models.RoleStaff:
		userID, _ := getCurrentUserID(c)
		var ids []int
		err := getDB().Model(&models.Partner{}).
			Where("assigned_admin_id = ? AND delete_at IS NULL", userID).
			Pluck("partner_id", &ids).Error
		if err != nil {
			return nil, err
		}
		if ids == nil {
			ids = []int{}
		}
		return ids, nil
	default:
		if partnerID, ok := getCurrentPartnerID(c); ok {
			return []int{partnerID}, nil
		}
		return []int{}, nil
	}
}

func strPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
