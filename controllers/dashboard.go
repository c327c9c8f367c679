package controllers

import (
	"log"
	"net/http"
	"time"

	"partner-portal-api/models"
	"partner-portal-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDashboardStats computes the dashboard metrics for the caller's partner
// scope. Every collection is fetched independently; a failed fetch degrades to
// an empty slice so partial data availability yields zeroed metrics instead of
// an error response.
func GetDashboardStats(c *gin.Context) {
	partnerIDs, err := scopedPartnerIDs(c)
	if err != nil {
		log.Printf("Warning: failed to resolve partner scope for dashboard: %v", err)
		partnerIDs = []int{}
	}

	scope := func(db *gorm.DB) *gorm.DB {
		if partnerIDs != nil {
			return db.Where("partner_id IN ?", partnerIDs)
		}
		return db
	}

	input := services.DashboardInput{}

	if err := scope(getDB().Where("delete_at IS NULL")).Find(&input.Partners).Error; err != nil {
		log.Printf("Warning: dashboard partners fetch failed: %v", err)
		input.Partners = nil
	}
	if err := scope(getDB().Where("delete_at IS NULL")).Find(&input.Deliverables).Error; err != nil {
		log.Printf("Warning: dashboard deliverables fetch failed: %v", err)
		input.Deliverables = nil
	}
	if err := scope(getDB()).Find(&input.Submissions).Error; err != nil {
		log.Printf("Warning: dashboard submissions fetch failed: %v", err)
		input.Submissions = nil
	}
	if err := scope(getDB().Where("delete_at IS NULL")).Find(&input.Nominations).Error; err != nil {
		log.Printf("Warning: dashboard nominations fetch failed: %v", err)
		input.Nominations = nil
	}
	if err := scope(getDB()).Find(&input.Progress).Error; err != nil {
		log.Printf("Warning: dashboard progress fetch failed: %v", err)
		input.Progress = nil
	}

	var mediaCount int64
	if err := getDB().Model(&models.FileUpload{}).Where("delete_at IS NULL").Count(&mediaCount).Error; err != nil {
		log.Printf("Warning: dashboard media count failed: %v", err)
		mediaCount = 0
	}
	input.MediaFileCount = int(mediaCount)

	if err := getDB().Preload("User").
		Order("created_at DESC").
		Limit(10).
		Find(&input.RecentActivity).Error; err != nil {
		log.Printf("Warning: dashboard activity fetch failed: %v", err)
		input.RecentActivity = nil
	}

	stats := services.ComputeDashboardStats(input, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"stats":        stats,
		"current_date": time.Now().Format("2006-01-02"),
	})
}
