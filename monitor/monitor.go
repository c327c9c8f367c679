package monitor

import (
	"time"

	"partner-portal-api/config"

	"github.com/gin-gonic/gin"
)

var startedAt = time.Now()

// RegisterMonitorPage exposes a lightweight status endpoint used by the ops
// dashboard and deploy checks.
func RegisterMonitorPage(router *gin.Engine) {
	router.GET("/monitor", func(c *gin.Context) {
		dbStatus := "ok"
		if config.DB == nil {
			dbStatus = "not connected"
		} else if sqlDB, err := config.DB.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "unreachable"
		}

		c.JSON(200, gin.H{
			"status":         "ok",
			"database":       dbStatus,
			"uptime_seconds": int(time.Since(startedAt).Seconds()),
			"started_at":     startedAt.Format(time.RFC3339),
		})
	})
}
