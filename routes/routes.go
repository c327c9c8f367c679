package routes

import (
	"partner-portal-api/controllers"
	"partner-portal-api/middleware"
	"partner-portal-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)
			public.POST("/refresh", controllers.RefreshToken)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Partner Portal API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Partners
			partners := protected.Group("/partners")
			{
				partners.GET("", controllers.GetPartners)
				partners.GET("/:id", controllers.GetPartner)
				partners.GET("/:id/progress", controllers.GetPartnerProgress)
				partners.GET("/:id/contract", controllers.GetPartnerContract)

				// Admin-only partner management
				partners.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreatePartner)
				partners.PUT("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.UpdatePartner)
				partners.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeletePartner)
				partners.PUT("/:id/progress", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.UpsertPartnerProgress)
				partners.POST("/:id/contract", middleware.RequireRole(models.RoleAdmin), controllers.UploadContract)
				partners.GET("/:id/messages", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.GetMessages)
			}

			// Deliverables and submissions
			deliverables := protected.Group("/deliverables")
			{
				deliverables.GET("", controllers.GetDeliverables)
				deliverables.GET("/:id", controllers.GetDeliverable)
				deliverables.POST("/:id/submissions", middleware.RequireRole(models.RolePartner), controllers.CreateSubmission)

				deliverables.POST("", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.CreateDeliverable)
				deliverables.PUT("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.UpdateDeliverable)
				deliverables.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteDeliverable)
			}

			submissions := protected.Group("/submissions")
			{
				submissions.GET("", controllers.GetSubmissions)
				submissions.POST("/:id/review", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.ReviewSubmission)
			}

			// Nominations
			nominations := protected.Group("/nominations")
			{
				nominations.GET("", controllers.GetNominations)
				nominations.POST("", middleware.RequireRole(models.RolePartner), controllers.CreateNomination)
				nominations.PUT("/:id/status", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.UpdateNominationStatus)
			}

			// Approval requests
			approvals := protected.Group("/approvals")
			{
				approvals.GET("", controllers.GetApprovalRequests)
				approvals.GET("/:id", controllers.GetApprovalRequest)
				approvals.GET("/:id/file", controllers.DownloadApprovalFile)
				approvals.POST("/:id/comments", controllers.AddApprovalComment)

				approvals.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateApprovalRequest)
				approvals.POST("/:id/respond", middleware.RequireRole(models.RolePartner), controllers.RespondToApproval)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", controllers.GetDashboardStats)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetMyNotifications)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.PUT("/read-all", controllers.MarkAllNotificationsRead)
			}

			// Activity log (admin)
			protected.GET("/activity", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.GetRecentActivity)

			// Booths
			booths := protected.Group("/booths")
			{
				booths.GET("", controllers.GetBooths)
				booths.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateBooth)
				booths.PUT("/:id", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.UpdateBooth)
				booths.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteBooth)
			}

			// Contracts
			protected.POST("/contracts/:id/sign", middleware.RequireRole(models.RolePartner), controllers.SignContract)

			// Reminder rules (admin)
			reminders := protected.Group("/reminders")
			reminders.Use(middleware.RequireRole(models.RoleAdmin))
			{
				reminders.GET("", controllers.GetReminderRules)
				reminders.POST("", controllers.CreateReminderRule)
				reminders.PUT("/:id", controllers.UpdateReminderRule)
				reminders.DELETE("/:id", controllers.DeleteReminderRule)
				reminders.POST("/run", controllers.RunReminders)
			}

			// Support messages
			messages := protected.Group("/messages")
			{
				messages.GET("", controllers.GetMessages)
				messages.POST("", controllers.PostMessage)
			}

			// Files
			files := protected.Group("/files")
			{
				files.POST("", controllers.UploadFile)
				files.GET("/:id/download", controllers.DownloadFile)
			}
		}

	}

	// 404 for unknown paths
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Endpoint not found"})
	})
}
