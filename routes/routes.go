package routes

import (
	"permit-service-api/controllers"
	"permit-service-api/middleware"
	"permit-service-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/auth/login", controllers.Login)

			// Permit type catalog for the public submission form
			public.GET("/jenis-perizinan", controllers.GetPermitTypes)
			public.GET("/jenis-perizinan/:id", controllers.GetPermitType)

			// Public submission
			public.POST("/permohonan", controllers.CreatePermitRequest)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Permit Service API is running",
				})
			})
		}

		// Protected routes (any authenticated admin)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/profile", controllers.GetProfile)
			protected.POST("/auth/change-password", controllers.ChangePassword)

			// Request review workflow
			protected.GET("/admin/permohonan", controllers.GetPermitRequests)
			protected.GET("/admin/permohonan/:id", controllers.GetPermitRequest)
			protected.GET("/admin/permohonan/status/:status", controllers.GetPermitRequestsByStatus)
			protected.PATCH("/admin/permohonan/:id/status", controllers.UpdateRequestStatus)
			protected.POST("/admin/permohonan/:id/balasan", controllers.SubmitDecision)

			// Dashboard
			protected.GET("/admin/dashboard/statistik", controllers.GetDashboardStatistics)
			protected.GET("/admin/dashboard/recent", controllers.GetRecentPermitRequests)

			// Notifications
			protected.GET("/admin/notifikasi", controllers.GetNotifications)
			protected.GET("/admin/notifikasi/count", controllers.CountUnreadNotifications)
			protected.PATCH("/admin/notifikasi/:id/read", controllers.MarkNotificationRead)
			protected.PATCH("/admin/notifikasi/read-all", controllers.MarkAllNotificationsRead)
		}

		// Super admin only
		superAdmin := v1.Group("")
		superAdmin.Use(middleware.AuthMiddleware())
		superAdmin.Use(middleware.RequireRole(models.RoleSuperAdmin))
		{
			superAdmin.POST("/admin/jenis-perizinan", controllers.CreatePermitType)
			superAdmin.PUT("/admin/jenis-perizinan/:id", controllers.UpdatePermitType)
			superAdmin.DELETE("/admin/jenis-perizinan/:id", controllers.DeletePermitType)

			superAdmin.GET("/admin/admins", controllers.GetAdmins)
			superAdmin.POST("/admin/admins", controllers.CreateAdmin)
			superAdmin.GET("/admin/admins/:id", controllers.GetAdmin)
			superAdmin.PUT("/admin/admins/:id", controllers.UpdateAdmin)
			superAdmin.DELETE("/admin/admins/:id", controllers.DeleteAdmin)
			superAdmin.POST("/admin/admins/:id/reset-password", controllers.ResetAdminPassword)
		}
	}

	// Stored attachments
	router.GET("/download/:filename", controllers.DownloadFile)
	router.Static("/uploads", "./uploads")
}
