package routes

import (
	"asset-management-api/controllers"
	"asset-management-api/middleware"
	"asset-management-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)
			public.POST("/forgot-password", controllers.ForgotPassword)
			public.POST("/reset-password", controllers.ResetPassword)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Asset Management API is running",
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

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)

			staff := middleware.RequireRole(models.RoleAdmin, models.RoleAssetStaff)

			// Assets
			assets := protected.Group("/assets")
			{
				assets.GET("", controllers.GetAssets)
				assets.GET("/:id", controllers.GetAsset)
				assets.POST("", staff, controllers.CreateAsset)
				assets.PUT("/:id", staff, controllers.UpdateAsset)
				assets.DELETE("/:id", staff, controllers.DeleteAsset)
			}

			// Rooms
			rooms := protected.Group("/rooms")
			{
				rooms.GET("", controllers.GetRooms)
				rooms.GET("/:id", controllers.GetRoom)
				rooms.POST("", staff, controllers.CreateRoom)
				rooms.PUT("/:id", staff, controllers.UpdateRoom)
				rooms.DELETE("/:id", staff, controllers.DeleteRoom)
			}

			// Categories
			categories := protected.Group("/categories")
			{
				categories.GET("", controllers.GetCategories)
				categories.GET("/:id", controllers.GetCategory)
				categories.POST("", staff, controllers.CreateCategory)
				categories.PUT("/:id", staff, controllers.UpdateCategory)
				categories.DELETE("/:id", staff, controllers.DeleteCategory)
			}

			// User management (admin only)
			users := protected.Group("/users")
			users.Use(middleware.RequireRole(models.RoleAdmin))
			{
				users.GET("", controllers.GetUsers)
				users.GET("/:id", controllers.GetUser)
				users.POST("", controllers.CreateUser)
				users.PUT("/:id", controllers.UpdateUser)
				users.DELETE("/:id", controllers.DeleteUser)
			}

			// Bulk imports (admin and asset staff)
			imports := protected.Group("/import")
			imports.Use(staff)
			{
				imports.POST("/asset", controllers.ImportAssets)
				imports.POST("/room", controllers.ImportRooms)
				imports.POST("/category", controllers.ImportCategories)
				imports.POST("/user", controllers.ImportUsers)

				imports.GET("/template/:type", controllers.DownloadImportTemplate)
				imports.GET("/history", controllers.GetImportHistory)
				imports.GET("/detail/:id", controllers.GetImportDetail)
			}
		}
	}
}
