package routes

import (
	"github.com/menuboard/menuboard-api/config"
	"github.com/menuboard/menuboard-api/handlers"
	"github.com/menuboard/menuboard-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// Stored images, referenced by the relative paths in JSON responses
	r.Static("/uploads", config.App.UploadDir)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
		public.POST("/auth/bootstrap", handlers.Bootstrap)

		// Read-only surface for the menu display app
		public.GET("/public/menu-items/:userId", handlers.PublicMenu)
		public.GET("/public/promotions/:userId", handlers.PublicPromotions)
		public.GET("/public/advertisements/:userId", handlers.PublicAdvertisements)
	}

	// ── Restaurant account routes (owner-scoped) ───────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		auth.GET("/menu-items", handlers.ListMenuItems)
		auth.POST("/menu-items", handlers.CreateMenuItem)
		auth.PUT("/menu-items/:id", handlers.UpdateMenuItem)
		auth.DELETE("/menu-items/:id", handlers.DeleteMenuItem)

		auth.GET("/promotions", handlers.ListPromotions)
		auth.POST("/promotions", handlers.CreatePromotion)
		auth.PUT("/promotions/:id", handlers.UpdatePromotion)
		auth.DELETE("/promotions/:id", handlers.DeletePromotion)
	}

	// ── Platform admin routes ──────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.PlatformAdminRequired())
	{
		admin.GET("/users", handlers.AdminListUsers)
		admin.POST("/users", handlers.AdminCreateUser)
		admin.GET("/users/:userId", handlers.AdminGetUser)
		admin.DELETE("/users/:userId", handlers.AdminDeleteUser)

		admin.GET("/users/:userId/menu-items", handlers.AdminListMenuItems)
		admin.POST("/users/:userId/menu-items", handlers.AdminCreateMenuItem)
		admin.GET("/users/:userId/promotions", handlers.AdminListPromotions)
		admin.POST("/users/:userId/promotions", handlers.AdminCreatePromotion)

		// Cross-tenant mutation reuses the owner-scoped handlers; the
		// admin role passes their ownership check.
		admin.PUT("/menu-items/:id", handlers.UpdateMenuItem)
		admin.DELETE("/menu-items/:id", handlers.DeleteMenuItem)
		admin.DELETE("/promotions/:id", handlers.DeletePromotion)

		admin.GET("/advertisements", handlers.ListAdvertisements)
		admin.POST("/advertisements", handlers.CreateAdvertisement)
		admin.DELETE("/advertisements/:id", handlers.DeleteAdvertisement)
	}
}
