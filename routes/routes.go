package routes

import (
	"time"

	"nestora/config"
	"nestora/handlers"
	"nestora/middleware"
	"nestora/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers authentication and profile endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/accounts")
	{
		api.POST("/register", hb.Accounts.RegisterHandler)
		api.POST("/login", hb.Accounts.AuthenticateHandler)
		api.POST("/verify-otp", hb.Accounts.VerifyOTPHandler)
		api.POST("/forgot-password", hb.Accounts.RequestPasswordResetHandler)
		api.POST("/reset-password", hb.Accounts.ResetPasswordHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("/me", hb.Accounts.GetAccountHandler)
		api.POST("/logout", hb.Accounts.LogoutHandler)
	}
}

// RegisterPropertyRoutes registers listing endpoints.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		// Public browse and detail endpoints.
		api.GET("", hb.Properties.BrowseHandler)
		api.GET("/:id", hb.Properties.GetPropertyHandler)

		// Listing management is restricted to agents.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		protected.Use(middleware.RequireRole(hb.AccountRepo, models.RoleAgent))
		protected.POST("", hb.Properties.PublishHandler)
		protected.PATCH("/:id/status", hb.Properties.UpdateStatusHandler)
		protected.DELETE("/:id", hb.Properties.DeletePropertyHandler)
	}
}

// RegisterInspectionRoutes registers inspection booking endpoints.
func RegisterInspectionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/inspections")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.POST("", hb.Inspections.BookHandler)
		api.DELETE("/:id", hb.Inspections.CancelHandler)

		agents := api.Group("")
		agents.Use(middleware.RequireRole(hb.AccountRepo, models.RoleAgent))
		agents.GET("/schedule", hb.Inspections.WeeklyScheduleHandler)
	}
}

// RegisterMaintenanceRoutes registers maintenance request endpoints.
func RegisterMaintenanceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/maintenance")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.POST("", hb.Maintenance.ReportHandler)
		api.GET("/property/:id", hb.Maintenance.ListByPropertyHandler)

		agents := api.Group("")
		agents.Use(middleware.RequireRole(hb.AccountRepo, models.RoleAgent))
		agents.PATCH("/:id/status", hb.Maintenance.UpdateStatusHandler)
	}
}

// RegisterFeedRoutes registers the agent timeline endpoint.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feed")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.Use(middleware.RequireRole(hb.AccountRepo, models.RoleAgent))
		api.GET("", hb.Feed.TimelineHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterAccountRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterInspectionRoutes(r, hb)
	RegisterMaintenanceRoutes(r, hb)
	RegisterFeedRoutes(r, hb)
	RegisterHealthRoute(r)
}
