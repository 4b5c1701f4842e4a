package routes

import (
	"net/http"
	"time"

	"github.com/Fecu3799/project-arq-web/handlers"
	"github.com/Fecu3799/project-arq-web/middleware"
	"github.com/Fecu3799/project-arq-web/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers login/logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/auth")
	{
		api.POST("/login", hb.Auth.Login)

		api.Use(middleware.AuthMiddleware(hb.AuthSvc))
		api.DELETE("/logout", hb.Auth.Logout)
	}
}

// RegisterCatalogRoutes registers the public service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/services")
	{
		api.GET("", hb.Catalog.List)
		api.GET("/:id", hb.Catalog.Get)
	}
}

// RegisterBookingRoutes registers availability queries and the appointment
// lifecycle. Any authenticated actor may book.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1")
	{
		api.Use(middleware.AuthMiddleware(hb.AuthSvc))
		api.Use(middleware.RequireRole(models.RoleClient, models.RoleAdmin))
		api.GET("/availability/day", hb.Availability.Day)
		api.POST("/appointments", hb.Appointments.Create)
		api.PATCH("/appointments/:id", hb.Appointments.Update)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/admin")
	{
		api.Use(middleware.AuthMiddleware(hb.AuthSvc))
		api.Use(middleware.RequireRole(models.RoleAdmin))
		api.GET("/services", hb.Catalog.AdminList)
		api.POST("/services", hb.Catalog.AdminCreate)
		api.PATCH("/services/:id", hb.Catalog.AdminUpdate)
		api.GET("/appointments", hb.Appointments.AdminList)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
