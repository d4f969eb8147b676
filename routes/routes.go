package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spa-backend/controllers"
	"spa-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances to the route tree.
func SetupRouter(
	bc *controllers.BookingController,
	tc *controllers.TreatmentController,
	cc *controllers.CustomerController,
	dc *controllers.DraftController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Kiosk (no auth): catalogs, drafts, booking submission
		categories := api.Group("/categories")
		{
			categories.GET("", controllers.GetCategories)
			categories.POST("", middleware.AdminAuth(), controllers.CreateCategory)
			categories.PUT("/:id", middleware.AdminAuth(), controllers.UpdateCategory)
			categories.DELETE("/:id", middleware.AdminAuth(), controllers.DeleteCategory)
		}

		treatments := api.Group("/treatments")
		{
			treatments.GET("", tc.GetTreatments)
			treatments.GET("/:id", tc.GetTreatmentByID)
			treatments.POST("", middleware.AdminAuth(), tc.CreateTreatment)
			treatments.PUT("/:id", middleware.AdminAuth(), tc.UpdateTreatment)
			treatments.DELETE("/:id", middleware.AdminAuth(), tc.DeleteTreatment)
		}

		food := api.Group("/food-beverages")
		{
			food.GET("", controllers.GetFoodBeverages)
			food.POST("", middleware.AdminAuth(), controllers.CreateFoodBeverage)
			food.PUT("/:id", middleware.AdminAuth(), controllers.UpdateFoodBeverage)
			food.DELETE("/:id", middleware.AdminAuth(), controllers.DeleteFoodBeverage)
		}

		customers := api.Group("/customers")
		{
			customers.POST("", cc.CreateCustomer)
			customers.GET("", middleware.AdminAuth(), cc.GetCustomers)
		}

		drafts := api.Group("/booking-drafts")
		{
			drafts.POST("", dc.CreateDraft)
			drafts.GET("/:token", dc.GetDraft)
			drafts.PUT("/:token", dc.UpdateDraft)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("/create", bc.CreateBooking)

			// notes/logs must be registered before /:id
			bookings.GET("/notes/logs", middleware.AdminAuth(), bc.GetNoteLogs)
			bookings.GET("", middleware.AdminAuth(), bc.GetBookings)
			bookings.GET("/:id", middleware.AdminAuth(), bc.GetBookingByID)
			bookings.PUT("/:id/note", middleware.AdminAuth(), bc.UpdateNote)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/get-video", controllers.GetVideo)
			settings.POST("/upload-video", middleware.AdminAuth(), controllers.UploadVideo)
			settings.GET("/spa", controllers.GetSpaSettings)
			settings.PUT("/spa", middleware.AdminAuth(), controllers.UpdateSpaSettings)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", controllers.Login)
			admin.GET("", middleware.AdminAuth(), controllers.GetAdmins)
		}
	}

	return r
}
