package routes

import (
	"net/http"
	"time"

	"clinicbook/handlers"
	"clinicbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the patient-facing availability endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, sh *handlers.ScheduleHandler) {
	api := r.Group("/api")
	{
		api.GET("/availability/:date", sh.GetAvailability)
	}
}

// RegisterAppointmentRoutes registers booking and staff schedule endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, sh *handlers.ScheduleHandler) {
	api := r.Group("/api/appointments")
	{
		api.POST("", sh.CreateAppointment)
		api.GET("/day/:date", sh.DaySchedule)
		api.PATCH("/:id/status", sh.UpdateStatus)
	}
}

// RegisterClinicRoutes registers clinic settings management endpoints.
func RegisterClinicRoutes(r *gin.Engine, ch *handlers.ClinicHandler) {
	api := r.Group("/api/clinic")
	{
		api.GET("/settings", ch.GetSettings)
		api.PUT("/settings", ch.PutSettings)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sh *handlers.ScheduleHandler, ch *handlers.ClinicHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, sh)
	RegisterAppointmentRoutes(r, sh)
	RegisterClinicRoutes(r, ch)
}
