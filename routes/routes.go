package routes

import (
	"net/http"
	"time"

	"playzone/config"
	"playzone/handlers"
	"playzone/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the per-entity handlers registered on the router.
type HandlerBundle struct {
	Booking   *handlers.BookingHandler
	User      *handlers.UserHandler
	Payment   *handlers.PaymentHandler
	Event     *handlers.EventHandler
	Resource  *handlers.ResourceHandler
	Complaint *handlers.ComplaintHandler
}

// RegisterBookingRoutes sets up the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.AddBooking)
		api.GET("", hb.Booking.GetAllBookings)
		api.GET("/export", hb.Booking.ExportBookings)
		api.GET("/email/:email", hb.Booking.GetBookingsByEmail)
		api.GET("/:id", hb.Booking.GetBookingByID)
		api.PUT("/admin/:id", hb.Booking.AdminUpdateBooking)
		api.PUT("/:id", hb.Booking.UpdateBooking)
		api.DELETE("/:id", hb.Booking.DeleteBooking)
	}
}

// RegisterUserRoutes registers user account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/Users")
	{
		api.GET("", hb.User.GetAllUsers)
		api.POST("", hb.User.AddUser)
		api.GET("/email/:email", hb.User.GetUserByEmail)
		api.GET("/:id", hb.User.GetUserByID)
		api.PUT("/:id", hb.User.UpdateUser)
		api.DELETE("/:id", hb.User.DeleteUser)
	}
}

// RegisterPaymentRoutes registers payment record endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/Payments")
	{
		api.GET("", hb.Payment.GetAllPayments)
		api.POST("", hb.Payment.AddPayment)
		api.GET("/:id", hb.Payment.GetPaymentByID)
		api.PUT("/:id", hb.Payment.UpdatePayment)
		api.DELETE("/:id", hb.Payment.DeletePayment)
	}
}

// RegisterEventRoutes registers event scheduling endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/Events")
	{
		api.GET("", hb.Event.GetAllEvents)
		api.POST("", hb.Event.AddEvent)
		api.GET("/:id", hb.Event.GetEventByID)
		api.PUT("/:id", hb.Event.UpdateEvent)
		api.DELETE("/:id", hb.Event.DeleteEvent)
	}
}

// RegisterResourceRoutes registers resource inventory endpoints.
func RegisterResourceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/Resources")
	{
		api.GET("", hb.Resource.GetAllResources)
		api.POST("", hb.Resource.AddResource)
		api.GET("/:id", hb.Resource.GetResourceByID)
		api.PUT("/:id", hb.Resource.UpdateResource)
		api.DELETE("/:id", hb.Resource.DeleteResource)
	}
}

// RegisterComplaintRoutes registers complaint/feedback endpoints.
func RegisterComplaintRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/Complaints")
	{
		api.POST("/complaints/create", hb.Complaint.CreateComplaint)
		api.GET("/complaints", hb.Complaint.GetAllComplaints)
		api.GET("/complaints/download", hb.Complaint.DownloadComplaints)
		api.GET("/complaints/:id", hb.Complaint.GetComplaintByID)
		api.PUT("/complaints/:id", hb.Complaint.UpdateComplaint)
		api.DELETE("/complaints/:id", hb.Complaint.DeleteComplaint)
		api.GET("/testimonials", hb.Complaint.GetFeedbacks)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterResourceRoutes(r, hb)
	RegisterComplaintRoutes(r, hb)
	RegisterHealthRoute(r)
}
