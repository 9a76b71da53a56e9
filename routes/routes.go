package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-ops-backend/controllers"
	"hotel-ops-backend/middleware"
	"hotel-ops-backend/models"
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

// SetupRouter wires the role-specific dashboard surfaces. Role gates here
// mirror the permission table in services; the services re-check on every
// call so no route misconfiguration can widen an operation.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	uc *controllers.UserController,
	rvc *controllers.ReviewController,
	src *controllers.ServiceRequestController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

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

	auth := r.Group("/auth")
	{
		auth.POST("/login", ac.Login)
		auth.POST("/register", ac.Register)
	}

	authed := r.Group("/", middleware.RequireAuth(jwtSecret))

	staffSide := []string{models.RoleAdmin, models.RoleManager, models.RoleReception}
	managers := []string{models.RoleAdmin, models.RoleManager}

	room := authed.Group("/room")
	{
		room.GET("/all-rooms", rc.GetAllRooms)
		room.GET("/:id", rc.GetRoomByID)

		room.PUT("/update-room-status/:id",
			middleware.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleStaff),
			rc.UpdateRoomStatus)

		room.POST("", middleware.RequireRole(models.RoleAdmin), rc.CreateRoom)
		room.PUT("/:id", middleware.RequireRole(models.RoleAdmin), rc.UpdateRoom)
		room.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), rc.DeleteRoom)
	}

	booking := authed.Group("/booking")
	{
		booking.GET("/all-bookings", bc.GetAllBookings)
		booking.GET("/:id", bc.GetBookingByID)

		booking.POST("/create-booking",
			middleware.RequireRole(models.RoleGuest, models.RoleReception, models.RoleManager, models.RoleAdmin),
			bc.CreateBooking)
		booking.POST("/cancel/:id",
			middleware.RequireRole(models.RoleGuest, models.RoleReception, models.RoleManager, models.RoleAdmin),
			bc.CancelBooking)

		booking.POST("/check-in/:id", middleware.RequireRole(staffSide...), bc.CheckIn)
		booking.POST("/check-out/:id", middleware.RequireRole(staffSide...), bc.CheckOut)

		booking.PUT("/update-booking-status/:id", middleware.RequireRole(managers...), bc.UpdateBookingStatus)
	}

	payment := authed.Group("/payment")
	{
		payment.POST("/process-payment", middleware.RequireRole(staffSide...), pc.ProcessPayment)
		payment.GET("/get-all-payments", middleware.RequireRole(staffSide...), pc.GetAllPayments)
		payment.GET("/invoice/:id", pc.GetInvoice)
	}

	settings := authed.Group("/settings")
	{
		settings.GET("", controllers.GetSettings)
		settings.PUT("", middleware.RequireRole(managers...), controllers.UpdateSettings)
	}

	users := authed.Group("/user", middleware.RequireRole(models.RoleAdmin))
	{
		users.GET("", uc.GetAllUsers)
		users.GET("/:id", uc.GetUserByID)
		users.POST("", uc.CreateUser)
		users.PUT("/:id", uc.UpdateUser)
		users.DELETE("/:id", uc.DeleteUser)
	}

	review := authed.Group("/review")
	{
		review.GET("", rvc.GetAllReviews)
		review.POST("", middleware.RequireRole(models.RoleGuest), rvc.CreateReview)
	}

	serviceReq := authed.Group("/service-request")
	{
		serviceReq.POST("",
			middleware.RequireRole(models.RoleGuest, models.RoleReception, models.RoleManager, models.RoleAdmin),
			src.CreateServiceRequest)
		serviceReq.GET("",
			middleware.RequireRole(models.RoleStaff, models.RoleReception, models.RoleManager, models.RoleAdmin),
			src.GetAllServiceRequests)
		serviceReq.GET("/booking/:id", src.GetServiceRequestsByBooking)
		serviceReq.PUT("/:id/status",
			middleware.RequireRole(models.RoleStaff, models.RoleReception, models.RoleManager, models.RoleAdmin),
			src.UpdateServiceRequestStatus)
	}

	return r
}
