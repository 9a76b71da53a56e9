package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-ops-backend/config"
	"hotel-ops-backend/controllers"
	"hotel-ops-backend/events"
	"hotel-ops-backend/routes"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue or verify tokens.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Optional infrastructure: both degrade to no-ops when unconfigured.
	cache := services.NewSnapshotCache(config.NewRedisClient())
	publisher := events.NewPublisherFromEnv()
	if cache != nil {
		log.Println("✅ Snapshot cache enabled")
	}
	if publisher != nil {
		log.Println("✅ Lifecycle event publishing enabled")
	}

	// Services
	userService := services.NewUserService(db)
	roomService := services.NewRoomService(db, cache)
	bookingService := services.NewBookingService(db, cache)
	lifecycleService := services.NewLifecycleService(db, publisher, cache)
	billingService := services.NewBillingService(db, publisher, cache)
	reviewService := services.NewReviewService(db)
	requestService := services.NewServiceRequestService(db)

	// Controllers
	authController := controllers.NewAuthController(userService, jwtSecret)
	roomController := controllers.NewRoomController(roomService, lifecycleService)
	bookingController := controllers.NewBookingController(bookingService, lifecycleService)
	paymentController := controllers.NewPaymentController(billingService)
	userController := controllers.NewUserController(userService)
	reviewController := controllers.NewReviewController(reviewService)
	requestController := controllers.NewServiceRequestController(requestService)

	router := routes.SetupRouter(
		authController,
		roomController,
		bookingController,
		paymentController,
		userController,
		reviewController,
		requestController,
		jwtSecret,
	)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
