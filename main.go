package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"playzone/config"
	"playzone/database"
	bookingRepoPkg "playzone/database/repository/booking"
	complaintRepoPkg "playzone/database/repository/complaint"
	eventRepoPkg "playzone/database/repository/event"
	paymentRepoPkg "playzone/database/repository/payment"
	resourceRepoPkg "playzone/database/repository/resource"
	userRepoPkg "playzone/database/repository/user"
	"playzone/handlers"
	"playzone/middleware"
	"playzone/routes"
	"playzone/services/booking"
	"playzone/services/user"
	"playzone/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	resourceRepo := resourceRepoPkg.NewMongoResourceRepo()
	complaintRepo := complaintRepoPkg.NewMongoComplaintRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:  bookingRepo,
		Cache: utils.GetCacheClient(),
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:   handlers.NewBookingHandler(bookingService, logger),
		User:      handlers.NewUserHandler(userService, logger),
		Payment:   handlers.NewPaymentHandler(paymentRepo, logger),
		Event:     handlers.NewEventHandler(eventRepo, logger),
		Resource:  handlers.NewResourceHandler(resourceRepo, logger),
		Complaint: handlers.NewComplaintHandler(complaintRepo, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
