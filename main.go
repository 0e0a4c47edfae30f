package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nestora/config"
	"nestora/cron"
	"nestora/database"
	accountRepoPkg "nestora/database/repository/account"
	feedRepoPkg "nestora/database/repository/feed"
	inspectionRepoPkg "nestora/database/repository/inspection"
	maintenanceRepoPkg "nestora/database/repository/maintenance"
	propertyRepoPkg "nestora/database/repository/property"
	"nestora/handlers"
	"nestora/routes"
	"nestora/services/account"
	"nestora/services/feed"
	"nestora/services/inspection"
	"nestora/services/maintenance"
	"nestora/services/property"
	"nestora/services/schedule"
	"nestora/services/session"
	"nestora/services/tasks"
	"nestora/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	propertyRepo := propertyRepoPkg.NewMongoPropertyRepo()
	inspectionRepo := inspectionRepoPkg.NewMongoInspectionRepo()
	maintenanceRepo := maintenanceRepoPkg.NewMongoMaintenanceRepo()
	feedRepo := feedRepoPkg.NewMongoFeedRepo()

	// Device sessions keep their credential pairs in the session cache.
	sessionManager := session.NewManager(func(sessionID string) session.CredentialStorage {
		return session.NewRedisCredentialStorage(utils.GetSessionCacheClient(), sessionID)
	}, logger)

	// services.
	accountService := &account.DefaultAccountService{
		Repo:     accountRepo,
		Sessions: sessionManager,
	}
	propertyService := &property.DefaultPropertyService{
		Repo: propertyRepo,
		Feed: feedRepo,
	}
	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	inspectionService := &inspection.DefaultInspectionService{
		Repo:       inspectionRepo,
		Properties: propertyRepo,
		Feed:       feedRepo,
		Reminders:  reminderScheduler,
		Table:      schedule.DefaultTimeTable(),
		Days:       []int{1, 2, 3, 4, 5, 6, 7},
	}
	maintenanceService := &maintenance.DefaultMaintenanceService{
		Repo:       maintenanceRepo,
		Properties: propertyRepo,
		Feed:       feedRepo,
	}
	feedService := &feed.DefaultFeedService{
		Repo:  feedRepo,
		Cache: utils.GetCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AccountRepo: accountRepo,
		Accounts:    &handlers.AccountHandler{Service: accountService},
		Properties:  &handlers.PropertyHandler{Service: propertyService},
		Inspections: &handlers.InspectionHandler{Service: inspectionService},
		Maintenance: &handlers.MaintenanceHandler{Service: maintenanceService},
		Feed:        &handlers.FeedHandler{Service: feedService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitReminderWorker(accountRepo)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient(), utils.GetOTPCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
