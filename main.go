// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resourcecal/config"
	"resourcecal/cron"
	"resourcecal/database"
	batchRepo "resourcecal/database/repository/batches"
	eventRepo "resourcecal/database/repository/events"
	"resourcecal/eventsourcing"
	"resourcecal/handlers"
	"resourcecal/middleware"
	"resourcecal/routes"
	"resourcecal/services/availability"
	"resourcecal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()
	utils.InitLockStore()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handlers.RegisterValidators(); err != nil {
		logger.Fatal("main: failed to register validators", zap.Error(err))
	}

	// repositories.
	batches := batchRepo.NewMongoBatchRepo()
	events := eventRepo.NewMongoEventRepo(availability.ValidateEvent, batches)
	for name, ensure := range map[string]func() error{"events": events.EnsureIndexes, "batches": batches.EnsureIndexes} {
		if err := ensure(); err != nil {
			logger.Fatal("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}
	if config.AppConfig.RebuildProjections {
		rebuildBatchIndex(logger, events, batches)
	}

	// services.
	clock := availability.SystemClock{Location: config.AppConfig.Location()}
	svc, err := availability.NewDefaultAvailabilityService(events, batches, clock, logger)
	if err != nil {
		logger.Fatal("main: failed to initialize availability service", zap.Error(err))
	}
	svc.Locker = utils.NewRedisLocker(utils.GetLockClient(), config.AppConfig.ResourceLockTTL)
	svc.Cache = availability.NewRedisViewCache(utils.GetCacheClient(), config.AppConfig.AvailabilityCacheTTL, logger)
	releases, queueClient := cron.NewReleaseScheduler()
	defer queueClient.Close()
	svc.Releases = releases
	svc.ReservationHold = config.AppConfig.ReservationHold

	worker := cron.InitReleaseWorker(svc)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, 60*time.Second,
		[]*redis.Client{utils.GetCacheClient(), utils.GetLockClient()}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(corsConfig()))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(handlers.NewResourceHandler(svc)))

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	origins := config.AppConfig.AllowedOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-ID")
	cfg.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	return cfg
}

// rebuildBatchIndex replays every stored event into the batch index.
func rebuildBatchIndex(logger *zap.Logger, events eventRepo.EventRepository, batches batchRepo.BatchRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	history, err := events.RetrieveAll(ctx)
	if err != nil {
		logger.Fatal("main: failed to load events for rebuild", zap.Error(err))
	}
	if err := eventsourcing.Rebuild(ctx, batches, history); err != nil {
		logger.Fatal("main: failed to rebuild batch index", zap.Error(err))
	}
	logger.Info("main: batch index rebuilt", zap.Int("events", len(history)))
}
