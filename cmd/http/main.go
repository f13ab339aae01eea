package main

import (
	"context"
	"healthme-client/internal/app/config"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/delivery/http/controllers"
	"healthme-client/internal/app/delivery/http/middlewares"
	"healthme-client/internal/app/delivery/http/routers"
	"healthme-client/internal/app/drivers/database"
	"healthme-client/internal/app/drivers/logger"
	"healthme-client/internal/app/drivers/messaging"
	"healthme-client/internal/app/drivers/storage"
	"healthme-client/internal/app/services/backend"
	"healthme-client/internal/app/services/core/workspace"
	"healthme-client/internal/app/services/shared/diagnostics"
	"healthme-client/internal/app/services/shared/documents"
	"healthme-client/internal/app/services/shared/gateway"
	"healthme-client/internal/app/services/shared/kvstore"
	"healthme-client/internal/app/services/shared/locker"
	"healthme-client/internal/app/services/shared/notifier"
	"healthme-client/internal/app/services/shared/ratelimiter"
	"healthme-client/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	ctx := context.Background()

	redisClient, err := database.NewRedisClient(ctx, driverConfig)
	if err != nil {
		log.Fatal("Redis is required for the web front", zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          redisClient,
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	// Optional drivers degrade to their local fallbacks.
	if driverConfig.MongoDB.Enabled() {
		bootstrap.MongoDB, err = database.NewMongoDB(ctx, driverConfig)
		if err != nil {
			log.Warn("MongoDB unavailable, gateway diagnostics go to the log", zap.Error(err))
		}
	}
	if driverConfig.Minio.Enabled() {
		bootstrap.Minio, err = storage.NewMinio(driverConfig)
		if err != nil {
			log.Warn("Minio unavailable, object storage documents are disabled", zap.Error(err))
		}
	}
	if driverConfig.RabbitMQ.Enabled() {
		bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig)
		if err != nil {
			log.Warn("RabbitMQ unavailable, payment watch relies on polling only", zap.Error(err))
		}
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    ":" + internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to close drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)

	// Gateway diagnostics
	var recorder contracts.DiagnosticsRecorder
	if bootstrap.MongoDB != nil {
		recorder = diagnostics.NewMongoRecorder(bootstrap.MongoDB, cfg.MongoDB.DiagnosticsDBName, cfg.MongoDB.DiagnosticsCollectionName, log)
	} else {
		recorder = diagnostics.NewLogRecorder(log)
	}

	// Backend
	backendGateway := gateway.NewGateway(
		cfg.Backend.BaseUrl,
		time.Duration(cfg.Backend.RequestTimeoutInSeconds)*time.Second,
		log,
		gateway.WithRateLimit(cfg.Backend.MaxRequestsPerSecond, cfg.Backend.RequestBurst),
		gateway.WithDiagnostics(recorder),
	)
	backendClient := backend.NewBackendClient(backendGateway, log)

	// KYC documents
	maxDocumentBytes := cfg.Minio.DocumentMaxSizeInMB << 20
	var objectSource contracts.DocumentSource
	if bootstrap.Minio != nil {
		objectSource = documents.NewMinioSource(bootstrap.Minio, maxDocumentBytes, log)
	}
	documentSource := documents.NewDocumentSource(documents.NewFileSource(maxDocumentBytes, log), objectSource)

	deps := workspace.Dependencies{
		Backend:          backendClient,
		Documents:        documentSource,
		Locker:           lockService,
		PollInterval:     time.Duration(cfg.Onboarding.PaymentPollIntervalInMilliseconds) * time.Millisecond,
		MaxWatchDuration: time.Duration(cfg.Onboarding.PaymentWatchMaxDurationInSeconds) * time.Second,
		Logger:           log,
	}

	// Payment notifier
	if bootstrap.RabbitMQ != nil {
		paymentNotifier, err := notifier.NewRabbitMQNotifier(bootstrap.RabbitMQ, cfg.RabbitMQ.PaymentExchange, log)
		if err != nil {
			log.Warn("Payment notifier disabled", zap.Error(err))
		} else {
			deps.Notifier = paymentNotifier
		}
	}

	// Workspaces, one per browser
	storeExpiry := time.Duration(cfg.Web.ClientStoreExpiryInHours) * time.Hour
	workspaces := workspace.NewBuilder(func(clientID string) contracts.KeyValueStore {
		return kvstore.NewRedisStore(redisRepository, clientID, storeExpiry, log)
	}, deps)

	authLimiter := ratelimiter.NewAttemptLimiter(redisRepository, "auth", time.Minute, cfg.Web.AuthAttemptsPerMinute, log)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, workspaces, authLimiter, cfg)

	// Controllers
	authController := controllers.NewAuthController(log)
	onboardingController := controllers.NewOnboardingController(log)
	appointmentController := controllers.NewAppointmentController(log)
	dashboardController := controllers.NewDashboardController(log)
	practitionerController := controllers.NewPractitionerController(log)

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		middlewares,
		authController,
		onboardingController,
		appointmentController,
		dashboardController,
		practitionerController,
	)
}
