package main

import (
	"context"
	"flag"
	"fmt"
	"healthme-client/internal/app/config"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/drivers/logger"
	"healthme-client/internal/app/drivers/messaging"
	"healthme-client/internal/app/drivers/storage"
	"healthme-client/internal/app/services/backend"
	"healthme-client/internal/app/services/core/workspace"
	"healthme-client/internal/app/services/shared/diagnostics"
	"healthme-client/internal/app/services/shared/documents"
	"healthme-client/internal/app/services/shared/gateway"
	"healthme-client/internal/app/services/shared/kvstore"
	"healthme-client/internal/app/services/shared/notifier"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const defaultStoreFile = ".healthme/store.json"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	internalConfig.App.Env = "cli"
	if os.Getenv("LOGGER_LEVEL") == "" {
		driverConfig.Logger.Level = "warn"
	}

	global := flag.NewFlagSet("healthme", flag.ExitOnError)
	global.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	server := global.String("server", internalConfig.Backend.BaseUrl, "backend base URL")
	storePath := global.String("store", defaultStorePath(internalConfig.CLI.StorePath), "local session store file")
	global.Parse(os.Args[1:])
	internalConfig.Backend.BaseUrl = *server

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, closeDrivers := buildDependencies(driverConfig, internalConfig, log)
	ws := workspace.New(kvstore.NewFileStore(*storePath, log), deps)

	err := newCLI(ws, os.Stdout, os.Stderr, internalConfig.App.Version).run(ctx, global.Args())
	ws.Close()
	closeDrivers()

	if err != nil {
		log.Debug("Command failed",
			zap.Strings(constvars.LoggingCommandKey, global.Args()),
			zap.Error(err),
		)
		fmt.Fprintln(os.Stderr, "Error:", exceptions.ClientMessageOf(err))
		os.Exit(1)
	}
}

// defaultStorePath keeps the session next to the user's other dotfiles unless
// HEALTHME_STORE_PATH says otherwise.
func defaultStorePath(configured string) string {
	if configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Base(defaultStoreFile)
	}
	return filepath.Join(home, defaultStoreFile)
}

// buildDependencies wires the backend and the optional drivers. Minio and
// RabbitMQ are only dialed when their host is configured; a failure leaves
// the CLI on local files and polling.
func buildDependencies(driverConfig *config.DriverConfig, cfg *config.InternalConfig, log *zap.Logger) (workspace.Dependencies, func()) {
	backendGateway := gateway.NewGateway(
		cfg.Backend.BaseUrl,
		time.Duration(cfg.Backend.RequestTimeoutInSeconds)*time.Second,
		log,
		gateway.WithRateLimit(cfg.Backend.MaxRequestsPerSecond, cfg.Backend.RequestBurst),
		gateway.WithDiagnostics(diagnostics.NewLogRecorder(log)),
	)

	maxDocumentBytes := cfg.Minio.DocumentMaxSizeInMB << 20
	var objectSource contracts.DocumentSource
	if driverConfig.Minio.Enabled() {
		minioClient, err := storage.NewMinio(driverConfig)
		if err != nil {
			log.Warn("Minio unavailable, only local certificate files can be uploaded", zap.Error(err))
		} else {
			objectSource = documents.NewMinioSource(minioClient, maxDocumentBytes, log)
		}
	}

	deps := workspace.Dependencies{
		Backend:          backend.NewBackendClient(backendGateway, log),
		Documents:        documents.NewDocumentSource(documents.NewFileSource(maxDocumentBytes, log), objectSource),
		PollInterval:     time.Duration(cfg.Onboarding.PaymentPollIntervalInMilliseconds) * time.Millisecond,
		MaxWatchDuration: time.Duration(cfg.Onboarding.PaymentWatchMaxDurationInSeconds) * time.Second,
		Logger:           log,
	}

	closeDrivers := func() {}
	if driverConfig.RabbitMQ.Enabled() {
		conn, err := messaging.NewRabbitMQ(driverConfig)
		if err != nil {
			log.Warn("RabbitMQ unavailable, payment watch relies on polling only", zap.Error(err))
			return deps, closeDrivers
		}
		closeDrivers = func() { conn.Close() }

		paymentNotifier, err := notifier.NewRabbitMQNotifier(conn, cfg.RabbitMQ.PaymentExchange, log)
		if err != nil {
			log.Warn("Payment notifier disabled", zap.Error(err))
		} else {
			deps.Notifier = paymentNotifier
		}
	}

	return deps, closeDrivers
}
