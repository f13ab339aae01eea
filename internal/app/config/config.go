package config

import (
	"healthme-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", ""),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", ""),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		Backend: AppBackend{
			BaseUrl:                 utils.GetEnvString("BACKEND_BASE_URL", "https://healthme-backend.onrender.com"),
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 15),
			MaxRequestsPerSecond:    utils.GetEnvInt("BACKEND_MAX_REQUESTS_PER_SECOND", 10),
			RequestBurst:            utils.GetEnvInt("BACKEND_REQUEST_BURST", 10),
		},
		Onboarding: AppOnboarding{
			PaymentPollIntervalInMilliseconds: utils.GetEnvInt("ONBOARDING_PAYMENT_POLL_INTERVAL_IN_MILLISECONDS", 4000),
			PaymentWatchMaxDurationInSeconds:  utils.GetEnvInt("ONBOARDING_PAYMENT_WATCH_MAX_DURATION_IN_SECONDS", 300),
		},
		Web: AppWeb{
			ClientCookieName:           utils.GetEnvString("WEB_CLIENT_COOKIE_NAME", "hm_client"),
			ClientCookieMaxAgeInDays:   utils.GetEnvInt("WEB_CLIENT_COOKIE_MAX_AGE_IN_DAYS", 30),
			ClientStoreExpiryInHours:   utils.GetEnvInt("WEB_CLIENT_STORE_EXPIRY_IN_HOURS", 720),
			ClientCookieSecure:         utils.GetEnvBool("WEB_CLIENT_COOKIE_SECURE", false),
			RequestTimeoutInSeconds:    utils.GetEnvInt("WEB_REQUEST_TIMEOUT_IN_SECONDS", 30),
			WatchRequestTimeoutSeconds: utils.GetEnvInt("WEB_WATCH_REQUEST_TIMEOUT_IN_SECONDS", 300),
			AuthAttemptsPerMinute:      utils.GetEnvInt("WEB_AUTH_ATTEMPTS_PER_MINUTE", 10),
		},
		CLI: AppCLI{
			StorePath: utils.GetEnvString("HEALTHME_STORE_PATH", ""),
		},
		RabbitMQ: AppRabbitMQ{
			PaymentExchange: utils.GetEnvString("RABBITMQ_PAYMENT_EXCHANGE", "healthme.payments"),
		},
		MongoDB: AppMongoDB{
			DiagnosticsDBName:         utils.GetEnvString("MONGODB_DIAGNOSTICS_DB_NAME", "healthme_client"),
			DiagnosticsCollectionName: utils.GetEnvString("MONGODB_DIAGNOSTICS_COLLECTION_NAME", "gateway_diagnostics"),
		},
		Minio: AppMinio{
			DocumentMaxSizeInMB: utils.GetEnvInt64("MINIO_DOCUMENT_MAX_SIZE_IN_MB", 10),
		},
	}
}
