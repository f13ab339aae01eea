package config

type InternalConfig struct {
	App        App           `mapstructure:"app"`
	Backend    AppBackend    `mapstructure:"backend"`
	Onboarding AppOnboarding `mapstructure:"onboarding"`
	Web        AppWeb        `mapstructure:"web"`
	CLI        AppCLI        `mapstructure:"cli"`
	RabbitMQ   AppRabbitMQ   `mapstructure:"rabbitmq"`
	MongoDB    AppMongoDB    `mapstructure:"mongodb"`
	Minio      AppMinio      `mapstructure:"minio"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	FrontendDomain             string `mapstructure:"frontend_domain"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

// AppBackend describes the remote HealthMe API every call is sent to.
type AppBackend struct {
	BaseUrl                 string `mapstructure:"base_url"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds"`
	MaxRequestsPerSecond    int    `mapstructure:"max_requests_per_second"`
	RequestBurst            int    `mapstructure:"request_burst"`
}

type AppOnboarding struct {
	PaymentPollIntervalInMilliseconds int `mapstructure:"payment_poll_interval_in_milliseconds"`
	PaymentWatchMaxDurationInSeconds  int `mapstructure:"payment_watch_max_duration_in_seconds"`
}

type AppWeb struct {
	ClientCookieName           string `mapstructure:"client_cookie_name"`
	ClientCookieMaxAgeInDays   int    `mapstructure:"client_cookie_max_age_in_days"`
	ClientStoreExpiryInHours   int    `mapstructure:"client_store_expiry_in_hours"`
	ClientCookieSecure         bool   `mapstructure:"client_cookie_secure"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	WatchRequestTimeoutSeconds int    `mapstructure:"watch_request_timeout_seconds"`
	AuthAttemptsPerMinute      int    `mapstructure:"auth_attempts_per_minute"`
}

type AppCLI struct {
	StorePath string `mapstructure:"store_path"`
}

type AppRabbitMQ struct {
	PaymentExchange string `mapstructure:"payment_exchange"`
}

type AppMongoDB struct {
	DiagnosticsDBName         string `mapstructure:"diagnostics_db_name"`
	DiagnosticsCollectionName string `mapstructure:"diagnostics_collection_name"`
}

type AppMinio struct {
	DocumentMaxSizeInMB int64 `mapstructure:"document_max_size_in_mb"`
}
