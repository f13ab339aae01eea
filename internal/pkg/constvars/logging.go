package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingSessionRoleKey    = "session_role"
	LoggingUserIDKey         = "user_id"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorKindKey      = "error_kind"
	LoggingStatusCodeKey     = "status_code"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingStoreKey          = "store_key"
	LoggingRedisKey          = "redis_key"
	LoggingStateKey          = "state"
	LoggingNextStateKey      = "next_state"
	LoggingPlanIDKey         = "plan_id"
	LoggingKycStatusKey      = "kyc_status"
	LoggingPaymentStatusKey  = "payment_status"
	LoggingGenerationKey     = "generation"
	LoggingIntervalKey       = "interval"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingPractitionerIDKey = "practitioner_id"
	LoggingDocumentRefKey    = "document_ref"
	LoggingClientIDKey       = "client_id"
	LoggingCommandKey        = "command"
	LoggingPanelKey          = "panel"
	LoggingSectionKey        = "section"
	LoggingExchangeKey       = "exchange"
	LoggingRoutingKey        = "routing_key"

	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
)
