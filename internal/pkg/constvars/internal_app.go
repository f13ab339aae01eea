package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_CLIENT_ID_KEY            ContextKey = "client_id"
	CONTEXT_WORKSPACE_KEY            ContextKey = "workspace"
)

const (
	REQUEST_ID_PREFIX = "HLTHME_CLI_"
)

// Keys of the durable client-local store. Their names are shared with the
// browser frontend that talks to the same backend, so they must not change.
const (
	StoreKeyUser          = "user"
	StoreKeyToken         = "token"
	StoreKeySelectedPlan  = "selectedPlan"
	StoreKeyPaymentStatus = "paymentStatus"
)

const (
	RedisClientNamespaceFormat = "healthme:client:%s:"
	RedisWatchLockKeyFormat    = "healthme:onboarding:watch:%s"
)

const (
	RabbitMQPaymentApprovedRoutingKeyFormat = "payment.approved.%s"
)

const (
	DocumentRefMinioScheme = "s3://"
)
