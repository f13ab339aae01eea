package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"oneof":     "must be one of [%s]",
	"datetime":  "must match the format %s",
	"latitude":  "must be a latitude between -90 and 90",
	"longitude": "must be a longitude between -180 and 180",
	"user_role": "must be either 'practitioner' or 'patient'",
	"plan_id":   "must be one of the available subscription plans",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gte":      true,
	"lte":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerError                   = "server error, please try again"
	ErrClientCheckConnection               = "cannot connect to server, please check your connection"
	ErrClientTooManyAttempts               = "too many attempts, please retry in %d seconds"
	ErrClientRequestFailedWithStatus       = "request failed with status %d"
	ErrClientNotLoggedIn                   = "please login first"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientPractitionerOnly              = "this step is only available to practitioners"
	ErrClientRequestInFlight               = "a previous request is still being processed"
	ErrClientAgreeToTerms                  = "please agree to the terms and conditions before proceeding"
	ErrClientSelectPlan                    = "please select a subscription plan before proceeding"
	ErrClientUnknownPlan                   = "the selected subscription plan does not exist"
	ErrClientPaymentNotConfirmed           = "please confirm your payment before waiting for approval"
	ErrClientPaymentWatchActive            = "payment approval is already being watched"
	ErrClientFlowOrder                     = "this step is not available yet, please complete %s first"
	ErrClientOpenKycPageFirst              = "please reload the KYC page before submitting"
	ErrClientKycNotAvailable               = "KYC submission is not available at this step"
	ErrClientDocumentInvalid               = "the selected document cannot be used"
	ErrClientUnknownAdminPanel             = "unknown dashboard panel"
	ErrClientDocumentUploadRequired        = "please upload the certificate file"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevValidationFailed       = "validation failed"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevBuildRequest           = "failed to build HTTP request"
	ErrDevBuildMultipart         = "failed to build multipart body"
	ErrDevSendHTTPRequest        = "failed to send HTTP request"
	ErrDevReadHTTPResponse       = "failed to read HTTP response body"
	ErrDevRateLimiterWait        = "outbound rate limiter wait aborted"
	ErrDevHTTPStatus             = "backend responded with status %d"
	ErrDevBackendRejected        = "backend responded with success=false"
	ErrDevMalformedResponse      = "backend response is not valid JSON"
	ErrDevResponseSchema         = "backend response does not match the %s schema"
	ErrDevSessionMissing         = "no session in store"
	ErrDevRoleMismatch           = "session role %s is not %s"
	ErrDevRequestInFlight        = "request already in flight"
	ErrDevRateLimitExceeded      = "rate limit exceeded for %s"
	ErrDevFlowOrder              = "transition %s -> %s is not allowed"
	ErrDevPaymentWatchActive     = "payment watch already active"
	ErrDevKycGateNotVerified     = "KYC gate not verified by backend in this page lifecycle"
	ErrDevKycGateRefused         = "KYC gate refused with backend status %s"
	ErrDevUnknownPlan            = "unknown plan id %s"
	ErrDevDocumentOpen           = "failed to open document %s"
	ErrDevDocumentRejected       = "document %s rejected"
	ErrDevStoreRead              = "failed to read key %s from store"
	ErrDevStoreWrite             = "failed to write key %s to store"
	ErrDevStoreDelete            = "failed to delete keys from store"
	ErrDevRedisSetData           = "failed to set data to redis"
	ErrDevRedisGetData           = "failed to get data from redis"
	ErrDevRedisDeleteData        = "failed to delete data from redis"
	ErrDevRedisUnlock            = "failed to unlock redis lock"
	ErrDevUnknownAdminPanel      = "unknown admin panel %s"
	ErrDevMissingClientID        = "client id missing from request context"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevCannotParseForm        = "cannot parse multipart form"
	ErrDevSpoolUpload            = "failed to spool uploaded document"
	ErrDevDocumentRefNotAllowed  = "document ref %s is not allowed from the web front"
	ErrDevRabbitMQSubscribe      = "failed to subscribe to %s on rabbitmq"
	ErrDevRabbitMQPublish        = "failed to publish %s to rabbitmq"
)
