package exceptions

import (
	"fmt"
	"healthme-client/internal/pkg/constvars"
)

var (
	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrClientCustomMessage = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, err.Error(), constvars.ErrDevInvalidInput)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrBuildRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevBuildRequest)
	}
	ErrBuildMultipart = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevBuildMultipart)
	}
	ErrRequestInFlight = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusConflict, constvars.ErrClientRequestInFlight, constvars.ErrDevRequestInFlight)
	}

	// Session
	ErrNotLoggedIn = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionMissing)
	}
	ErrRoleMismatch = func(actual, expected string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevRoleMismatch, actual, expected))
	}
	ErrPractitionerOnly = func(actual string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusForbidden, constvars.ErrClientPractitionerOnly, fmt.Sprintf(constvars.ErrDevRoleMismatch, actual, "practitioner"))
	}

	// Onboarding
	ErrFlowOrder = func(from, to, missingStep string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusConflict, fmt.Sprintf(constvars.ErrClientFlowOrder, missingStep), fmt.Sprintf(constvars.ErrDevFlowOrder, from, to))
	}
	ErrAgreeToTerms = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusBadRequest, constvars.ErrClientAgreeToTerms, constvars.ErrDevInvalidInput)
	}
	ErrSelectPlan = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusBadRequest, constvars.ErrClientSelectPlan, constvars.ErrDevInvalidInput)
	}
	ErrUnknownPlan = func(planID string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusBadRequest, constvars.ErrClientUnknownPlan, fmt.Sprintf(constvars.ErrDevUnknownPlan, planID))
	}
	ErrPaymentNotConfirmed = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusConflict, constvars.ErrClientPaymentNotConfirmed, fmt.Sprintf(constvars.ErrDevFlowOrder, "unpaid", "watch"))
	}
	ErrPaymentWatchActive = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusConflict, constvars.ErrClientPaymentWatchActive, constvars.ErrDevPaymentWatchActive)
	}
	ErrKycGateNotVerified = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusConflict, constvars.ErrClientOpenKycPageFirst, constvars.ErrDevKycGateNotVerified)
	}
	ErrKycGateRefused = func(status string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusConflict, constvars.ErrClientKycNotAvailable, fmt.Sprintf(constvars.ErrDevKycGateRefused, status))
	}
	ErrDocumentOpen = func(err error, ref string) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientDocumentInvalid, fmt.Sprintf(constvars.ErrDevDocumentOpen, ref))
	}
	ErrDocumentRejected = func(err error, ref string) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, err.Error(), fmt.Sprintf(constvars.ErrDevDocumentRejected, ref))
	}
	ErrUnknownAdminPanel = func(panel string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusNotFound, constvars.ErrClientUnknownAdminPanel, fmt.Sprintf(constvars.ErrDevUnknownAdminPanel, panel))
	}

	// Gateway
	ErrHTTPStatus = func(statusCode int, clientMessage string) *CustomError {
		return BuildNewCustomError(nil, KindHTTP, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevHTTPStatus, statusCode))
	}
	ErrBackendRejected = func(clientMessage string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientCannotProcessRequest
		}
		return BuildNewCustomError(nil, KindHTTP, constvars.StatusOK, clientMessage, constvars.ErrDevBackendRejected)
	}
	ErrMalformedResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, KindMalformedResponse, constvars.StatusBadGateway, constvars.ErrClientServerError, constvars.ErrDevMalformedResponse)
	}
	ErrResponseSchema = func(err error, schema string) *CustomError {
		return BuildNewCustomError(err, KindMalformedResponse, constvars.StatusBadGateway, constvars.ErrClientServerError, fmt.Sprintf(constvars.ErrDevResponseSchema, schema))
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusServiceUnavailable, constvars.ErrClientCheckConnection, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadHTTPResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusServiceUnavailable, constvars.ErrClientCheckConnection, constvars.ErrDevReadHTTPResponse)
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusServiceUnavailable, constvars.ErrClientCheckConnection, constvars.ErrDevRateLimiterWait)
	}

	// Store
	ErrStoreRead = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStoreRead, key))
	}
	ErrStoreWrite = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevStoreWrite, key))
	}
	ErrStoreDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStoreDelete)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQSubscribe = func(err error, routingKey string) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQSubscribe, routingKey))
	}
	ErrRabbitMQPublish = func(err error, routingKey string) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, routingKey))
	}

	// Web front
	ErrMissingClientID = func() *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevMissingClientID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnreachable, constvars.StatusGatewayTimeout, constvars.ErrClientCheckConnection, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrCannotParseForm = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseForm)
	}
	ErrSpoolUpload = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSpoolUpload)
	}
	ErrDocumentRefNotAllowed = func(ref string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusBadRequest, constvars.ErrClientDocumentUploadRequired, fmt.Sprintf(constvars.ErrDevDocumentRefNotAllowed, ref))
	}
	ErrTooManyAttempts = func(resource string, retryAfterSecs int) *CustomError {
		return BuildNewCustomError(nil, KindValidation, constvars.StatusTooManyRequests, fmt.Sprintf(constvars.ErrClientTooManyAttempts, retryAfterSecs), fmt.Sprintf(constvars.ErrDevRateLimitExceeded, resource))
	}
)
