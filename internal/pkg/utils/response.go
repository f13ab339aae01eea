package utils

import (
	"errors"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/responses"
	"healthme-client/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

type errorResponse struct {
	exceptions.CustomError
	Data interface{} `json:"data,omitempty"`
}

// BuildErrorResponse writes the error envelope. Gateway failures keep their
// kind so the browser can branch on it; validation errors map to 4xx.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	BuildErrorResponseWithData(log, w, err, nil)
}

// BuildErrorResponseWithData is BuildErrorResponse with a payload the caller
// still needs on failure, such as where to navigate next.
func BuildErrorResponseWithData(log *zap.Logger, w http.ResponseWriter, err error, data interface{}) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = responseStatusFor(customErr)
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.String(constvars.LoggingErrorKindKey, string(customErr.Kind)),
				zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
				zap.Any("location", location),
			)
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	response := errorResponse{
		CustomError: exceptions.CustomError{
			StatusCode:    code,
			Success:       false,
			ClientMessage: clientMessage,
		},
		Data: data,
	}
	if customErr != nil {
		response.Kind = customErr.Kind
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil && appEnvironment != "production" {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}
	json.NewEncoder(w).Encode(response)
}

// A backend rejection that came back as 200 with success=false is still a
// failed request from the browser's point of view.
func responseStatusFor(customErr *exceptions.CustomError) int {
	if customErr.StatusCode < constvars.StatusBadRequest {
		return constvars.StatusBadGateway
	}
	return customErr.StatusCode
}
