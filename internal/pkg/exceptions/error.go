package exceptions

import (
	"errors"
	"fmt"
	"healthme-client/internal/pkg/constvars"
	"runtime"
)

// ErrorKind discriminates the failure classes every client operation can yield.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindHTTP              ErrorKind = "http_error"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindUnreachable       ErrorKind = "unreachable"
)

type CustomError struct {
	Kind          ErrorKind  `json:"kind"`
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.DevMessage)
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s: %s (%s:%d %s)", e.Kind, e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func BuildNewCustomError(err error, kind ErrorKind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		Err:           err,
	}
}

// KindOf reports the kind of err, or an empty kind when err is not a CustomError.
func KindOf(err error) ErrorKind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// IsUnauthorized reports whether the backend rejected the auth token.
func IsUnauthorized(err error) bool {
	var customErr *CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	return customErr.Kind == KindHTTP && customErr.StatusCode == constvars.StatusUnauthorized
}

// ClientMessageOf returns the message meant for the user.
func ClientMessageOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
