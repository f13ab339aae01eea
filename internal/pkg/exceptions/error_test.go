package exceptions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	t.Run("custom error keeps its kind through wrapping", func(t *testing.T) {
		err := fmt.Errorf("loading dashboard: %w", ErrMalformedResponse(errors.New("invalid character '<'")))
		assert.Equal(t, KindMalformedResponse, KindOf(err))
		assert.True(t, IsKind(err, KindMalformedResponse))
	})

	t.Run("plain error has no kind", func(t *testing.T) {
		assert.Equal(t, ErrorKind(""), KindOf(errors.New("boom")))
		assert.False(t, IsKind(nil, KindValidation))
	})
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(ErrHTTPStatus(401, "jwt expired")))
	assert.False(t, IsUnauthorized(ErrHTTPStatus(403, "forbidden")))
	assert.False(t, IsUnauthorized(ErrNotLoggedIn()))
}

func TestClientMessages(t *testing.T) {
	assert.Equal(t, "server error, please try again", ClientMessageOf(ErrMalformedResponse(nil)))
	assert.Equal(t, "cannot connect to server, please check your connection", ClientMessageOf(ErrSendHTTPRequest(errors.New("dial tcp: connection refused"))))
	assert.Equal(t, "Already cancelled", ClientMessageOf(ErrBackendRejected("Already cancelled")))
	assert.Equal(t, "failed to process your request", ClientMessageOf(ErrBackendRejected("")))
}

func TestBuildNewCustomErrorRecordsCaller(t *testing.T) {
	err := ErrNotLoggedIn()
	if assert.Len(t, err.Locations, 1) {
		assert.Contains(t, err.Locations[0].FunctionName, "TestBuildNewCustomErrorRecordsCaller")
	}
	assert.ErrorIs(t, ErrSendHTTPRequest(errCanceled), errCanceled)
}

var errCanceled = errors.New("canceled")
