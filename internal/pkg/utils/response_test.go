package utils

import (
	"healthme-client/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type errorBody struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Kind       string            `json:"kind"`
	StatusCode int               `json:"status_code"`
	Data       map[string]string `json:"data"`
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Backend rejection reports the status it was sent with", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(zap.NewNop(), rr, exceptions.ErrBackendRejected("Already cancelled"))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		body := decodeErrorBody(t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, http.StatusBadGateway, body.StatusCode)
		assert.Equal(t, "Already cancelled", body.Message)
		assert.Nil(t, body.Data)
	})

	t.Run("Keeps the payload next to the error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponseWithData(zap.NewNop(), rr, exceptions.ErrKycGateRefused("not_submitted"), map[string]string{
			"redirect": "/practitioners/terms&sub",
		})

		assert.Equal(t, http.StatusConflict, rr.Code)
		body := decodeErrorBody(t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, string(exceptions.KindValidation), body.Kind)
		assert.Equal(t, http.StatusConflict, body.StatusCode)
		assert.Equal(t, "/practitioners/terms&sub", body.Data["redirect"])
	})
}
