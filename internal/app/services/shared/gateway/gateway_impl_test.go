package gateway

import (
	"context"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedDiagnostics struct {
	mu      sync.Mutex
	entries []models.GatewayDiagnostic
}

func (r *recordedDiagnostics) Record(ctx context.Context, diagnostic *models.GatewayDiagnostic) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *diagnostic)
	return nil
}

func (r *recordedDiagnostics) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		kinds = append(kinds, entry.Kind)
	}
	return kinds
}

func newTestGateway(t *testing.T, router http.Handler) (contracts.Gateway, *recordedDiagnostics) {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	recorder := new(recordedDiagnostics)
	return NewGateway(server.URL, 5*time.Second, zap.NewNop(), WithDiagnostics(recorder), WithRateLimit(100, 10)), recorder
}

func TestGateway_Request(t *testing.T) {
	ctx := context.Background()

	router := chi.NewRouter()
	router.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"contentType":   r.Header.Get("Content-Type"),
			"authorization": r.Header.Get("Authorization"),
			"requestId":     r.Header.Get("X-Request-ID"),
			"body":          string(body),
		})
	})
	router.Get("/api/echo-headers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"contentType":   r.Header.Get("Content-Type"),
			"authorization": r.Header.Get("Authorization"),
		})
	})
	router.Get("/api/html", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<!DOCTYPE html><html><body>Cannot GET /api/html</body></html>"))
	})
	router.Delete("/api/no-content", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Get("/api/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/api/not-found", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Appointment not found"}`))
	})
	router.Get("/api/crash", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>Internal Server Error</html>"))
	})
	router.Get("/api/unauthorized", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":""}`))
	})

	gw, recorder := newTestGateway(t, router)

	t.Run("attaches json and bearer headers", func(t *testing.T) {
		raw, err := gw.Request(ctx, constvars.MethodPost, "/api/auth/login", map[string]string{"email": "a@b.com"}, "t1")
		require.NoError(t, err)

		var echoed map[string]string
		require.NoError(t, json.Unmarshal(raw, &echoed))
		assert.Equal(t, "application/json", echoed["contentType"])
		assert.Equal(t, "Bearer t1", echoed["authorization"])
		assert.True(t, strings.HasPrefix(echoed["requestId"], constvars.REQUEST_ID_PREFIX))
		assert.JSONEq(t, `{"email":"a@b.com"}`, echoed["body"])
	})

	t.Run("no body and no token means no such headers", func(t *testing.T) {
		raw, err := gw.Request(ctx, constvars.MethodGet, "/api/echo-headers", nil, "")
		require.NoError(t, err)

		var echoed map[string]string
		require.NoError(t, json.Unmarshal(raw, &echoed))
		assert.Empty(t, echoed["contentType"])
		assert.Empty(t, echoed["authorization"])
	})

	t.Run("html with status 200 is a malformed response", func(t *testing.T) {
		raw, err := gw.Request(ctx, constvars.MethodGet, "/api/html", nil, "")
		assert.Nil(t, raw)
		assert.Equal(t, exceptions.KindMalformedResponse, exceptions.KindOf(err))
		assert.Equal(t, "server error, please try again", exceptions.ClientMessageOf(err))
		assert.Contains(t, recorder.kinds(), string(exceptions.KindMalformedResponse))
	})

	t.Run("no content becomes an empty object", func(t *testing.T) {
		raw, err := gw.Request(ctx, constvars.MethodDelete, "/api/no-content", nil, "t1")
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(raw))

		raw, err = gw.Request(ctx, constvars.MethodGet, "/api/empty", nil, "t1")
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(raw))
	})

	t.Run("non-2xx carries the backend message", func(t *testing.T) {
		_, err := gw.Request(ctx, constvars.MethodGet, "/api/not-found", nil, "t1")
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, exceptions.KindHTTP, customErr.Kind)
		assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "Appointment not found", customErr.ClientMessage)
	})

	t.Run("non-2xx without a message gets a generic one", func(t *testing.T) {
		_, err := gw.Request(ctx, constvars.MethodGet, "/api/crash", nil, "")
		assert.Equal(t, exceptions.KindHTTP, exceptions.KindOf(err))
		assert.Equal(t, "request failed with status 500", exceptions.ClientMessageOf(err))

		_, err = gw.Request(ctx, constvars.MethodGet, "/api/unauthorized", nil, "stale")
		assert.True(t, exceptions.IsUnauthorized(err))
		assert.Equal(t, "request failed with status 401", exceptions.ClientMessageOf(err))
	})
}

func TestGateway_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseUrl := server.URL
	server.Close()

	recorder := new(recordedDiagnostics)
	gw := NewGateway(baseUrl, time.Second, zap.NewNop(), WithDiagnostics(recorder))

	_, err := gw.Request(context.Background(), constvars.MethodGet, "/api/kyc/me", nil, "t1")
	assert.Equal(t, exceptions.KindUnreachable, exceptions.KindOf(err))
	assert.Equal(t, "cannot connect to server, please check your connection", exceptions.ClientMessageOf(err))
	assert.Equal(t, []string{string(exceptions.KindUnreachable)}, recorder.kinds())
}

func TestGateway_CancelledContext(t *testing.T) {
	release := make(chan struct{})
	router := chi.NewRouter()
	router.Get("/api/kyc/me", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	gw, _ := newTestGateway(t, router)
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	_, err := gw.Request(ctx, constvars.MethodGet, "/api/kyc/me", nil, "t1")
	assert.Equal(t, exceptions.KindUnreachable, exceptions.KindOf(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGateway_Upload(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/kyc/upload", func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseMultipartForm(1 << 20)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("certificate")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)

		json.NewEncoder(w).Encode(map[string]string{
			"licenseNumber": r.FormValue("licenseNumber"),
			"fileName":      header.Filename,
			"fileType":      header.Header.Get("Content-Type"),
			"content":       string(content),
			"authorization": r.Header.Get("Authorization"),
		})
	})
	gw, _ := newTestGateway(t, router)

	raw, err := gw.Upload(context.Background(), "/api/kyc/upload", map[string]string{"licenseNumber": "LIC-1"}, &contracts.UploadFile{
		FieldName:   "certificate",
		FileName:    "cert.pdf",
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF-1.4"),
	}, "t1")
	require.NoError(t, err)

	var echoed map[string]string
	require.NoError(t, json.Unmarshal(raw, &echoed))
	assert.Equal(t, "LIC-1", echoed["licenseNumber"])
	assert.Equal(t, "cert.pdf", echoed["fileName"])
	assert.Equal(t, "application/pdf", echoed["fileType"])
	assert.Equal(t, "%PDF-1.4", echoed["content"])
	assert.Equal(t, "Bearer t1", echoed["authorization"])
}
