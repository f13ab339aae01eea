package middlewares

import (
	"context"
	"errors"
	"healthme-client/internal/app/config"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/services/core/workspace"
	"healthme-client/internal/app/services/shared/kvstore"
	"healthme-client/internal/app/services/shared/ratelimiter"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type counterRepository struct {
	mu     sync.Mutex
	counts map[string]int
	err    error
}

func (c *counterRepository) Delete(ctx context.Context, keys ...string) error { return nil }
func (c *counterRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (c *counterRepository) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (c *counterRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	return nil
}
func (c *counterRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

func (c *counterRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[key]++
	return c.counts[key], nil
}

func newTestMiddlewares(limiter *ratelimiter.AttemptLimiter) (*Middlewares, *[]string) {
	var mu sync.Mutex
	requested := []string{}
	stores := map[string]contracts.KeyValueStore{}

	builder := workspace.NewBuilder(func(clientID string) contracts.KeyValueStore {
		mu.Lock()
		defer mu.Unlock()
		requested = append(requested, clientID)
		if _, ok := stores[clientID]; !ok {
			stores[clientID] = kvstore.NewMemoryStore()
		}
		return stores[clientID]
	}, workspace.Dependencies{Logger: zap.NewNop()})

	internalConfig := &config.InternalConfig{
		App: config.App{RequestBodyLimitInMegabyte: 1},
		Web: config.AppWeb{
			ClientCookieName:         "hm_client",
			ClientCookieMaxAgeInDays: 30,
		},
	}
	return NewMiddlewares(zap.NewNop(), builder, limiter, internalConfig), &requested
}

func TestClientWorkspace(t *testing.T) {
	m, requested := newTestMiddlewares(nil)

	var seenClientID string
	handler := m.ClientWorkspace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := workspace.FromContext(r.Context())
		assert.True(t, ok)
		seenClientID = utils.GetClientID(r.Context())
	}))

	t.Run("Issues a cookie to a new browser", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "hm_client", cookies[0].Name)
		assert.Equal(t, seenClientID, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, 30*24*60*60, cookies[0].MaxAge)
	})

	t.Run("Keeps a valid cookie", func(t *testing.T) {
		clientID := "3f1c2b4a-8d7e-4c1b-9a2f-6e5d4c3b2a10"
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "hm_client", Value: clientID})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, clientID, seenClientID)
		assert.Equal(t, clientID, (*requested)[len(*requested)-1])
	})

	t.Run("Replaces a forged cookie", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "hm_client", Value: "*:evil"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.NotEqual(t, "*:evil", seenClientID)
		assert.Len(t, seenClientID, 36)
	})
}

func TestAuthAttemptLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	request := func() *http.Request {
		req := httptest.NewRequest("POST", "/login", nil)
		return req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_CLIENT_ID_KEY, "client-1"))
	}

	t.Run("Blocks after quota", func(t *testing.T) {
		limiter := ratelimiter.NewAttemptLimiter(&counterRepository{}, "auth", time.Minute, 2, zap.NewNop())
		m, _ := newTestMiddlewares(limiter)
		handler := m.AuthAttemptLimit(ok)

		for i := 0; i < 2; i++ {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, request())
			assert.Equal(t, http.StatusOK, rr.Code)
		}

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, request())
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	})

	t.Run("Lets attempts through when the counter is down", func(t *testing.T) {
		limiter := ratelimiter.NewAttemptLimiter(&counterRepository{err: errors.New("down")}, "auth", time.Minute, 2, zap.NewNop())
		m, _ := newTestMiddlewares(limiter)

		rr := httptest.NewRecorder()
		m.AuthAttemptLimit(ok).ServeHTTP(rr, request())
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Disabled without limiter", func(t *testing.T) {
		m, _ := newTestMiddlewares(nil)

		rr := httptest.NewRecorder()
		m.AuthAttemptLimit(ok).ServeHTTP(rr, request())
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestErrorHandlerAndRequestID(t *testing.T) {
	m, _ := newTestMiddlewares(nil)
	handler := m.RequestIDMiddleware(m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "req-1")
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "req-1", rr.Header().Get(constvars.HeaderXRequestID))
	assert.Contains(t, rr.Body.String(), constvars.ErrClientSomethingWrongWithApplication)
}

func TestTimeout(t *testing.T) {
	m, _ := newTestMiddlewares(nil)

	var deadline time.Time
	var hasDeadline bool
	m.Timeout(5)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, hasDeadline = r.Context().Deadline()
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
}

func TestSingleSubmit(t *testing.T) {
	m, _ := newTestMiddlewares(nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	handler := m.SingleSubmit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow" {
			close(entered)
			<-release
		}
		w.WriteHeader(http.StatusOK)
	}))
	request := func(path, clientID string) *http.Request {
		req := httptest.NewRequest("POST", path, nil)
		return req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_CLIENT_ID_KEY, clientID))
	}

	first := make(chan int)
	go func() {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, request("/slow", "client-1"))
		first <- rr.Code
	}()
	<-entered

	t.Run("Same client is rejected while the first submission runs", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, request("/fast", "client-1"))
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientRequestInFlight)
	})

	t.Run("Other clients are not blocked", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, request("/fast", "client-2"))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	close(release)
	assert.Equal(t, http.StatusOK, <-first)

	t.Run("Same client may submit again once finished", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, request("/fast", "client-1"))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
