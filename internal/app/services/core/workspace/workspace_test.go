package workspace

import (
	"context"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/services/backend"
	"healthme-client/internal/app/services/shared/gateway"
	"healthme-client/internal/app/services/shared/kvstore"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/dto/requests"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDependencies(t *testing.T) Dependencies {
	t.Helper()
	router := chi.NewRouter()
	router.Post(constvars.BackendAuthLogin, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"user":{"_id":"p1","fullName":"Dr P","role":"practitioner"},"token":"t1"}`))
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	return Dependencies{
		Backend:      backend.NewBackendClient(gateway.NewGateway(server.URL, 5*time.Second, logger), logger),
		PollInterval: 10 * time.Millisecond,
		Logger:       logger,
	}
}

func TestWorkspace_SharesSessionAcrossServices(t *testing.T) {
	ctx := context.Background()
	ws := New(kvstore.NewMemoryStore(), newTestDependencies(t))
	defer ws.Close()

	result, err := ws.Auth.Login(ctx, &requests.Login{Email: "p@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/practitioner", result.Redirect)

	loaded, err := ws.Sessions.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "p1", loaded.UserID)

	snapshot, err := ws.Onboarding.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, constvars.PaymentStatusUnpaid, snapshot.PaymentStatus)
}

func TestBuilder_IsolatesClients(t *testing.T) {
	ctx := context.Background()
	stores := map[string]contracts.KeyValueStore{
		"a": kvstore.NewMemoryStore(),
		"b": kvstore.NewMemoryStore(),
	}
	builder := NewBuilder(func(clientID string) contracts.KeyValueStore {
		return stores[clientID]
	}, newTestDependencies(t))

	first := builder.For("a")
	defer first.Close()
	_, err := first.Auth.Login(ctx, &requests.Login{Email: "p@example.com", Password: "secret"})
	require.NoError(t, err)

	again := builder.For("a")
	defer again.Close()
	assert.Equal(t, "practitioner", again.Sessions.CurrentRole(ctx))

	other := builder.For("b")
	defer other.Close()
	assert.Equal(t, "anonymous", other.Sessions.CurrentRole(ctx))
}

func TestWorkspace_CloseStopsWatch(t *testing.T) {
	ws := New(kvstore.NewMemoryStore(), Dependencies{Logger: zap.NewNop()})
	ws.Close()
	assert.False(t, ws.Onboarding.Snapshot().Watching)
}
