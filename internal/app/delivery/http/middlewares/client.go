package middlewares

import (
	"context"
	"healthme-client/internal/app/services/core/workspace"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientWorkspace identifies the browser by its client cookie, issuing a new
// one when absent or invalid, and attaches that client's workspace to the
// request. The workspace is torn down when the request ends.
func (m *Middlewares) ClientWorkspace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg := m.InternalConfig.Web

		clientID := ""
		cookie, err := r.Cookie(cfg.ClientCookieName)
		if err == nil {
			parsed, err := uuid.Parse(cookie.Value)
			if err == nil {
				clientID = parsed.String()
			}
		}

		if clientID == "" {
			clientID = utils.GenerateClientID()
			m.Log.Debug("ClientWorkspace issued client cookie",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingClientIDKey, clientID),
			)
		}

		// Refreshed on every request so active browsers keep their store.
		http.SetCookie(w, &http.Cookie{
			Name:     cfg.ClientCookieName,
			Value:    clientID,
			Path:     "/",
			MaxAge:   cfg.ClientCookieMaxAgeInDays * 24 * 60 * 60,
			HttpOnly: true,
			Secure:   cfg.ClientCookieSecure,
			SameSite: http.SameSiteLaxMode,
		})

		ws := m.Workspaces.For(clientID)
		defer ws.Close()

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_CLIENT_ID_KEY, clientID)
		ctx = workspace.WithContext(ctx, ws)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// submissionGuard tracks the clients with a submission in progress. The zero
// value is ready to use.
type submissionGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func (g *submissionGuard) begin(clientID string) (done func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active == nil {
		g.active = make(map[string]struct{})
	}
	if _, busy := g.active[clientID]; busy {
		return nil, false
	}
	g.active[clientID] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.active, clientID)
		g.mu.Unlock()
	}, true
}

// SingleSubmit rejects a submission while the same client still has one in
// progress. Usecase in-flight flags only span one request's workspace.
func (m *Middlewares) SingleSubmit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := utils.GetClientID(r.Context())
		if clientID == "" {
			next.ServeHTTP(w, r)
			return
		}

		done, ok := m.submissions.begin(clientID)
		if !ok {
			m.Log.Info("SingleSubmit rejected concurrent submission",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingClientIDKey, clientID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestInFlight())
			return
		}
		defer done()

		next.ServeHTTP(w, r)
	})
}
