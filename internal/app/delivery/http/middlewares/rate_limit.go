package middlewares

import (
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// CreateRateLimiter limits every route per IP.
func (m *Middlewares) CreateRateLimiter() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// AuthAttemptLimit throttles login and signup attempts per client. When the
// counter store is down the attempt is let through.
func (m *Middlewares) AuthAttemptLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.AuthLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		clientID := utils.GetClientID(ctx)
		decision, err := m.AuthLimiter.Allow(ctx, clientID)
		if err != nil {
			m.Log.Warn("AuthAttemptLimit limiter unavailable",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingClientIDKey, clientID),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		if !decision.Allowed {
			w.Header().Set("Retry-After", strconv.Itoa(decision.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyAttempts("auth", decision.RetryAfterSecs))
			return
		}
		next.ServeHTTP(w, r)
	})
}
