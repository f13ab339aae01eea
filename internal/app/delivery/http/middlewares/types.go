package middlewares

import (
	"healthme-client/internal/app/config"
	"healthme-client/internal/app/services/core/workspace"
	"healthme-client/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	Workspaces     *workspace.Builder
	AuthLimiter    *ratelimiter.AttemptLimiter
	InternalConfig *config.InternalConfig

	submissions submissionGuard
}

// NewMiddlewares wires the web front middlewares. authLimiter may be nil to
// leave auth attempts unthrottled.
func NewMiddlewares(
	logger *zap.Logger,
	workspaces *workspace.Builder,
	authLimiter *ratelimiter.AttemptLimiter,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:            logger,
		Workspaces:     workspaces,
		AuthLimiter:    authLimiter,
		InternalConfig: internalConfig,
	}
}
