package diagnostics

import (
	"context"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"

	"go.uber.org/zap"
)

type logRecorder struct {
	Log *zap.Logger
}

// NewLogRecorder is used when no MongoDB is configured.
func NewLogRecorder(logger *zap.Logger) contracts.DiagnosticsRecorder {
	return &logRecorder{Log: logger}
}

func (r *logRecorder) Record(ctx context.Context, diagnostic *models.GatewayDiagnostic) error {
	r.Log.Warn("gateway diagnostic",
		zap.String(constvars.LoggingRequestIDKey, diagnostic.RequestID),
		zap.String(constvars.LoggingMethodKey, diagnostic.Method),
		zap.String(constvars.LoggingEndpointKey, diagnostic.Path),
		zap.String(constvars.LoggingErrorKindKey, diagnostic.Kind),
		zap.Int(constvars.LoggingStatusCodeKey, diagnostic.StatusCode),
		zap.String(constvars.LoggingDataKey, diagnostic.BodySnippet),
	)
	return nil
}
