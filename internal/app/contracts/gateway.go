package contracts

import (
	"context"
	"healthme-client/internal/app/models"
	"io"

	"github.com/goccy/go-json"
)

type Gateway interface {
	Request(ctx context.Context, method, path string, body interface{}, authToken string) (json.RawMessage, error)
	Upload(ctx context.Context, path string, fields map[string]string, file *UploadFile, authToken string) (json.RawMessage, error)
}

type UploadFile struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     io.Reader
}

type DiagnosticsRecorder interface {
	Record(ctx context.Context, diagnostic *models.GatewayDiagnostic) error
}
