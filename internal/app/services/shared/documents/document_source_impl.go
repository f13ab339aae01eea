package documents

import (
	"context"
	"fmt"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"strings"
)

type documentSource struct {
	files   contracts.DocumentSource
	objects contracts.DocumentSource
}

// NewDocumentSource dispatches s3:// references to objects and everything
// else to files. objects may be nil when object storage is not configured.
func NewDocumentSource(files, objects contracts.DocumentSource) contracts.DocumentSource {
	return &documentSource{
		files:   files,
		objects: objects,
	}
}

func (d *documentSource) Open(ctx context.Context, ref string) (*contracts.Document, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, exceptions.ErrDocumentRejected(fmt.Errorf("document is required"), ref)
	}

	if strings.HasPrefix(ref, constvars.DocumentRefMinioScheme) {
		if d.objects == nil {
			return nil, exceptions.ErrDocumentRejected(fmt.Errorf("object storage is not configured"), ref)
		}
		return d.objects.Open(ctx, ref)
	}
	return d.files.Open(ctx, ref)
}
