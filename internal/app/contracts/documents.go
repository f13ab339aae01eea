package contracts

import (
	"context"
	"io"
)

type Document struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}

// DocumentSource resolves a document reference (a local path or an
// s3://bucket/key object) into readable content.
type DocumentSource interface {
	Open(ctx context.Context, ref string) (*Document, error)
}
