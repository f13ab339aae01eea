package documents

import (
	"context"
	"fmt"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioSource struct {
	MinioClient *minio.Client
	MaxBytes    int64
	Log         *zap.Logger
}

// NewMinioSource reads documents referenced as s3://bucket/key.
func NewMinioSource(minioClient *minio.Client, maxBytes int64, logger *zap.Logger) contracts.DocumentSource {
	return &minioSource{
		MinioClient: minioClient,
		MaxBytes:    maxBytes,
		Log:         logger,
	}
}

func (m *minioSource) Open(ctx context.Context, ref string) (*contracts.Document, error) {
	m.Log.Debug("minioSource.Open called",
		zap.String(constvars.LoggingDocumentRefKey, ref),
	)

	bucketName, objectName, err := parseObjectRef(ref)
	if err != nil {
		return nil, exceptions.ErrDocumentRejected(err, ref)
	}

	object, err := m.MinioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrDocumentOpen(err, ref)
	}

	info, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, exceptions.ErrDocumentOpen(err, ref)
	}
	err = checkSize(info.Size, m.MaxBytes)
	if err != nil {
		object.Close()
		return nil, exceptions.ErrDocumentRejected(err, ref)
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = contentTypeFor(objectName)
	}

	return &contracts.Document{
		Name:        path.Base(objectName),
		ContentType: contentType,
		Size:        info.Size,
		Content:     object,
	}, nil
}

func parseObjectRef(ref string) (bucketName, objectName string, err error) {
	trimmed := strings.TrimPrefix(ref, constvars.DocumentRefMinioScheme)
	bucketName, objectName, found := strings.Cut(trimmed, "/")
	if !found || bucketName == "" || objectName == "" {
		return "", "", fmt.Errorf("reference must look like %sbucket/key", constvars.DocumentRefMinioScheme)
	}
	return bucketName, objectName, nil
}
