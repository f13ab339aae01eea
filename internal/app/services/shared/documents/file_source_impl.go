package documents

import (
	"context"
	"errors"
	"fmt"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type fileSource struct {
	MaxBytes int64
	Log      *zap.Logger
}

// NewFileSource opens documents from the local filesystem. A non-positive
// maxBytes disables the size check.
func NewFileSource(maxBytes int64, logger *zap.Logger) contracts.DocumentSource {
	return &fileSource{
		MaxBytes: maxBytes,
		Log:      logger,
	}
}

func (s *fileSource) Open(ctx context.Context, ref string) (*contracts.Document, error) {
	s.Log.Debug("fileSource.Open called",
		zap.String(constvars.LoggingDocumentRefKey, ref),
	)

	info, err := os.Stat(ref)
	if err != nil {
		return nil, exceptions.ErrDocumentOpen(err, ref)
	}
	if !info.Mode().IsRegular() {
		return nil, exceptions.ErrDocumentRejected(fmt.Errorf("%s is not a regular file", filepath.Base(ref)), ref)
	}
	err = checkSize(info.Size(), s.MaxBytes)
	if err != nil {
		return nil, exceptions.ErrDocumentRejected(err, ref)
	}

	file, err := os.Open(ref)
	if err != nil {
		return nil, exceptions.ErrDocumentOpen(err, ref)
	}

	contentType := contentTypeFor(ref)
	if contentType == constvars.MIMEOctetStream {
		contentType, err = sniffContentType(file)
		if err != nil {
			file.Close()
			return nil, exceptions.ErrDocumentOpen(err, ref)
		}
	}

	return &contracts.Document{
		Name:        filepath.Base(ref),
		ContentType: contentType,
		Size:        info.Size(),
		Content:     file,
	}, nil
}

func contentTypeFor(name string) string {
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		return constvars.MIMEOctetStream
	}
	return contentType
}

// sniffableTypes are the certificate formats recognised from content alone.
var sniffableTypes = map[string]bool{
	constvars.MIMEApplicationPDF: true,
	constvars.MIMEImageJPEG:      true,
	constvars.MIMEImagePNG:       true,
	constvars.MIMETextPlain:      true,
}

// sniffContentType looks at the first 512 bytes of a file without a known
// extension and rewinds it afterwards.
func sniffContentType(file *os.File) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return "", err
	}

	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(head[:n]))
	if err != nil || !sniffableTypes[mediaType] {
		return constvars.MIMEOctetStream, nil
	}
	return mediaType, nil
}

func checkSize(size, maxBytes int64) error {
	if maxBytes > 0 && size > maxBytes {
		return fmt.Errorf("document must not exceed %d MB", maxBytes/(1<<20))
	}
	if size == 0 {
		return fmt.Errorf("document is empty")
	}
	return nil
}
