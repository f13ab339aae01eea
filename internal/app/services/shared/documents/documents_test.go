package documents

import (
	"context"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/pkg/exceptions"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	opened []string
}

func (s *stubSource) Open(ctx context.Context, ref string) (*contracts.Document, error) {
	s.opened = append(s.opened, ref)
	return &contracts.Document{Name: ref}, nil
}

func TestFileSource_Open(t *testing.T) {
	dir := t.TempDir()
	certificate := filepath.Join(dir, "license.pdf")
	require.NoError(t, os.WriteFile(certificate, []byte("%PDF-1.4 test"), 0o600))
	empty := filepath.Join(dir, "empty.png")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	source := NewFileSource(1<<20, zap.NewNop())

	t.Run("Regular file", func(t *testing.T) {
		document, err := source.Open(context.Background(), certificate)
		require.NoError(t, err)
		defer document.Content.Close()

		assert.Equal(t, "license.pdf", document.Name)
		assert.Equal(t, "application/pdf", document.ContentType)
		assert.Equal(t, int64(13), document.Size)

		content, err := io.ReadAll(document.Content)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 test", string(content))
	})

	t.Run("Content type from content when the extension is unknown", func(t *testing.T) {
		testCases := map[string]struct {
			content  []byte
			expected string
		}{
			"pdf":     {content: []byte("%PDF-1.4 scanned licence"), expected: "application/pdf"},
			"png":     {content: []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), expected: "image/png"},
			"unknown": {content: []byte{0x00, 0x01, 0x02, 0x03}, expected: "application/octet-stream"},
		}

		for name, tc := range testCases {
			t.Run(name, func(t *testing.T) {
				ref := filepath.Join(dir, "scan-"+name)
				require.NoError(t, os.WriteFile(ref, tc.content, 0o600))

				document, err := source.Open(context.Background(), ref)
				require.NoError(t, err)
				defer document.Content.Close()

				assert.Equal(t, tc.expected, document.ContentType)
				content, err := io.ReadAll(document.Content)
				require.NoError(t, err)
				assert.Equal(t, tc.content, content)
			})
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := source.Open(context.Background(), filepath.Join(dir, "missing.pdf"))
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := source.Open(context.Background(), dir)
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
	})

	t.Run("Empty file", func(t *testing.T) {
		_, err := source.Open(context.Background(), empty)
		require.Error(t, err)
		assert.Equal(t, "document is empty", exceptions.ClientMessageOf(err))
	})

	t.Run("Too large", func(t *testing.T) {
		_, err := NewFileSource(4, zap.NewNop()).Open(context.Background(), certificate)
		require.Error(t, err)
		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
	})
}

func TestDocumentSource_Dispatch(t *testing.T) {
	files := new(stubSource)
	objects := new(stubSource)
	source := NewDocumentSource(files, objects)

	_, err := source.Open(context.Background(), "s3://kyc/u1/license.pdf")
	require.NoError(t, err)
	_, err = source.Open(context.Background(), " /tmp/license.pdf ")
	require.NoError(t, err)

	assert.Equal(t, []string{"s3://kyc/u1/license.pdf"}, objects.opened)
	assert.Equal(t, []string{"/tmp/license.pdf"}, files.opened)

	_, err = source.Open(context.Background(), "")
	require.Error(t, err)
	assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
}

func TestDocumentSource_ObjectStorageDisabled(t *testing.T) {
	source := NewDocumentSource(new(stubSource), nil)

	_, err := source.Open(context.Background(), "s3://kyc/license.pdf")
	require.Error(t, err)
	assert.Equal(t, "object storage is not configured", exceptions.ClientMessageOf(err))
}

func TestParseObjectRef(t *testing.T) {
	bucket, object, err := parseObjectRef("s3://kyc/users/u1/license.pdf")
	require.NoError(t, err)
	assert.Equal(t, "kyc", bucket)
	assert.Equal(t, "users/u1/license.pdf", object)

	for _, ref := range []string{"s3://", "s3://kyc", "s3://kyc/", "s3:///key"} {
		_, _, err := parseObjectRef(ref)
		assert.Error(t, err, ref)
	}
}
