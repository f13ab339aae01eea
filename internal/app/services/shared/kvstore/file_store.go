package kvstore

import (
	"context"
	"errors"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type fileStore struct {
	path string
	mu   sync.Mutex
	Log  *zap.Logger
}

// NewFileStore keeps every key in one JSON object on disk. The file is re-read
// on each call so separate processes see each other's writes; the last writer
// wins.
func NewFileStore(path string, logger *zap.Logger) contracts.KeyValueStore {
	return &fileStore{
		path: path,
		Log:  logger,
	}
}

func (s *fileStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", false, exceptions.ErrStoreRead(err, key)
	}
	value, ok := values[key]
	return value, ok, nil
}

func (s *fileStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return exceptions.ErrStoreWrite(err, key)
	}
	values[key] = value

	err = s.write(values)
	if err != nil {
		return exceptions.ErrStoreWrite(err, key)
	}
	return nil
}

func (s *fileStore) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return exceptions.ErrStoreDelete(err)
	}

	changed := false
	for _, key := range keys {
		if _, ok := values[key]; ok {
			delete(values, key)
			changed = true
		}
	}
	if !changed {
		return nil
	}

	err = s.write(values)
	if err != nil {
		return exceptions.ErrStoreDelete(err)
	}
	return nil
}

// read treats a missing file as empty and a corrupt file as empty as well, so
// one bad write never locks the user out.
func (s *fileStore) read() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return values, nil
	}

	err = json.Unmarshal(data, &values)
	if err != nil {
		s.Log.Warn("fileStore.read corrupt store file, starting empty",
			zap.String(constvars.LoggingStoreKey, s.path),
			zap.Error(err),
		)
		return make(map[string]string), nil
	}
	return values, nil
}

func (s *fileStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	err = os.MkdirAll(dir, 0o700)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	err = os.Chmod(tmp.Name(), 0o600)
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
