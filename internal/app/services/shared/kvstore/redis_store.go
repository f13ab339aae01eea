package kvstore

import (
	"context"
	"fmt"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/pkg/constvars"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type redisStore struct {
	redisRepo contracts.RedisRepository
	namespace string
	expiry    time.Duration
	Log       *zap.Logger
}

// NewRedisStore scopes every key under the namespace of one browser client.
// Each write renews the expiry of the written key.
func NewRedisStore(repo contracts.RedisRepository, clientID string, expiry time.Duration, logger *zap.Logger) contracts.KeyValueStore {
	return &redisStore{
		redisRepo: repo,
		namespace: fmt.Sprintf(constvars.RedisClientNamespaceFormat, clientID),
		expiry:    expiry,
		Log:       logger,
	}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	raw, err := s.redisRepo.Get(ctx, s.namespace+key)
	if err != nil {
		return "", false, err
	}
	if raw == "" {
		return "", false, nil
	}

	var value string
	err = json.Unmarshal([]byte(raw), &value)
	if err != nil {
		s.Log.Warn("redisStore.Get value was not written by this store",
			zap.String(constvars.LoggingRedisKey, s.namespace+key),
			zap.Error(err),
		)
		return raw, true, nil
	}
	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	return s.redisRepo.Set(ctx, s.namespace+key, value, s.expiry)
}

func (s *redisStore) Delete(ctx context.Context, keys ...string) error {
	namespaced := make([]string, 0, len(keys))
	for _, key := range keys {
		namespaced = append(namespaced, s.namespace+key)
	}
	return s.redisRepo.Delete(ctx, namespaced...)
}
