package ratelimiter

import (
	"context"
	"errors"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	args := m.Called(ctx, key, exp)
	return args.Error(0)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *mockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func newTestLimiter(repo *mockRedisRepository, maxQuota int) *AttemptLimiter {
	limiter := NewAttemptLimiter(repo, "auth", time.Minute, maxQuota, zap.NewNop())
	limiter.now = func() time.Time { return time.Unix(1_700_000_010, 0).UTC() }
	return limiter
}

func TestAttemptLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	// 1_700_000_010 / 60 = 28333333, window ends at 1_700_000_040.
	key := "AUTH:client-1:28333333"

	t.Run("within quota", func(t *testing.T) {
		repo := new(mockRedisRepository)
		limiter := newTestLimiter(repo, 3)
		repo.On("IncrementWithTTL", ctx, key, 61*time.Second).Return(3, nil).Once()

		decision, err := limiter.Allow(ctx, " Client-1 ")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		assert.Equal(t, 3, decision.Count)
		repo.AssertExpectations(t)
	})

	t.Run("over quota reports retry after window", func(t *testing.T) {
		repo := new(mockRedisRepository)
		limiter := newTestLimiter(repo, 3)
		repo.On("IncrementWithTTL", ctx, key, 61*time.Second).Return(4, nil).Once()

		decision, err := limiter.Allow(ctx, "client-1")
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, 31, decision.RetryAfterSecs)
	})

	t.Run("disabled limit never touches redis", func(t *testing.T) {
		repo := new(mockRedisRepository)
		limiter := newTestLimiter(repo, 0)

		decision, err := limiter.Allow(ctx, "client-1")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
		repo.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty resource is refused", func(t *testing.T) {
		repo := new(mockRedisRepository)
		limiter := newTestLimiter(repo, 3)

		decision, err := limiter.Allow(ctx, "  ")
		require.NoError(t, err)
		assert.False(t, decision.Allowed)
		assert.Equal(t, 60, decision.RetryAfterSecs)
	})

	t.Run("redis failure is returned", func(t *testing.T) {
		repo := new(mockRedisRepository)
		limiter := newTestLimiter(repo, 3)
		repo.On("IncrementWithTTL", ctx, key, 61*time.Second).Return(0, exceptions.ErrRedisSet(errors.New("down"))).Once()

		_, err := limiter.Allow(ctx, "client-1")
		assert.Error(t, err)
	})
}

func TestAttemptLimiter_Check(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRedisRepository)
	limiter := newTestLimiter(repo, 1)
	repo.On("IncrementWithTTL", ctx, mock.Anything, mock.Anything).Return(1, nil).Once()
	repo.On("IncrementWithTTL", ctx, mock.Anything, mock.Anything).Return(2, nil).Once()

	require.NoError(t, limiter.Check(ctx, "client-1"))

	err := limiter.Check(ctx, "client-1")
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
	assert.Equal(t, "too many attempts, please retry in 31 seconds", customErr.ClientMessage)
}
