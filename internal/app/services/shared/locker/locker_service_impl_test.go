package locker

import (
	"context"
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

func TestLockService(t *testing.T) {
	ctx := context.Background()
	key := "healthme:onboarding:watch:u1"

	t.Run("acquire then release own lock", func(t *testing.T) {
		repo := new(mockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("TrySetNX", ctx, key, mock.AnythingOfType("string"), time.Minute).Return(true, nil).Once()
		acquired, lockValue, err := service.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)

		repo.On("Get", ctx, key).Return("\""+lockValue+"\"", nil).Once()
		repo.On("Delete", ctx, []string{key}).Return(nil).Once()
		assert.NoError(t, service.Unlock(ctx, key, lockValue))
		repo.AssertExpectations(t)
	})

	t.Run("lock held elsewhere", func(t *testing.T) {
		repo := new(mockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("TrySetNX", ctx, key, mock.AnythingOfType("string"), time.Minute).Return(false, nil).Once()
		acquired, lockValue, err := service.TryLock(ctx, key, time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, lockValue)
	})

	t.Run("unlock refuses a lock owned by someone else", func(t *testing.T) {
		repo := new(mockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("Get", ctx, key).Return("\"other-owner\"", nil).Once()
		err := service.Unlock(ctx, key, "mine")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unlock of an expired lock is a no-op", func(t *testing.T) {
		repo := new(mockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("Get", ctx, key).Return("", nil).Once()
		assert.NoError(t, service.Unlock(ctx, key, "mine"))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("refresh extends an owned lock", func(t *testing.T) {
		repo := new(mockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("Get", ctx, key).Return("\"mine\"", nil).Once()
		repo.On("Expire", ctx, key, 2*time.Minute).Return(nil).Once()
		assert.NoError(t, service.Refresh(ctx, key, "mine", 2*time.Minute))
		repo.AssertExpectations(t)
	})

	t.Run("refresh of an expired lock fails", func(t *testing.T) {
		repo := new(mockRedisRepository)
		service := NewLockService(repo, zap.NewNop())

		repo.On("Get", ctx, key).Return("", nil).Once()
		assert.Error(t, service.Refresh(ctx, key, "mine", time.Minute))
	})
}
