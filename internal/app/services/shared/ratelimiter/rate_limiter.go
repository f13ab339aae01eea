package ratelimiter

import (
	"context"
	"fmt"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultWindowDuration = time.Minute

// AttemptLimiter counts attempts per client in fixed windows stored in Redis.
// The window key expires one second after the window closes.
type AttemptLimiter struct {
	redis    contracts.RedisRepository
	group    string
	window   time.Duration
	maxQuota int
	now      func() time.Time
	Log      *zap.Logger
}

// NewAttemptLimiter builds a limiter allowing maxQuota attempts per window.
// A non-positive maxQuota disables the limit.
func NewAttemptLimiter(redis contracts.RedisRepository, group string, window time.Duration, maxQuota int, logger *zap.Logger) *AttemptLimiter {
	if window < time.Second {
		window = defaultWindowDuration
	}
	return &AttemptLimiter{
		redis:    redis,
		group:    strings.ToUpper(strings.TrimSpace(group)),
		window:   window,
		maxQuota: maxQuota,
		now:      func() time.Time { return time.Now().UTC() },
		Log:      logger,
	}
}

type Decision struct {
	Allowed        bool
	Count          int
	RetryAfterSecs int
}

// Allow records one attempt for resource and reports whether it fits the quota.
func (l *AttemptLimiter) Allow(ctx context.Context, resource string) (*Decision, error) {
	if l.maxQuota <= 0 {
		return &Decision{Allowed: true}, nil
	}

	windowSec := int64(l.window / time.Second)
	resource = strings.ToLower(strings.TrimSpace(resource))
	if resource == "" {
		return &Decision{Allowed: false, RetryAfterSecs: int(windowSec)}, nil
	}

	now := l.now()
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf("%s:%s:%d", l.group, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, l.window+time.Second)
	if err != nil {
		l.Log.Error("AttemptLimiter.Allow increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, err
	}

	if count > l.maxQuota {
		nextWindowStart := (windowID + 1) * windowSec
		return &Decision{
			Allowed:        false,
			Count:          count,
			RetryAfterSecs: int(nextWindowStart-now.Unix()) + 1,
		}, nil
	}
	return &Decision{Allowed: true, Count: count}, nil
}

// Check is Allow folded into an error for callers that only need a gate.
func (l *AttemptLimiter) Check(ctx context.Context, resource string) error {
	decision, err := l.Allow(ctx, resource)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return exceptions.ErrTooManyAttempts(l.group, decision.RetryAfterSecs)
	}
	return nil
}
