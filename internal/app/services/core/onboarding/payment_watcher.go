package onboarding

import (
	"context"
	"fmt"
	"healthme-client/internal/app/contracts"
	"healthme-client/internal/app/models"
	"healthme-client/internal/pkg/constvars"
	"healthme-client/internal/pkg/exceptions"
	"healthme-client/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// paymentWatch is one polling loop waiting for the backend to approve a
// payment. It ends on approval, on stop, when its context ends or when the
// backend rejects the session.
type paymentWatch struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

var _ contracts.PaymentWatch = (*paymentWatch)(nil)

func (w *paymentWatch) Done() <-chan struct{} {
	return w.done
}

func (w *paymentWatch) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *paymentWatch) finish(err error) {
	w.mu.Lock()
	w.err = err
	w.mu.Unlock()
	close(w.done)
}

func (w *paymentWatch) stop() {
	w.cancel()
}

func finishedWatch() *paymentWatch {
	w := &paymentWatch{cancel: func() {}, done: make(chan struct{})}
	close(w.done)
	return w
}

// approvedKycStatuses are the statuses the backend only reports once the
// payment has been confirmed.
var approvedKycStatuses = map[string]bool{
	constvars.KycStatusPaymentConfirmed: true,
	constvars.KycStatusSubmitted:        true,
	constvars.KycStatusApproved:         true,
	constvars.KycStatusRejected:         true,
}

func (c *onboardingController) StartPaymentWatch(ctx context.Context) (contracts.PaymentWatch, error) {
	requestID := utils.GetRequestID(ctx)

	session, err := c.requirePractitioner(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.paymentStatus {
	case constvars.PaymentStatusApproved:
		return finishedWatch(), nil
	case constvars.PaymentStatusPending:
	default:
		return nil, exceptions.ErrPaymentNotConfirmed()
	}
	if c.watch != nil {
		return nil, exceptions.ErrPaymentWatchActive()
	}

	lockKey := fmt.Sprintf(constvars.RedisWatchLockKeyFormat, session.UserID)
	lockTTL := 3 * c.pollInterval
	var lockValue string
	if c.locker != nil {
		acquired, value, err := c.locker.TryLock(ctx, lockKey, lockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, exceptions.ErrPaymentWatchActive()
		}
		lockValue = value
	}

	var (
		watchCtx context.Context
		cancel   context.CancelFunc
	)
	if c.maxWatchDuration > 0 {
		watchCtx, cancel = context.WithTimeout(ctx, c.maxWatchDuration)
	} else {
		watchCtx, cancel = context.WithCancel(ctx)
	}

	watch := &paymentWatch{cancel: cancel, done: make(chan struct{})}
	c.watch = watch

	c.Log.Info("onboardingController.StartPaymentWatch started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.Duration(constvars.LoggingIntervalKey, c.pollInterval),
		zap.Uint64(constvars.LoggingGenerationKey, c.generation),
	)

	go c.runWatch(watchCtx, watch, c.generation, session.UserID, lockKey, lockValue, lockTTL)
	return watch, nil
}

// WaitForPaymentApproval blocks until the payment is approved. When ctx ends
// first the watch is cancelled with it.
func (c *onboardingController) WaitForPaymentApproval(ctx context.Context) error {
	c.mu.Lock()
	var watch contracts.PaymentWatch
	if c.watch != nil {
		watch = c.watch
	}
	c.mu.Unlock()

	if watch == nil {
		var err error
		watch, err = c.StartPaymentWatch(ctx)
		if err != nil {
			return err
		}
	}

	select {
	case <-watch.Done():
		return watch.Err()
	case <-ctx.Done():
		c.StopPaymentWatch()
		return ctx.Err()
	}
}

func (c *onboardingController) StopPaymentWatch() {
	c.mu.Lock()
	watch := c.watch
	c.mu.Unlock()

	if watch != nil {
		watch.stop()
	}
}

func (c *onboardingController) runWatch(ctx context.Context, watch *paymentWatch, generation uint64, userID, lockKey, lockValue string, lockTTL time.Duration) {
	requestID := utils.GetRequestID(ctx)
	ticker := time.NewTicker(c.pollInterval)

	var finalErr error
	defer func() {
		ticker.Stop()
		watch.cancel()
		c.releaseWatchLock(ctx, lockKey, lockValue)

		c.mu.Lock()
		if c.watch == watch {
			c.watch = nil
		}
		c.mu.Unlock()

		watch.finish(finalErr)
		c.Log.Info("onboardingController.runWatch stopped",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(finalErr),
		)
	}()

	var pushed <-chan struct{}
	if c.notifier != nil {
		signals, err := c.notifier.Subscribe(ctx, userID)
		if err != nil {
			c.Log.Warn("onboardingController.runWatch push notifications unavailable, polling only",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else {
			pushed = signals
		}
	}

	for {
		select {
		case <-ctx.Done():
			finalErr = ctx.Err()
			return
		case <-ticker.C:
		case _, ok := <-pushed:
			if !ok {
				pushed = nil
				continue
			}
		}

		if c.locker != nil && lockValue != "" {
			err := c.locker.Refresh(ctx, lockKey, lockValue, lockTTL)
			if err != nil {
				c.Log.Warn("onboardingController.runWatch cannot refresh watch lock",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingRedisKey, lockKey),
					zap.Error(err),
				)
			}
		}

		approved, err := c.checkPayment(ctx, generation)
		if err != nil {
			if ctx.Err() != nil {
				finalErr = ctx.Err()
				return
			}
			if exceptions.IsUnauthorized(err) || exceptions.IsKind(err, exceptions.KindValidation) {
				finalErr = err
				return
			}
			c.Log.Warn("onboardingController.runWatch poll failed, retrying on next tick",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
				zap.Error(err),
			)
			continue
		}
		if approved {
			return
		}
	}
}

// checkPayment asks the backend once. The transition to PaymentApproved is
// applied at most once and only if the page lifecycle has not changed.
func (c *onboardingController) checkPayment(ctx context.Context, generation uint64) (bool, error) {
	var status string
	err := c.sessions.WithToken(ctx, func(ctx context.Context, session *models.Session) error {
		var err error
		status, err = c.backend.GetKycStatus(ctx, session.Token)
		return err
	})
	if err != nil {
		return false, err
	}

	c.Log.Debug("onboardingController.checkPayment observed status",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingKycStatusKey, status),
	)
	if !approvedKycStatuses[status] {
		return false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return true, nil
	}
	if c.paymentStatus == constvars.PaymentStatusApproved {
		return true, nil
	}

	err = c.store.Set(ctx, constvars.StoreKeyPaymentStatus, constvars.PaymentStatusApproved)
	if err != nil {
		return false, err
	}
	c.paymentStatus = constvars.PaymentStatusApproved
	c.kycStatus = status
	c.transitionLocked(ctx, models.OnboardingStatePaymentApproved)
	return true, nil
}

func (c *onboardingController) releaseWatchLock(ctx context.Context, lockKey, lockValue string) {
	if c.locker == nil || lockValue == "" {
		return
	}

	unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()

	err := c.locker.Unlock(unlockCtx, lockKey, lockValue)
	if err != nil {
		c.Log.Warn("onboardingController.runWatch cannot release watch lock",
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
	}
}
