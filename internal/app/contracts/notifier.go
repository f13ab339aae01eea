package contracts

import "context"

// PaymentNotifier delivers a signal whenever the backend announces an
// approved payment for userID. The channel is closed once ctx ends.
type PaymentNotifier interface {
	Subscribe(ctx context.Context, userID string) (<-chan struct{}, error)
}
