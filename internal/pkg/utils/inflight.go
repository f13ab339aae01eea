package utils

import (
	"healthme-client/internal/pkg/exceptions"
	"sync/atomic"
)

// InFlight is a double-submit guard: Begin fails while a previous submission
// has not finished yet.
type InFlight struct {
	busy atomic.Bool
}

func (f *InFlight) Begin() (done func(), err error) {
	if !f.busy.CompareAndSwap(false, true) {
		return nil, exceptions.ErrRequestInFlight()
	}
	return func() { f.busy.Store(false) }, nil
}

func (f *InFlight) Active() bool {
	return f.busy.Load()
}
