package canvasbar

import (
	"context"
	"sync"
	"time"
)

// Scheduler is a per-frame scheduling primitive.
type Scheduler interface {
	// RequestFrame registers fn to be called once, before the next frame
	// is presented. Implementations must not block. Bar uses the callback
	// as a wake up only, frame time comes from the bar's clock.
	RequestFrame(fn func(time.Time))
}

// TickerScheduler runs requested callbacks on every tick of a time.Ticker.
type TickerScheduler struct {
	mu      sync.Mutex
	pending []func(time.Time)
}

// NewTickerScheduler starts a scheduler ticking every rr. It stops when
// ctx is done, pending callbacks are dropped.
func NewTickerScheduler(ctx context.Context, rr time.Duration) *TickerScheduler {
	if rr <= 0 {
		rr = prr
	}
	s := new(TickerScheduler)
	go s.run(ctx, rr)
	return s
}

// RequestFrame queues fn until the next tick.
func (s *TickerScheduler) RequestFrame(fn func(time.Time)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

func (s *TickerScheduler) run(ctx context.Context, rr time.Duration) {
	ticker := time.NewTicker(rr)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			s.mu.Lock()
			pending := s.pending
			s.pending = nil
			s.mu.Unlock()
			for _, fn := range pending {
				fn(now)
			}
		case <-ctx.Done():
			s.mu.Lock()
			s.pending = nil
			s.mu.Unlock()
			return
		}
	}
}
