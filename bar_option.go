package canvasbar

import (
	"image"
	"io"
	"time"

	"github.com/vbauerster/canvasbar/canvas"
)

// BarOption is a func option to alter default behavior of a bar.
type BarOption func(*bState)

// WithSurface draws onto provided surface instead of a new canvas.Canvas.
func WithSurface(surface canvas.Surface) BarOption {
	return func(s *bState) {
		if surface != nil {
			s.surface = surface
		}
	}
}

// WithSize sets initial surface size. It is applied after all other
// options, so it also resizes a surface provided by WithSurface.
func WithSize(width, height int) BarOption {
	return func(s *bState) {
		s.size = &image.Point{X: max(width, 0), Y: max(height, 0)}
	}
}

// WithScheduler overrides default TickerScheduler.
func WithScheduler(scheduler Scheduler) BarOption {
	return func(s *bState) {
		if scheduler != nil {
			s.scheduler = scheduler
		}
	}
}

// WithRefreshRate overrides default 16ms refresh rate of the default
// scheduler. Has no effect together with WithScheduler.
func WithRefreshRate(d time.Duration) BarOption {
	return func(s *bState) {
		if d > 0 {
			s.rr = d
		}
	}
}

// WithClock overrides time.Now as the source of animation timestamps.
func WithClock(now func() time.Time) BarOption {
	return func(s *bState) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStripeCount sets number of stripe bands, default is 5.
func WithStripeCount(n int) BarOption {
	return func(s *bState) {
		if n > 0 {
			s.stripeCount = n
		}
	}
}

// WithStripeWidth sets stripe line width in pixels, default is 30.
func WithStripeWidth(px float64) BarOption {
	return func(s *bState) {
		if px > 0 {
			s.stripeWidth = px
		}
	}
}

// WithRenderHook provided fn is called after every rendered frame, on the
// bar's own goroutine. It may read the surface but must not call Bar
// methods.
func WithRenderHook(fn func(canvas.Surface, Stats)) BarOption {
	return func(s *bState) {
		s.renderHook = fn
	}
}

// WithDebugOutput sets debug output.
func WithDebugOutput(w io.Writer) BarOption {
	if w == nil {
		return nil
	}
	return func(s *bState) {
		s.debugOut = w
	}
}
