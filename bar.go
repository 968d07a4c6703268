// Package canvasbar renders and animates a horizontal progress bar on a
// 2D drawing surface. The fill is a flat color or a vertical gradient and is
// overlaid with moving diagonal stripes.
package canvasbar

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"time"

	"github.com/vbauerster/canvasbar/canvas"
)

const (
	// default refresh rate
	prr = 16 * time.Millisecond
	// default stripe count
	pstripes = 5
	// default stripe line width
	pstripeWidth = 30
	// default fill color
	pfillColor = "#00FF00"
	// default stripe color
	pstripeColor = "rgba(255,255,255,0.5)"
)

// DoneError represents use after shutdown condition.
var DoneError = fmt.Errorf("%T instance can't be reused after it's done", (*Bar)(nil))

// ErrContextUnavailable is returned when a gradient has to be built but
// the surface provides no drawing context.
var ErrContextUnavailable = errors.New("drawing context unavailable")

// Bar is a progress bar widget. It exclusively owns its drawing surface
// and all animation state. Bar methods are safe for concurrent use, every
// state access is serialized through a single serve goroutine.
type Bar struct {
	operateState chan func(*bState)
	done         chan struct{}
	cancel       func()
}

// Stats is a snapshot of bar's animation state.
type Stats struct {
	Animating bool
	Spec      AnimationSpec
	// ElapsedPercent is the fraction advanced since the last Animate call.
	ElapsedPercent float64
	// Progress is the fraction rendered by the most recent frame.
	Progress float64
	// Frames counts animation frames rendered since construction.
	Frames int64
	// FrameRate is smoothed frames per second of the animation loop.
	FrameRate float64
}

type bState struct {
	surface     canvas.Surface
	size        *image.Point
	scheduler   Scheduler
	rr          time.Duration
	now         func() time.Time
	fill        canvas.Paint
	stripe      canvas.Paint
	stripeCount int
	stripeWidth float64
	spec        AnimationSpec
	animating   bool
	elapsed     float64
	last        time.Time
	generation  uint64
	progress    float64
	frames      int64
	frameDelta  MovingAverage
	renderHook  func(canvas.Surface, Stats)
	debugOut    io.Writer
	logger      *log.Logger
}

// New creates a Bar backed by a 300x150 raster canvas.
func New(options ...BarOption) *Bar {
	return NewWithContext(context.Background(), options...)
}

// NewWithContext creates a Bar. Cancelling ctx has the same effect as
// Shutdown.
func NewWithContext(ctx context.Context, options ...BarOption) *Bar {
	ctx, cancel := context.WithCancel(ctx)
	s := &bState{
		rr:          prr,
		now:         time.Now,
		fill:        canvas.MustParseColor(pfillColor),
		stripe:      canvas.MustParseColor(pstripeColor),
		stripeCount: pstripes,
		stripeWidth: pstripeWidth,
		spec:        defaultAnimationSpec(),
		frameDelta:  NewMedianEwma(),
		debugOut:    io.Discard,
	}

	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	if s.surface == nil {
		s.surface = canvas.New()
	}
	if s.size != nil {
		s.surface.SetSize(s.size.X, s.size.Y)
	}
	if s.scheduler == nil {
		s.scheduler = NewTickerScheduler(ctx, s.rr)
	}
	s.logger = log.New(s.debugOut, "[canvasbar] ", log.Lshortfile)
	s.last = s.now()

	b := &Bar{
		operateState: make(chan func(*bState)),
		done:         make(chan struct{}),
		cancel:       cancel,
	}
	go b.serve(ctx, s)
	return b
}

func (b *Bar) serve(ctx context.Context, s *bState) {
	defer close(b.done)
	for {
		select {
		case op := <-b.operateState:
			op(s)
		case <-ctx.Done():
			s.animating = false
			return
		}
	}
}

// Shutdown stops the bar. Any further call is a no-op.
func (b *Bar) Shutdown() {
	b.cancel()
	<-b.done
}

// SetSize resizes the surface, negative values are treated as zero.
func (b *Bar) SetSize(width, height int) {
	select {
	case b.operateState <- func(s *bState) {
		s.surface.SetSize(max(width, 0), max(height, 0))
	}:
	case <-b.done:
	}
}

// Surface returns the owned surface for embedding into a host view.
// Drawing to it outside of a render hook races with the bar.
func (b *Bar) Surface() canvas.Surface {
	result := make(chan canvas.Surface, 1)
	select {
	case b.operateState <- func(s *bState) { result <- s.surface }:
		return <-result
	case <-b.done:
		return nil
	}
}

// Snapshot returns a copy of the surface raster. It returns nil if the
// surface is not raster backed or the bar is done.
func (b *Bar) Snapshot() *image.RGBA {
	result := make(chan *image.RGBA, 1)
	select {
	case b.operateState <- func(s *bState) {
		src, ok := s.surface.(interface{ Image() *image.RGBA })
		if !ok || src.Image() == nil {
			result <- nil
			return
		}
		img := src.Image()
		dup := &image.RGBA{
			Pix:    append([]uint8(nil), img.Pix...),
			Stride: img.Stride,
			Rect:   img.Rect,
		}
		result <- dup
	}:
		return <-result
	case <-b.done:
		return nil
	}
}

// Draw renders a single frame at percent, a fraction in 0.0..1.0 range.
// Unlike Animate options, which are in 0..100 range.
func (b *Bar) Draw(percent float64) {
	select {
	case b.operateState <- func(s *bState) {
		s.render(percent, s.now())
	}:
	case <-b.done:
	}
}

// SetColors updates fill and stripe colors. See ColorConfig.
func (b *Bar) SetColors(cfg ColorConfig) error {
	result := make(chan error, 1)
	select {
	case b.operateState <- func(s *bState) { result <- s.setColors(cfg) }:
		return <-result
	case <-b.done:
		return DoneError
	}
}

// Stats returns a snapshot of bar's animation state.
func (b *Bar) Stats() Stats {
	result := make(chan Stats, 1)
	select {
	case b.operateState <- func(s *bState) { result <- s.stats() }:
		return <-result
	case <-b.done:
		return Stats{}
	}
}

func (s *bState) stats() Stats {
	st := Stats{
		Animating:      s.animating,
		Spec:           s.spec,
		ElapsedPercent: s.elapsed,
		Progress:       s.progress,
		Frames:         s.frames,
	}
	if avg := s.frameDelta.Value(); avg > 0 {
		st.FrameRate = float64(time.Second) / avg
	}
	return st
}
