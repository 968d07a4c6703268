package canvasbar

import (
	"math"
	"time"

	"github.com/vbauerster/canvasbar/canvas"
)

// render draws the bar at progress, a fraction, and runs the render hook.
func (s *bState) render(progress float64, now time.Time) {
	ctx := s.surface.Context()
	if ctx == nil {
		s.logger.Println("render skipped: no drawing context")
		return
	}
	s.drawProgressBar(ctx, progress, now)
	s.progress = progress
	if s.renderHook != nil {
		s.runRenderHook()
	}
}

func (s *bState) runRenderHook() {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Printf("render hook panic: %v", p)
		}
	}()
	s.renderHook(s.surface, s.stats())
}

func (s *bState) drawProgressBar(ctx canvas.Context, progress float64, now time.Time) {
	width := float64(s.surface.Width())
	height := float64(s.surface.Height())
	fillWidth := width * progress

	ctx.Save()
	defer ctx.Restore()

	ctx.ClearRect(0, 0, width, height)

	ctx.BeginPath()
	ctx.Rect(0, 0, fillWidth, height)
	ctx.Clip()

	ctx.SetFillStyle(s.fill)
	ctx.FillRect(0, 0, width, height)

	s.drawStripes(ctx, width, height, now)
}

// drawStripes draws stripeCount+1 diagonal segments, each spanning one
// band from bottom-left to top-right, shifted left as time goes by.
func (s *bState) drawStripes(ctx canvas.Context, width, height float64, now time.Time) {
	if s.stripeCount <= 0 {
		return
	}
	spread := width / float64(s.stripeCount)
	if spread <= 0 {
		return
	}
	lw := s.stripeWidth
	seconds := float64(now.UnixNano()) / float64(time.Second)
	shift := -math.Mod(seconds*s.spec.StripeSpeed, spread)

	ctx.BeginPath()
	ctx.SetStrokeStyle(s.stripe)
	ctx.SetLineWidth(lw)
	for i := 0; i <= s.stripeCount; i++ {
		offset := float64(i)*spread + shift
		ctx.MoveTo(offset-lw, height+lw)
		ctx.LineTo(spread+offset+lw, -lw)
	}
	ctx.Stroke()
}
