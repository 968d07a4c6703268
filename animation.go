package canvasbar

import "time"

// AnimationSpec describes an animation run.
type AnimationSpec struct {
	// From is the start percent, 0..100.
	From float64
	// To is the target percent, 0..100.
	To float64
	// Speed is the time it takes to advance from 0 to 100 percent.
	Speed time.Duration
	// StripeSpeed is stripe overlay velocity in pixels per second.
	StripeSpeed float64
}

// AnimationOption overrides a single AnimationSpec field.
type AnimationOption func(*AnimationSpec)

func defaultAnimationSpec() AnimationSpec {
	return AnimationSpec{
		From:        0,
		To:          100,
		Speed:       time.Second,
		StripeSpeed: 100,
	}
}

// From sets start percent. Values outside 0..100 are ignored.
func From(percent float64) AnimationOption {
	return func(s *AnimationSpec) {
		if percent >= 0 && percent <= 100 {
			s.From = percent
		}
	}
}

// To sets target percent. Values outside 0..100 are ignored.
func To(percent float64) AnimationOption {
	return func(s *AnimationSpec) {
		if percent >= 0 && percent <= 100 {
			s.To = percent
		}
	}
}

// Speed sets how long 0 to 100 percent takes. Non positive d is ignored.
func Speed(d time.Duration) AnimationOption {
	return func(s *AnimationSpec) {
		if d > 0 {
			s.Speed = d
		}
	}
}

// StripeSpeed sets stripe velocity in pixels per second. Negative values
// are ignored, zero freezes the stripes.
func StripeSpeed(pxPerSec float64) AnimationOption {
	return func(s *AnimationSpec) {
		if pxPerSec >= 0 {
			s.StripeSpeed = pxPerSec
		}
	}
}

// merge returns a copy of s with options applied, s itself is untouched.
func (s AnimationSpec) merge(options ...AnimationOption) AnimationSpec {
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// Animate merges options over the previous animation spec and (re)starts
// the animation loop from the spec's From percent. Omitted fields keep
// their previous values.
//
//	bar.Animate(canvasbar.From(20), canvasbar.To(100), canvasbar.Speed(time.Second))
func (b *Bar) Animate(options ...AnimationOption) {
	select {
	case b.operateState <- func(s *bState) {
		s.spec = s.spec.merge(options...)
		s.elapsed = 0
		s.last = s.now()
		s.animating = true
		s.generation++
		s.step(b, s.generation, s.last)
	}:
	case <-b.done:
	}
}

// StopAnimation stops the animation loop. A frame already requested from
// the scheduler becomes a no-op.
func (b *Bar) StopAnimation() {
	select {
	case b.operateState <- func(s *bState) { s.animating = false }:
	case <-b.done:
	}
}

// step renders one animation frame and requests the next one. Frames of a
// stale generation or arriving after stop do nothing.
func (s *bState) step(b *Bar, generation uint64, now time.Time) {
	if !s.animating || generation != s.generation {
		return
	}
	delta := now.Sub(s.last)
	progress := s.spec.From/100 + s.elapsed

	s.frames++
	if delta > 0 {
		s.frameDelta.Add(float64(delta))
	}
	s.render(progress, now)

	if progress < s.spec.To/100 {
		s.elapsed += float64(delta) / float64(s.spec.Speed)
	}
	s.last = now

	if s.animating {
		s.scheduler.RequestFrame(b.frame(generation))
	}
}

// frame returns scheduler callback which hands the frame over to the
// serve goroutine. Frame time is read from the bar's clock, so that delta
// and last always come from the same source.
func (b *Bar) frame(generation uint64) func(time.Time) {
	return func(time.Time) {
		select {
		case b.operateState <- func(s *bState) { s.step(b, generation, s.now()) }:
		case <-b.done:
		}
	}
}
