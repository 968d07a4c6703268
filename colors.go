package canvasbar

import "github.com/vbauerster/canvasbar/canvas"

// ColorConfig is the argument of Bar.SetColors.
//
// A single FillColors entry fills the bar with a flat color, more than one
// builds a top to bottom gradient with evenly distributed stops. An empty
// FillColors leaves the fill untouched. An empty StripeColor leaves the
// stripe color untouched.
type ColorConfig struct {
	FillColors  []string
	StripeColor string
}

// setColors applies cfg or nothing at all.
func (s *bState) setColors(cfg ColorConfig) error {
	var stripe canvas.Paint
	if cfg.StripeColor != "" {
		c, err := canvas.ParseColor(cfg.StripeColor)
		if err != nil {
			return err
		}
		stripe = c
	}

	var fill canvas.Paint
	switch len(cfg.FillColors) {
	case 0:
	case 1:
		c, err := canvas.ParseColor(cfg.FillColors[0])
		if err != nil {
			return err
		}
		fill = c
	default:
		g, err := s.createLinearGradient(cfg.FillColors)
		if err != nil {
			return err
		}
		fill = g
	}

	if fill != nil {
		s.fill = fill
	}
	if stripe != nil {
		s.stripe = stripe
	}
	return nil
}

// createLinearGradient builds a vertical gradient over the current surface
// height. The gradient keeps its geometry if the surface is resized later.
func (s *bState) createLinearGradient(colors []string) (*canvas.LinearGradient, error) {
	ctx := s.surface.Context()
	if ctx == nil {
		return nil, ErrContextUnavailable
	}
	g := ctx.CreateLinearGradient(0, 0, 0, float64(s.surface.Height()))
	last := float64(len(colors) - 1)
	for i, str := range colors {
		c, err := canvas.ParseColor(str)
		if err != nil {
			return nil, err
		}
		if err := g.AddColorStop(float64(i)/last, c); err != nil {
			return nil, err
		}
	}
	return g, nil
}
