package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"
)

// ErrIndexSize is returned by AddColorStop for offsets outside 0..1.
var ErrIndexSize = errors.New("color stop offset out of range")

// ColorStop is a single gradient stop.
type ColorStop struct {
	Offset float64
	Color  Color
}

// LinearGradient interpolates colors along the vector (x0,y0)-(x1,y1).
// Pixels are projected onto the vector, positions beyond either end take
// the color of the nearest stop.
type LinearGradient struct {
	x0, y0, x1, y1 float64
	stops          []ColorStop
}

// NewLinearGradient returns a gradient without stops, which paints nothing.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{x0: x0, y0: y0, x1: x1, y1: y1}
}

// AddColorStop inserts a stop keeping stops ordered by offset. Stops with
// equal offsets keep their insertion order.
func (g *LinearGradient) AddColorStop(offset float64, c Color) error {
	if offset < 0 || offset > 1 || math.IsNaN(offset) {
		return fmt.Errorf("%w: %v", ErrIndexSize, offset)
	}
	i := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Offset > offset
	})
	g.stops = append(g.stops, ColorStop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = ColorStop{Offset: offset, Color: c}
	return nil
}

// Stops returns a copy of the gradient stops.
func (g *LinearGradient) Stops() []ColorStop {
	return append([]ColorStop(nil), g.stops...)
}

// ColorAt returns the gradient color at point (x, y).
func (g *LinearGradient) ColorAt(x, y float64) Color {
	dx, dy := g.x1-g.x0, g.y1-g.y0
	l2 := dx*dx + dy*dy
	if len(g.stops) == 0 || l2 == 0 {
		return Color{}
	}
	t := ((x-g.x0)*dx + (y-g.y0)*dy) / l2
	i := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Offset > t
	})
	switch i {
	case 0:
		return g.stops[0].Color
	case len(g.stops):
		return g.stops[i-1].Color
	}
	s0, s1 := g.stops[i-1], g.stops[i]
	return s0.Color.Blend(s1.Color, (t-s0.Offset)/(s1.Offset-s0.Offset))
}

func (g *LinearGradient) source() image.Image {
	return gradientImage{g}
}

// gradientImage samples the gradient at pixel centers.
type gradientImage struct {
	*LinearGradient
}

func (gradientImage) ColorModel() color.Model {
	return color.RGBA64Model
}

func (gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g gradientImage) At(x, y int) color.Color {
	return g.ColorAt(float64(x)+0.5, float64(y)+0.5)
}
