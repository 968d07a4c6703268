package canvas

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by ParseColor for unrecognized input.
var ErrInvalidColor = errors.New("invalid color")

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"aqua":    "#00ffff",
	"magenta": "#ff00ff",
	"fuchsia": "#ff00ff",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"navy":    "#000080",
	"teal":    "#008080",
	"maroon":  "#800000",
	"olive":   "#808000",
}

// Color is a non-premultiplied sRGB color with alpha in 0..1.
// It implements color.Color and Paint.
type Color struct {
	colorful.Color
	A float64
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	cc := c.Clamped()
	alpha := math.Max(0, math.Min(1, c.A))
	r = uint32(cc.R*alpha*0xffff + 0.5)
	g = uint32(cc.G*alpha*0xffff + 0.5)
	b = uint32(cc.B*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return
}

func (c Color) source() image.Image {
	return image.NewUniform(c)
}

// Blend interpolates c towards c2 in RGB space, t in 0..1.
func (c Color) Blend(c2 Color, t float64) Color {
	return Color{
		Color: c.BlendRgb(c2.Color, t),
		A:     c.A + (c2.A-c.A)*t,
	}
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor parses CSS style color strings: "#rgb", "#rrggbb",
// "#rrggbbaa", "rgb(r,g,b)", "rgba(r,g,b,a)", a few named colors and
// "transparent".
func ParseColor(s string) (Color, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	switch {
	case str == "transparent":
		return Color{}, nil
	case strings.HasPrefix(str, "#"):
		return parseHex(s, str)
	case strings.HasPrefix(str, "rgba(") || strings.HasPrefix(str, "rgb("):
		return parseFunctional(s, str)
	}
	if hex, ok := namedColors[str]; ok {
		return parseHex(s, hex)
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(orig, str string) (Color, error) {
	alpha := 1.0
	if len(str) == 9 {
		a, err := strconv.ParseUint(str[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		alpha = float64(a) / 255
		str = str[:7]
	}
	if len(str) != 4 && len(str) != 7 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	c, err := colorful.Hex(str)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, orig, err)
	}
	return Color{Color: c, A: alpha}, nil
}

func parseFunctional(orig, str string) (Color, error) {
	open, end := strings.IndexByte(str, '('), strings.LastIndexByte(str, ')')
	if end != len(str)-1 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	args := strings.Split(str[open+1:end], ",")
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[i]), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		ch[i] = math.Max(0, math.Min(255, v)) / 255
	}
	alpha := 1.0
	if len(args) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
		}
		alpha = math.Max(0, math.Min(1, v))
	}
	return Color{Color: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, A: alpha}, nil
}
