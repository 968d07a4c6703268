// Package termview presents a raster in a terminal, two pixel rows per
// line, using 24-bit color escape sequences and the upper half block rune.
package termview

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

const upperHalfBlock = "▀"

// View describes how a raster is laid out on screen.
type View struct {
	// Cols is the number of terminal columns the raster is scaled to.
	// If zero, one column per pixel.
	Cols int
	// Caption is printed left of the first line.
	Caption string
	// CaptionWidth pads or truncates the caption, zero means caption's own
	// width.
	CaptionWidth int
	// Background transparent pixels are composed over.
	Background colorful.Color
	// NoPercentage omits percentage right of the first line.
	NoPercentage bool
}

// Render writes img to w and returns the number of lines written.
// percent is a fraction, it is printed as 0..100.
func (v View) Render(w io.Writer, img image.Image, percent float64) (int, error) {
	b := img.Bounds()
	if b.Empty() {
		return 0, nil
	}
	cols := v.Cols
	if cols <= 0 {
		cols = b.Dx()
	}

	caption := v.Caption
	width := runewidth.StringWidth(caption)
	if v.CaptionWidth > 0 {
		width = v.CaptionWidth
		caption = runewidth.FillRight(runewidth.Truncate(caption, width, "…"), width)
	}

	bw := bufio.NewWriter(w)
	lines := (b.Dy() + 1) / 2
	for line := 0; line < lines; line++ {
		if width > 0 {
			if line == 0 {
				bw.WriteString(caption)
			} else {
				bw.WriteString(runewidth.FillRight("", width))
			}
			bw.WriteByte(' ')
		}
		y := b.Min.Y + line*2
		for col := 0; col < cols; col++ {
			x := b.Min.X + col*b.Dx()/cols
			top := v.compose(img.At(x, y))
			bottom := v.Background
			if y+1 < b.Max.Y {
				bottom = v.compose(img.At(x, y+1))
			}
			tr, tg, tb := top.RGB255()
			br, bg, bb := bottom.RGB255()
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s", tr, tg, tb, br, bg, bb, upperHalfBlock)
		}
		bw.WriteString("\x1b[0m")
		if line == 0 && !v.NoPercentage {
			fmt.Fprintf(bw, " %3.0f%%", math.Floor(percent*100))
		}
		bw.WriteByte('\n')
	}
	return lines, bw.Flush()
}

// compose blends c over the background.
func (v View) compose(c color.Color) colorful.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return v.Background
	}
	alpha := float64(a) / 0xffff
	// c is premultiplied, un-premultiply before blending
	fg := colorful.Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
	}
	return v.Background.BlendRgb(fg, alpha).Clamped()
}
