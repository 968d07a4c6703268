package canvas

import (
	"image"
	"image/color"
	"testing"
)

func TestCanvasDefaults(t *testing.T) {
	c := New()
	if c.Width() != DefaultWidth || c.Height() != DefaultHeight {
		t.Fatalf("Want: %dx%d, Got: %dx%d", DefaultWidth, DefaultHeight, c.Width(), c.Height())
	}
	if c.Context() == nil {
		t.Fatal("expected context")
	}
	c.SetSize(-5, 4)
	if c.Width() != 0 || c.Height() != 4 {
		t.Errorf("Want: 0x4, Got: %dx%d", c.Width(), c.Height())
	}
}

func TestFillRectClip(t *testing.T) {
	c := New()
	c.SetSize(10, 4)
	ctx := c.Context()
	ctx.Save()
	ctx.BeginPath()
	ctx.Rect(0, 0, 4, 4)
	ctx.Clip()
	ctx.SetFillStyle(MustParseColor("red"))
	ctx.FillRect(0, 0, 10, 4)
	ctx.Restore()

	img := c.Image()
	red := color.RGBA{255, 0, 0, 255}
	for x := 0; x < 10; x++ {
		got := img.RGBAAt(x, 2)
		if x < 4 && got != red {
			t.Errorf("x=%d: Want: %v, Got: %v", x, red, got)
		}
		if x >= 4 && got.A != 0 {
			t.Errorf("x=%d: Want transparent, Got: %v", x, got)
		}
	}

	// clip is gone after Restore
	ctx.FillRect(0, 0, 10, 4)
	if got := img.RGBAAt(9, 0); got.A != 255 {
		t.Errorf("Want opaque after restore, Got: %v", got)
	}
	ctx.ClearRect(0, 0, 10, 4)
	if got := img.RGBAAt(9, 0); got.A != 0 {
		t.Errorf("Want cleared, Got: %v", got)
	}
}

func TestClipEmptyPath(t *testing.T) {
	c := New()
	c.SetSize(4, 4)
	ctx := c.Context()
	ctx.BeginPath()
	ctx.Clip()
	ctx.FillRect(0, 0, 4, 4)
	if got := c.Image().RGBAAt(1, 1); got.A != 0 {
		t.Errorf("Want nothing painted, Got: %v", got)
	}
}

func TestStrokeHorizontalLine(t *testing.T) {
	c := New()
	c.SetSize(10, 10)
	ctx := c.Context()
	ctx.SetStrokeStyle(MustParseColor("blue"))
	ctx.SetLineWidth(2)
	ctx.BeginPath()
	ctx.MoveTo(0, 5)
	ctx.LineTo(10, 5)
	ctx.Stroke()

	img := c.Image()
	for _, y := range []int{4, 5} {
		if got := img.RGBAAt(5, y); got.B != 255 || got.A != 255 {
			t.Errorf("y=%d: Want opaque blue, Got: %v", y, got)
		}
	}
	for _, y := range []int{2, 7} {
		if got := img.RGBAAt(5, y); got.A != 0 {
			t.Errorf("y=%d: Want transparent, Got: %v", y, got)
		}
	}
}

func TestStrokeOverlapCompositesOnce(t *testing.T) {
	c := New()
	c.SetSize(10, 10)
	ctx := c.Context()
	ctx.SetStrokeStyle(MustParseColor("rgba(255,255,255,0.5)"))
	ctx.SetLineWidth(4)
	ctx.BeginPath()
	ctx.MoveTo(0, 5)
	ctx.LineTo(10, 5)
	ctx.MoveTo(10, 5)
	ctx.LineTo(0, 5)
	ctx.Stroke()

	got := c.Image().RGBAAt(5, 5)
	if got.A < 126 || got.A > 130 {
		t.Errorf("Want half alpha, Got: %v", got)
	}
}

func TestStrokeRespectsClip(t *testing.T) {
	c := New()
	c.SetSize(10, 10)
	ctx := c.Context()
	ctx.BeginPath()
	ctx.Rect(0, 0, 5, 10)
	ctx.Clip()
	ctx.SetLineWidth(2)
	ctx.BeginPath()
	ctx.MoveTo(0, 5)
	ctx.LineTo(10, 5)
	ctx.Stroke()

	img := c.Image()
	if got := img.RGBAAt(2, 5); got.A != 255 {
		t.Errorf("Want opaque inside clip, Got: %v", got)
	}
	if got := img.RGBAAt(7, 5); got.A != 0 {
		t.Errorf("Want transparent outside clip, Got: %v", got)
	}
}

func TestFillRectGradient(t *testing.T) {
	c := New()
	c.SetSize(2, 100)
	ctx := c.Context()
	g := ctx.CreateLinearGradient(0, 0, 0, 100)
	g.AddColorStop(0, MustParseColor("black"))
	g.AddColorStop(1, MustParseColor("white"))
	ctx.SetFillStyle(g)
	ctx.FillRect(0, 0, 2, 100)

	img := c.Image()
	top, bottom := img.RGBAAt(0, 0), img.RGBAAt(0, 99)
	if top.R > 5 || bottom.R < 250 {
		t.Errorf("Want dark top and light bottom, Got: %v %v", top, bottom)
	}
	if mid := img.RGBAAt(1, 50); mid.R < 120 || mid.R > 135 {
		t.Errorf("Want mid gray, Got: %v", mid)
	}
}

func TestPixelRect(t *testing.T) {
	tests := []struct {
		x, y, w, h float64
		want       image.Rectangle
	}{
		{0, 0, 33.3, 10, image.Rect(0, 0, 33, 10)},
		{0, 0, 33.5, 10, image.Rect(0, 0, 34, 10)},
		{10, 0, -4, 2, image.Rect(6, 0, 10, 2)},
	}
	for _, test := range tests {
		if got := pixelRect(test.x, test.y, test.w, test.h); got != test.want {
			t.Errorf("Want: %v, Got: %v", test.want, got)
		}
	}
}
