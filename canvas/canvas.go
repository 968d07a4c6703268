package canvas

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

const (
	// DefaultWidth of a freshly allocated Canvas.
	DefaultWidth = 300
	// DefaultHeight of a freshly allocated Canvas.
	DefaultHeight = 150
)

// Surface is a drawable 2D area.
type Surface interface {
	Width() int
	Height() int
	// SetSize resizes the surface. Drawn content and context state
	// are reset.
	SetSize(width, height int)
	// Context returns the drawing handle of the surface or nil if the
	// surface cannot provide one.
	Context() Context
}

// Context exposes drawing primitives against a Surface.
type Context interface {
	Save()
	Restore()
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	BeginPath()
	Rect(x, y, w, h float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Stroke()
	Clip()
	SetFillStyle(Paint)
	SetStrokeStyle(Paint)
	SetLineWidth(float64)
	CreateLinearGradient(x0, y0, x1, y1 float64) *LinearGradient
}

// Paint is either a Color or a *LinearGradient.
type Paint interface {
	source() image.Image
}

// Canvas is an image.RGBA backed Surface.
type Canvas struct {
	img *image.RGBA
	ctx *context2D
}

// New allocates a Canvas of DefaultWidth x DefaultHeight.
func New() *Canvas {
	c := new(Canvas)
	c.SetSize(DefaultWidth, DefaultHeight)
	return c
}

func (c *Canvas) Width() int {
	return c.img.Rect.Dx()
}

func (c *Canvas) Height() int {
	return c.img.Rect.Dy()
}

func (c *Canvas) SetSize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	c.img = image.NewRGBA(image.Rect(0, 0, width, height))
	c.ctx = newContext2D(c.img)
}

func (c *Canvas) Context() Context {
	return c.ctx
}

// Image returns the backing raster. It is replaced on every SetSize.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

type drawState struct {
	fill      Paint
	stroke    Paint
	lineWidth float64
	clip      image.Rectangle
}

type point struct {
	x, y float64
}

type subpath struct {
	points []point
	closed bool
}

type context2D struct {
	dst   *image.RGBA
	state drawState
	stack []drawState
	path  []subpath
}

func newContext2D(dst *image.RGBA) *context2D {
	black := Color{A: 1}
	return &context2D{
		dst: dst,
		state: drawState{
			fill:      black,
			stroke:    black,
			lineWidth: 1,
			clip:      dst.Bounds(),
		},
	}
}

func (c *context2D) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *context2D) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *context2D) ClearRect(x, y, w, h float64) {
	r := pixelRect(x, y, w, h).Intersect(c.state.clip)
	draw.Draw(c.dst, r, image.Transparent, image.Point{}, draw.Src)
}

func (c *context2D) FillRect(x, y, w, h float64) {
	r := pixelRect(x, y, w, h).Intersect(c.state.clip)
	if r.Empty() {
		return
	}
	draw.Draw(c.dst, r, c.state.fill.source(), r.Min, draw.Over)
}

func (c *context2D) BeginPath() {
	c.path = c.path[:0]
}

func (c *context2D) Rect(x, y, w, h float64) {
	c.path = append(c.path, subpath{
		points: []point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}},
		closed: true,
	})
}

func (c *context2D) MoveTo(x, y float64) {
	c.path = append(c.path, subpath{points: []point{{x, y}}})
}

func (c *context2D) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	sp := &c.path[len(c.path)-1]
	sp.points = append(sp.points, point{x, y})
}

func (c *context2D) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	c.path[len(c.path)-1].closed = true
}

// Clip intersects the clip region with the bounding box of the current path.
func (c *context2D) Clip() {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, sp := range c.path {
		for _, p := range sp.points {
			minX, maxX = math.Min(minX, p.x), math.Max(maxX, p.x)
			minY, maxY = math.Min(minY, p.y), math.Max(maxY, p.y)
		}
	}
	if math.IsInf(minX, 1) {
		c.state.clip = image.Rectangle{}
		return
	}
	c.state.clip = pixelRect(minX, minY, maxX-minX, maxY-minY).Intersect(c.state.clip)
}

func (c *context2D) Stroke() {
	r := c.state.clip.Intersect(c.dst.Rect)
	if r.Empty() || c.state.lineWidth <= 0 {
		return
	}
	b := c.dst.Rect
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	half := c.state.lineWidth / 2
	var n int
	for _, sp := range c.path {
		pts := sp.points
		if sp.closed && len(pts) > 1 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		for i := 1; i < len(pts); i++ {
			if strokeSegment(z, pts[i-1], pts[i], half) {
				n++
			}
		}
	}
	if n == 0 {
		return
	}
	mask := image.NewAlpha(b)
	z.Draw(mask, b, image.Opaque, image.Point{})
	draw.DrawMask(c.dst, r, c.state.stroke.source(), r.Min, mask, r.Min, draw.Over)
}

// strokeSegment adds a butt capped quad of half width hw around p0-p1.
func strokeSegment(z *vector.Rasterizer, p0, p1 point, hw float64) bool {
	dx, dy := p1.x-p0.x, p1.y-p0.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return false
	}
	nx, ny := -dy/l*hw, dx/l*hw
	z.MoveTo(float32(p0.x+nx), float32(p0.y+ny))
	z.LineTo(float32(p1.x+nx), float32(p1.y+ny))
	z.LineTo(float32(p1.x-nx), float32(p1.y-ny))
	z.LineTo(float32(p0.x-nx), float32(p0.y-ny))
	z.ClosePath()
	return true
}

func (c *context2D) SetFillStyle(p Paint) {
	if p != nil {
		c.state.fill = p
	}
}

func (c *context2D) SetStrokeStyle(p Paint) {
	if p != nil {
		c.state.stroke = p
	}
}

func (c *context2D) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w) {
		c.state.lineWidth = w
	}
}

func (c *context2D) CreateLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return NewLinearGradient(x0, y0, x1, y1)
}

// pixelRect normalizes a rectangle with possibly negative extent and
// rounds its edges to whole pixels.
func pixelRect(x, y, w, h float64) image.Rectangle {
	x0, x1 := math.Min(x, x+w), math.Max(x, x+w)
	y0, y1 := math.Min(y, y+h), math.Max(y, y+h)
	return image.Rect(roundInt(x0), roundInt(y0), roundInt(x1), roundInt(y1))
}

func roundInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(math.Round(f))
}
