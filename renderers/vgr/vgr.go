// Package vgr adapts a gonum.org/v1/plot/vg canvas to the wplot drawing
// interface, so plots can render through any vg backend (vgimg, vgsvg,
// vgpdf, vgeps).
package vgr

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"

	"github.com/wplot/wplot"
	xfont "golang.org/x/image/font"
)

// Renderer draws through a vg.Canvas. vg uses points with the origin in the
// bottom-left corner, so Y coordinates are flipped on the way in; vg has no
// clip operation, so ClipRect is a no-op like in the go-chart backend.
type Renderer struct {
	c      vg.Canvas
	height float64

	cache    *font.Cache
	face     font.Face
	fontSize float64

	stroke    color.RGBA
	fill      color.RGBA
	lineWidth float64
	dash      []float64
	rotation  float64
	rotated   bool

	dx, dy float64
	stack  []offset
	path   vg.Path
}

type offset struct {
	dx, dy float64
}

var _ wplot.Renderer = (*Renderer)(nil)

// New returns a renderer drawing onto c, a canvas of width x height points.
func New(c vg.Canvas, width, height float64) *Renderer {
	r := &Renderer{
		c:         c,
		height:    height,
		cache:     font.NewCache(liberation.Collection()),
		lineWidth: 1.0,
	}
	r.SetFontSize(12.0)
	return r
}

// pt converts a Y-down device coordinate to a Y-up vg point.
func (r *Renderer) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x + r.dx), Y: vg.Length(r.height - (y + r.dy))}
}

func (r *Renderer) Save() {
	r.stack = append(r.stack, offset{r.dx, r.dy})
}

func (r *Renderer) Restore() {
	if n := len(r.stack); 0 < n {
		r.dx, r.dy = r.stack[n-1].dx, r.stack[n-1].dy
		r.stack = r.stack[:n-1]
	}
}

func (r *Renderer) Translate(x, y float64) {
	r.dx += x
	r.dy += y
}

// ClipRect is a no-op, vg.Canvas has no clip operation.
func (r *Renderer) ClipRect(x, y, w, h float64) {}

func (r *Renderer) MoveTo(x, y float64) {
	r.path.Move(r.pt(x, y))
}

func (r *Renderer) LineTo(x, y float64) {
	r.path.Line(r.pt(x, y))
}

func (r *Renderer) ClosePath() {
	r.path.Close()
}

func (r *Renderer) Rect(x, y, w, h float64) {
	r.path.Move(r.pt(x, y))
	r.path.Line(r.pt(x+w, y))
	r.path.Line(r.pt(x+w, y+h))
	r.path.Line(r.pt(x, y+h))
	r.path.Close()
}

func (r *Renderer) Circle(x, y, radius float64) {
	c := r.pt(x, y)
	r.path.Move(vg.Point{X: c.X + vg.Length(radius), Y: c.Y})
	r.path.Arc(c, vg.Length(radius), 0.0, 2.0*math.Pi)
	r.path.Close()
}

func (r *Renderer) SetStrokeColor(c color.RGBA) { r.stroke = c }
func (r *Renderer) SetFillColor(c color.RGBA)   { r.fill = c }
func (r *Renderer) SetLineWidth(w float64)      { r.lineWidth = w }
func (r *Renderer) SetDash(pattern []float64)   { r.dash = pattern }

func (r *Renderer) Stroke() {
	r.c.SetColor(r.stroke)
	r.c.SetLineWidth(vg.Length(r.lineWidth))
	r.c.SetLineDash(r.dashes(), 0)
	r.c.Stroke(r.path)
	r.path = r.path[:0]
}

func (r *Renderer) Fill() {
	r.c.SetColor(r.fill)
	r.c.Fill(r.path)
	r.path = r.path[:0]
}

func (r *Renderer) FillStroke() {
	r.c.SetColor(r.fill)
	r.c.Fill(r.path)
	r.c.SetColor(r.stroke)
	r.c.SetLineWidth(vg.Length(r.lineWidth))
	r.c.SetLineDash(r.dashes(), 0)
	r.c.Stroke(r.path)
	r.path = r.path[:0]
}

func (r *Renderer) dashes() []vg.Length {
	if len(r.dash) == 0 {
		return nil
	}
	ds := make([]vg.Length, len(r.dash))
	for i, d := range r.dash {
		ds[i] = vg.Length(d)
	}
	return ds
}

func (r *Renderer) SetFontSize(size float64) {
	r.fontSize = size
	r.face = r.cache.Lookup(font.Font{
		Typeface: "Liberation",
		Variant:  "Sans",
	}, vg.Length(size))
}

func (r *Renderer) Text(x, y float64, s string) {
	r.c.SetColor(r.fill)
	if r.rotated {
		r.c.Push()
		p := r.pt(x, y)
		r.c.Translate(p)
		// device-space clockwise is vg counterclockwise
		r.c.Rotate(-r.rotation)
		r.c.FillString(r.face, vg.Point{}, s)
		r.c.Pop()
		return
	}
	r.c.FillString(r.face, r.pt(x, y), s)
}

func (r *Renderer) SetTextRotation(radians float64) {
	r.rotation = radians
	r.rotated = true
}

func (r *Renderer) ClearTextRotation() {
	r.rotation = 0.0
	r.rotated = false
}

func (r *Renderer) TextExtents(s string) wplot.TextMetrics {
	// vg device units are points; at 72 DPI pixels and points coincide.
	f := r.face.FontFace(72)
	m := f.Metrics()
	return wplot.TextMetrics{
		Width:    float64(xfont.MeasureString(f, s)) / 64.0,
		Height:   float64(m.Ascent+m.Descent) / 64.0,
		YBearing: -float64(m.Ascent) / 64.0,
	}
}

func (r *Renderer) FontExtents() wplot.FontMetrics {
	m := r.face.FontFace(72).Metrics()
	return wplot.FontMetrics{
		Ascent:  float64(m.Ascent) / 64.0,
		Descent: float64(m.Descent) / 64.0,
		Height:  float64(m.Height) / 64.0,
	}
}
