// Package chartr adapts a github.com/wcharczuk/go-chart renderer to the
// wplot drawing interface, giving raster PNG and vector SVG output.
package chartr

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/wplot/wplot"
)

// Renderer draws through a chart.Renderer. go-chart renderers have no
// transform stack, so translation is applied to coordinates on the way in
// and ClipRect is a no-op; a plot drawn at its natural size never paints
// outside its rects, so the missing clip only shows with degenerate sizes.
type Renderer struct {
	r        chart.Renderer
	font     *truetype.Font
	fontSize float64
	dx, dy   float64
	stack    []offset
}

type offset struct {
	dx, dy float64
}

var _ wplot.Renderer = (*Renderer)(nil)

// New returns a renderer rasterizing into a PNG of width x height pixels.
func New(width, height int) (*Renderer, error) {
	return wrap(chart.PNG(width, height))
}

// NewSVG returns a renderer writing an SVG of width x height pixels.
func NewSVG(width, height int) (*Renderer, error) {
	return wrap(chart.SVG(width, height))
}

// Wrap adapts an existing chart.Renderer.
func Wrap(cr chart.Renderer) (*Renderer, error) {
	return wrap(cr, nil)
}

func wrap(cr chart.Renderer, err error) (*Renderer, error) {
	if err != nil {
		return nil, fmt.Errorf("chartr: creating renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("chartr: loading default font: %w", err)
	}
	cr.SetDPI(chart.DefaultDPI)
	cr.SetFont(font)
	r := &Renderer{r: cr, font: font}
	r.SetFontSize(12.0)
	return r, nil
}

// WriteTo writes the rendered output, PNG or SVG, to w.
func (r *Renderer) WriteTo(w io.Writer) error {
	if err := r.r.Save(w); err != nil {
		return fmt.Errorf("chartr: saving: %w", err)
	}
	return nil
}

func (r *Renderer) x(v float64) int { return int(math.Round(v + r.dx)) }
func (r *Renderer) y(v float64) int { return int(math.Round(v + r.dy)) }

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
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

// ClipRect is a no-op, chart.Renderer has no clip support.
func (r *Renderer) ClipRect(x, y, w, h float64) {}

func (r *Renderer) MoveTo(x, y float64) {
	r.r.MoveTo(r.x(x), r.y(y))
}

func (r *Renderer) LineTo(x, y float64) {
	r.r.LineTo(r.x(x), r.y(y))
}

func (r *Renderer) ClosePath() {
	r.r.Close()
}

func (r *Renderer) Rect(x, y, w, h float64) {
	r.r.MoveTo(r.x(x), r.y(y))
	r.r.LineTo(r.x(x+w), r.y(y))
	r.r.LineTo(r.x(x+w), r.y(y+h))
	r.r.LineTo(r.x(x), r.y(y+h))
	r.r.Close()
}

func (r *Renderer) Circle(x, y, radius float64) {
	r.r.Circle(radius, r.x(x), r.y(y))
}

func (r *Renderer) SetStrokeColor(c color.RGBA) {
	r.r.SetStrokeColor(toDrawing(c))
}

func (r *Renderer) SetFillColor(c color.RGBA) {
	r.r.SetFillColor(toDrawing(c))
	r.r.SetFontColor(toDrawing(c))
}

func (r *Renderer) SetLineWidth(w float64) {
	r.r.SetStrokeWidth(w)
}

func (r *Renderer) SetDash(pattern []float64) {
	r.r.SetStrokeDashArray(pattern)
}

func (r *Renderer) Stroke() {
	r.r.Stroke()
}

func (r *Renderer) Fill() {
	r.r.Fill()
}

func (r *Renderer) FillStroke() {
	r.r.FillStroke()
}

func (r *Renderer) SetFontSize(size float64) {
	r.fontSize = size
	r.r.SetFontSize(size)
}

func (r *Renderer) Text(x, y float64, s string) {
	r.r.Text(s, r.x(x), r.y(y))
}

func (r *Renderer) SetTextRotation(radians float64) {
	r.r.SetTextRotation(radians)
}

func (r *Renderer) ClearTextRotation() {
	r.r.ClearTextRotation()
}

// TextExtents measures s with the renderer's text measurer. The vertical
// bearing is estimated from the font size, close enough for label and
// legend placement.
func (r *Renderer) TextExtents(s string) wplot.TextMetrics {
	box := r.r.MeasureText(s)
	return wplot.TextMetrics{
		Width:    float64(box.Width()),
		Height:   float64(box.Height()),
		YBearing: -0.8 * r.fontSize,
	}
}

// FontExtents estimates the default font geometry from the font size.
func (r *Renderer) FontExtents() wplot.FontMetrics {
	return wplot.FontMetrics{
		Ascent:  0.8 * r.fontSize,
		Descent: 0.2 * r.fontSize,
		Height:  1.2 * r.fontSize,
	}
}
