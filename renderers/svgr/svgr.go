// Package svgr writes plots directly as SVG documents through
// github.com/ajstarks/svgo, measuring text with golang.org/x/image fonts.
// Output can optionally be minified with github.com/tdewolff/minify.
package svgr

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/tdewolff/minify/v2"
	svgmin "github.com/tdewolff/minify/v2/svg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/wplot/wplot"
)

// Renderer builds an SVG document in memory and writes it on Close.
// Save/Restore, Translate and ClipRect map onto nested svg groups.
type Renderer struct {
	s   *svg.SVG
	buf *bytes.Buffer
	out io.Writer

	minified bool
	ttf      []byte

	fnt      *opentype.Font
	faces    map[float64]font.Face
	fontSize float64

	stroke    color.RGBA
	fill      color.RGBA
	lineWidth float64
	dash      []float64
	rotation  float64
	rotated   bool

	path    strings.Builder
	circles []circle
	groups  []int
	clipID  int
}

type circle struct {
	x, y, r float64
}

var _ wplot.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

// WithMinify minifies the document while writing it out.
func WithMinify() Option {
	return func(r *Renderer) { r.minified = true }
}

// WithFont measures and names text with the given TTF instead of Go Regular.
func WithFont(ttf []byte) Option {
	return func(r *Renderer) { r.ttf = ttf }
}

// New returns a renderer for an SVG of width x height pixels written to w
// when Close is called.
func New(w io.Writer, width, height int, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		buf:       &bytes.Buffer{},
		out:       w,
		ttf:       goregular.TTF,
		faces:     map[float64]font.Face{},
		lineWidth: 1.0,
		groups:    []int{0},
	}
	for _, opt := range opts {
		opt(r)
	}

	fnt, err := opentype.Parse(r.ttf)
	if err != nil {
		return nil, fmt.Errorf("svgr: parsing font: %w", err)
	}
	r.fnt = fnt
	if err := r.setFontSize(12.0); err != nil {
		return nil, err
	}

	r.s = svg.New(r.buf)
	r.s.Start(width, height)
	return r, nil
}

// Close finishes the document and writes it, minified when requested.
func (r *Renderer) Close() error {
	for 0 < len(r.groups) {
		r.closeGroups()
		r.groups = r.groups[:len(r.groups)-1]
	}
	r.s.End()

	if r.minified {
		m := minify.New()
		m.AddFunc("image/svg+xml", svgmin.Minify)
		if err := m.Minify("image/svg+xml", r.out, r.buf); err != nil {
			return fmt.Errorf("svgr: minifying: %w", err)
		}
		return nil
	}
	if _, err := io.Copy(r.out, r.buf); err != nil {
		return fmt.Errorf("svgr: writing: %w", err)
	}
	return nil
}

func (r *Renderer) closeGroups() {
	for i := 0; i < r.groups[len(r.groups)-1]; i++ {
		r.s.Gend()
	}
	r.groups[len(r.groups)-1] = 0
}

func (r *Renderer) Save() {
	r.groups = append(r.groups, 0)
}

func (r *Renderer) Restore() {
	if len(r.groups) < 2 {
		return
	}
	r.closeGroups()
	r.groups = r.groups[:len(r.groups)-1]
}

func (r *Renderer) Translate(x, y float64) {
	r.s.Gtransform(fmt.Sprintf("translate(%s,%s)", num(x), num(y)))
	r.groups[len(r.groups)-1]++
}

func (r *Renderer) ClipRect(x, y, w, h float64) {
	r.clipID++
	id := fmt.Sprintf("c%d", r.clipID)
	r.s.ClipPath(`id="` + id + `"`)
	r.s.Rect(round(x), round(y), round(w), round(h))
	r.s.ClipEnd()
	r.s.Group(fmt.Sprintf(`clip-path="url(#%s)"`, id))
	r.groups[len(r.groups)-1]++
}

func (r *Renderer) MoveTo(x, y float64) {
	fmt.Fprintf(&r.path, "M%s %s", num(x), num(y))
}

func (r *Renderer) LineTo(x, y float64) {
	fmt.Fprintf(&r.path, "L%s %s", num(x), num(y))
}

func (r *Renderer) ClosePath() {
	r.path.WriteByte('Z')
}

func (r *Renderer) Rect(x, y, w, h float64) {
	fmt.Fprintf(&r.path, "M%s %sh%sv%sh%sZ", num(x), num(y), num(w), num(h), num(-w))
}

func (r *Renderer) Circle(x, y, radius float64) {
	r.circles = append(r.circles, circle{x, y, radius})
}

func (r *Renderer) SetStrokeColor(c color.RGBA) { r.stroke = c }
func (r *Renderer) SetFillColor(c color.RGBA)   { r.fill = c }
func (r *Renderer) SetLineWidth(w float64)      { r.lineWidth = w }
func (r *Renderer) SetDash(pattern []float64)   { r.dash = pattern }

func (r *Renderer) Stroke() {
	r.paint(r.strokeStyle() + ";fill:none")
}

func (r *Renderer) Fill() {
	r.paint(r.fillStyle() + ";stroke:none")
}

func (r *Renderer) FillStroke() {
	r.paint(r.fillStyle() + ";" + r.strokeStyle())
}

// paint emits the accumulated path and circles as styled elements.
func (r *Renderer) paint(style string) {
	if d := r.path.String(); d != "" {
		r.s.Path(d, style)
		r.path.Reset()
	}
	for _, c := range r.circles {
		r.s.Circle(round(c.x), round(c.y), round(c.r), style)
	}
	r.circles = r.circles[:0]
}

func (r *Renderer) strokeStyle() string {
	style := fmt.Sprintf("stroke:%s;stroke-width:%spx", cssColor(r.stroke), num(r.lineWidth))
	if r.stroke.A < 0xff {
		style += fmt.Sprintf(";stroke-opacity:%s", num(float64(r.stroke.A)/255.0))
	}
	if 0 < len(r.dash) {
		parts := make([]string, len(r.dash))
		for i, d := range r.dash {
			parts[i] = num(d)
		}
		style += ";stroke-dasharray:" + strings.Join(parts, ",")
	}
	return style
}

func (r *Renderer) fillStyle() string {
	style := "fill:" + cssColor(r.fill)
	if r.fill.A < 0xff {
		style += fmt.Sprintf(";fill-opacity:%s", num(float64(r.fill.A)/255.0))
	}
	return style
}

func (r *Renderer) setFontSize(size float64) error {
	if _, ok := r.faces[size]; !ok {
		face, err := opentype.NewFace(r.fnt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72.0,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return fmt.Errorf("svgr: sizing font: %w", err)
		}
		r.faces[size] = face
	}
	r.fontSize = size
	return nil
}

func (r *Renderer) SetFontSize(size float64) {
	// on error the previous face stays active and the document remains usable
	_ = r.setFontSize(size)
}

func (r *Renderer) Text(x, y float64, s string) {
	style := fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:%spx", cssColor(r.fill), num(r.fontSize))
	transform := fmt.Sprintf("translate(%s,%s)", num(x), num(y))
	if r.rotated {
		transform += fmt.Sprintf(" rotate(%s)", num(r.rotation*180.0/math.Pi))
	}
	r.s.Gtransform(transform)
	r.s.Text(0, 0, s, style)
	r.s.Gend()
}

func (r *Renderer) SetTextRotation(radians float64) {
	r.rotation = radians
	r.rotated = true
}

func (r *Renderer) ClearTextRotation() {
	r.rotation = 0.0
	r.rotated = false
}

func (r *Renderer) face() font.Face {
	return r.faces[r.fontSize]
}

func (r *Renderer) TextExtents(s string) wplot.TextMetrics {
	face := r.face()
	m := face.Metrics()
	return wplot.TextMetrics{
		Width:    fixedToFloat(font.MeasureString(face, s)),
		Height:   fixedToFloat(m.Ascent) + fixedToFloat(m.Descent),
		YBearing: -fixedToFloat(m.Ascent),
	}
}

func (r *Renderer) FontExtents() wplot.FontMetrics {
	m := r.face().Metrics()
	return wplot.FontMetrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func round(v float64) int {
	return int(math.Round(v))
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
