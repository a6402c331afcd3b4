package wplot

import "image/color"

// recorder is a Renderer that records draw operations for assertions. Text
// metrics are synthesized from the font size so tests are deterministic.
type recorder struct {
	ops      []op
	fontSize float64
}

type op struct {
	name string
	args []float64
	text string
}

func (r *recorder) record(name string, text string, args ...float64) {
	r.ops = append(r.ops, op{name: name, args: args, text: text})
}

func (r *recorder) count(name string) int {
	n := 0
	for _, o := range r.ops {
		if o.name == name {
			n++
		}
	}
	return n
}

func (r *recorder) texts() []string {
	var ts []string
	for _, o := range r.ops {
		if o.name == "text" {
			ts = append(ts, o.text)
		}
	}
	return ts
}

func (r *recorder) find(name string) []op {
	var os []op
	for _, o := range r.ops {
		if o.name == name {
			os = append(os, o)
		}
	}
	return os
}

func (r *recorder) Save()                     { r.record("save", "") }
func (r *recorder) Restore()                  { r.record("restore", "") }
func (r *recorder) Translate(x, y float64)    { r.record("translate", "", x, y) }
func (r *recorder) ClipRect(x, y, w, h float64) {
	r.record("clip", "", x, y, w, h)
}
func (r *recorder) MoveTo(x, y float64)        { r.record("moveto", "", x, y) }
func (r *recorder) LineTo(x, y float64)        { r.record("lineto", "", x, y) }
func (r *recorder) ClosePath()                 { r.record("close", "") }
func (r *recorder) Rect(x, y, w, h float64)    { r.record("rect", "", x, y, w, h) }
func (r *recorder) Circle(x, y, rad float64)   { r.record("circle", "", x, y, rad) }
func (r *recorder) SetStrokeColor(c color.RGBA) { r.record("strokecolor", "") }
func (r *recorder) SetFillColor(c color.RGBA)   { r.record("fillcolor", "") }
func (r *recorder) SetLineWidth(w float64)     { r.record("linewidth", "", w) }
func (r *recorder) SetDash(pattern []float64)  { r.record("dash", "") }
func (r *recorder) Stroke()                    { r.record("stroke", "") }
func (r *recorder) Fill()                      { r.record("fill", "") }
func (r *recorder) FillStroke()                { r.record("fillstroke", "") }
func (r *recorder) SetFontSize(size float64)   { r.fontSize = size }
func (r *recorder) Text(x, y float64, s string) { r.record("text", s, x, y) }
func (r *recorder) SetTextRotation(a float64)  { r.record("rotation", "", a) }
func (r *recorder) ClearTextRotation()         { r.record("clearrotation", "") }

func (r *recorder) TextExtents(s string) TextMetrics {
	return TextMetrics{
		Width:    0.6 * r.fontSize * float64(len(s)),
		Height:   r.fontSize,
		YBearing: -0.8 * r.fontSize,
	}
}

func (r *recorder) FontExtents() FontMetrics {
	return FontMetrics{
		Ascent:  0.8 * r.fontSize,
		Descent: 0.2 * r.fontSize,
		Height:  1.2 * r.fontSize,
	}
}
