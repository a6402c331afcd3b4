package wplot

import "math"

// Sample draws a single line sample for one dataset, for hosts that build
// their own legend arrangements.
type Sample struct {
	curve Curve
}

// NewSample returns a sample for the given curve, which may be nil.
func NewSample(curve Curve) *Sample {
	return &Sample{curve: curve}
}

// Curve returns the sampled curve, or nil.
func (s *Sample) Curve() Curve { return s.curve }

// SetCurve swaps the sampled curve.
func (s *Sample) SetCurve(curve Curve) { s.curve = curve }

// Draw renders the sample onto a canvas of width x height pixels: one
// vertically centered line in the dataset's color and style, inset a tenth
// of the width on the left and a fifth on the right.
func (s *Sample) Draw(r Renderer, width, height int, theme *Theme) {
	r.Rect(0.0, 0.0, float64(width), float64(height))
	r.SetFillColor(theme.Background)
	r.Fill()
	if s.curve == nil {
		return
	}
	d := s.curve.Data()

	w := float64(width)
	y := math.Floor(float64(height)/2.0) + 0.5
	r.MoveTo(w/10.0, y)
	r.LineTo(w-w/5.0, y)
	r.SetStrokeColor(d.LineColor())
	r.SetLineWidth(1.0)
	r.SetDash(d.LineStyle().Dashes())
	r.Stroke()
}
