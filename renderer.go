package wplot

import "image/color"

// TextMetrics is the measured extent of a single string at the current font
// size. YBearing is the distance from the baseline to the top of the inked
// extent and is negative for text above the baseline.
type TextMetrics struct {
	Width    float64
	Height   float64
	YBearing float64
}

// FontMetrics is the vertical geometry of the current font at the current
// font size.
type FontMetrics struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// Renderer is the vector drawing context a plot draws through. Coordinates
// are device pixels with the origin in the top-left corner and Y growing
// downward. Path segments accumulate until a Stroke, Fill or FillStroke
// consumes them.
//
// Backends for go-chart, svgo and gonum/plot canvases live under renderers/.
type Renderer interface {
	// Save pushes the current translation and clip, Restore pops it.
	Save()
	Restore()
	Translate(x, y float64)
	ClipRect(x, y, w, h float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	Rect(x, y, w, h float64)
	Circle(x, y, radius float64)

	SetStrokeColor(c color.RGBA)
	SetFillColor(c color.RGBA)
	SetLineWidth(w float64)
	// SetDash sets the stroke dash pattern, nil for a solid line.
	SetDash(pattern []float64)
	Stroke()
	Fill()
	// FillStroke fills the current path and strokes its outline.
	FillStroke()

	SetFontSize(size float64)
	// Text draws s with the baseline starting at (x,y).
	Text(x, y float64, s string)
	// SetTextRotation rotates subsequent text around its anchor point,
	// radians, positive turning clockwise in the Y-down device space.
	// ClearTextRotation resets it.
	SetTextRotation(radians float64)
	ClearTextRotation()
	TextExtents(s string) TextMetrics
	FontExtents() FontMetrics
}
