package wplot

import "math"

// Legend draws a plot's title and one row per dataset legend: the legend
// text beside a short line sample in the dataset's color and style. It is a
// gadget of its own so a host can place it anywhere on its canvas.
type Legend struct {
	plot *Plot

	titleTextSize  float64
	textSize       float64
	lineSampleSize float64
	lineSpacing    float64
}

// NewLegend returns a legend for plot with default sizes.
func NewLegend(plot *Plot) *Legend {
	return &Legend{
		plot:           plot,
		titleTextSize:  12.0,
		textSize:       10.0,
		lineSampleSize: 50.0,
		lineSpacing:    1.2,
	}
}

// Plot returns the plot the legend describes.
func (l *Legend) Plot() *Plot { return l.plot }

// SetPlot changes the plot the legend describes.
func (l *Legend) SetPlot(plot *Plot) { l.plot = plot }

// TitleTextSize returns the title text size.
func (l *Legend) TitleTextSize() float64 { return l.titleTextSize }

// SetTitleTextSize sets the title text size.
func (l *Legend) SetTitleTextSize(size float64) { l.titleTextSize = size }

// TextSize returns the legend row text size.
func (l *Legend) TextSize() float64 { return l.textSize }

// SetTextSize sets the legend row text size.
func (l *Legend) SetTextSize(size float64) { l.textSize = size }

// LineSampleSize returns the sample line length in pixels.
func (l *Legend) LineSampleSize() float64 { return l.lineSampleSize }

// SetLineSampleSize sets the sample line length in pixels.
func (l *Legend) SetLineSampleSize(size float64) { l.lineSampleSize = size }

// LineSpacing returns the row advance as a factor of the font height.
func (l *Legend) LineSpacing() float64 { return l.lineSpacing }

// SetLineSpacing sets the row advance as a factor of the font height.
func (l *Legend) SetLineSpacing(spacing float64) { l.lineSpacing = spacing }

// Draw renders the legend onto a canvas of width x height pixels: the plot
// title centered on top, then per dataset a row with the line sample
// centered in the left half and the legend text centered in the right half.
func (l *Legend) Draw(r Renderer, width, height int, theme *Theme) {
	r.Rect(0.0, 0.0, float64(width), float64(height))
	r.SetFillColor(theme.Background)
	r.Fill()
	if l.plot == nil {
		return
	}

	y := extra
	if title := l.plot.Title(); title != "" {
		r.SetFillColor(theme.Foreground)
		r.SetFontSize(l.titleTextSize)
		fe := r.FontExtents()
		tm := r.TextExtents(title)
		r.Text((float64(width)-tm.Width)/2.0, y+fe.Ascent, title)
		y += fe.Height * l.lineSpacing
	}

	r.SetFontSize(l.textSize)
	fe := r.FontExtents()
	lineHeight := fe.Height * l.lineSpacing
	for _, c := range l.plot.Datasets() {
		d := c.Data()
		if d.Legend() == "" {
			continue
		}

		r.SetFillColor(theme.Foreground)
		r.SetFontSize(l.textSize)
		tm := r.TextExtents(d.Legend())
		r.Text((1.5*float64(width)-tm.Width)/2.0, y+fe.Ascent, d.Legend())

		x := math.Round((float64(width)/2.0 - l.lineSampleSize) / 2.0)
		ly := math.Floor(y+lineHeight/2.0) + 0.5
		r.MoveTo(x, ly)
		r.LineTo(x+l.lineSampleSize, ly)
		r.SetStrokeColor(d.LineColor())
		r.SetLineWidth(1.0)
		r.SetDash(d.LineStyle().Dashes())
		r.Stroke()

		y += lineHeight
	}
}
