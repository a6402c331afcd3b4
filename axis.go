package wplot

import (
	"fmt"
	"log"
	"math"
)

// AxisMode selects the projection an axis applies to data values.
type AxisMode int

const (
	AxisLinear AxisMode = iota
	AxisLog2            // log-octave
	AxisLog10           // log-decade
)

func (m AxisMode) String() string {
	switch m {
	case AxisLinear:
		return "Linear"
	case AxisLog2:
		return "Log2"
	case AxisLog10:
		return "Log10"
	}
	return "Invalid"
}

// extra is the breathing space between ticks, labels and legends in pixels.
const extra = 2.0

// Axis maps a data range onto a pixel extent, draws the tick scale with its
// labels and legend, and draws grid lines across the plot area. The same
// axis can be shared by several datasets and several plots.
//
// Bounds are kept in data (linear) space; projection and tick placement work
// in mode space, the data value passed through the mode transform. With
// auto-interval on, the major tick interval follows the mode-space span in
// decade steps.
type Axis struct {
	mode           AxisMode
	lowerBound     float64
	upperBound     float64
	majorInterval  float64
	autoInterval   bool
	minorDivisions uint
	tickSize       float64
	labelSize      float64
	majorGrid      LineStyle
	minorGrid      LineStyle
	legend         string
	legendSize     float64

	adjustment *Adjustment
	adjChanged int
	adjValue   int
	inAdjust   bool

	// mode-space working range, narrowed to the adjustment window when bound
	lowerMode     float64
	upperMode     float64
	minorInterval float64

	update notifier
}

// NewAxis returns a linear axis over [0,1] with automatic tick intervals,
// five minor divisions, solid major and dashed minor grid lines.
func NewAxis() *Axis {
	a := &Axis{
		mode:           AxisLinear,
		lowerBound:     0.0,
		upperBound:     1.0,
		majorInterval:  1.0,
		autoInterval:   true,
		minorDivisions: 5,
		tickSize:       10.0,
		labelSize:      10.0,
		majorGrid:      LineSolid,
		minorGrid:      LineDash,
		legendSize:     14.0,
	}
	a.updateBounds()
	return a
}

func (a *Axis) modeValue(v float64) float64 {
	switch a.mode {
	case AxisLog2:
		return math.Log2(v)
	case AxisLog10:
		return math.Log10(v)
	}
	return v
}

func (a *Axis) invModeValue(v float64) float64 {
	switch a.mode {
	case AxisLog2:
		return math.Exp2(v)
	case AxisLog10:
		return math.Pow(10.0, v)
	}
	return v
}

// updateBounds reorders swapped bounds, recomputes the mode-space range and,
// with auto-interval on, picks the tick intervals for the span.
func (a *Axis) updateBounds() {
	if a.upperBound < a.lowerBound {
		log.Printf("wplot: axis bounds swapped, lower %g above upper %g", a.lowerBound, a.upperBound)
		a.lowerBound, a.upperBound = a.upperBound, a.lowerBound
	}
	a.lowerMode = a.modeValue(a.lowerBound)
	a.upperMode = a.modeValue(a.upperBound)

	if a.autoInterval {
		span := a.upperMode - a.lowerMode
		switch {
		case 10000.0 <= span:
			a.majorInterval = 10000.0
		case 1000.0 <= span:
			a.majorInterval = 1000.0
		case 100.0 <= span:
			a.majorInterval = 100.0
		case 10.0 <= span:
			a.majorInterval = 10.0
		default:
			a.majorInterval = 1.0
		}
	}
	if a.minorDivisions != 0 {
		a.minorInterval = a.majorInterval / float64(a.minorDivisions)
	} else {
		a.minorInterval = a.majorInterval
	}
}

// Mode returns the axis projection mode.
func (a *Axis) Mode() AxisMode { return a.mode }

// SetMode sets the axis projection mode.
func (a *Axis) SetMode(mode AxisMode) {
	if mode == a.mode {
		return
	}
	a.mode = mode
	a.updateBounds()
	a.configureAdjustment()
	a.update.Notify()
}

// LowerBound returns the lower bound in data space.
func (a *Axis) LowerBound() float64 { return a.lowerBound }

// SetLowerBound sets the lower bound in data space.
func (a *Axis) SetLowerBound(lower float64) {
	if lower == a.lowerBound {
		return
	}
	a.lowerBound = lower
	a.updateBounds()
	a.pushAdjustment()
	a.update.Notify()
}

// UpperBound returns the upper bound in data space.
func (a *Axis) UpperBound() float64 { return a.upperBound }

// SetUpperBound sets the upper bound in data space.
func (a *Axis) SetUpperBound(upper float64) {
	if upper == a.upperBound {
		return
	}
	a.upperBound = upper
	a.updateBounds()
	a.pushAdjustment()
	a.update.Notify()
}

// Range returns both bounds in data space.
func (a *Axis) Range() (lower, upper float64) {
	return a.lowerBound, a.upperBound
}

// Configure sets the mode and both bounds at once with a single update.
func (a *Axis) Configure(mode AxisMode, lower, upper float64) {
	a.mode = mode
	a.lowerBound = lower
	a.upperBound = upper
	a.updateBounds()
	a.configureAdjustment()
	a.update.Notify()
}

// MajorInterval returns the major tick interval in mode space.
func (a *Axis) MajorInterval() float64 { return a.majorInterval }

// SetMajorInterval fixes the major tick interval and turns auto-interval off.
func (a *Axis) SetMajorInterval(interval float64) {
	a.autoInterval = false
	if interval == a.majorInterval {
		return
	}
	a.majorInterval = interval
	a.updateBounds()
	a.update.Notify()
}

// AutoInterval returns whether the major interval follows the bounds.
func (a *Axis) AutoInterval() bool { return a.autoInterval }

// SetAutoInterval lets the major interval follow the bounds again.
func (a *Axis) SetAutoInterval(auto bool) {
	if auto == a.autoInterval {
		return
	}
	a.autoInterval = auto
	a.updateBounds()
	a.update.Notify()
}

// MinorDivisions returns the number of minor divisions per major interval.
func (a *Axis) MinorDivisions() uint { return a.minorDivisions }

// SetMinorDivisions sets the number of minor divisions per major interval,
// zero for none.
func (a *Axis) SetMinorDivisions(divisions uint) {
	if divisions == a.minorDivisions {
		return
	}
	a.minorDivisions = divisions
	a.updateBounds()
	a.update.Notify()
}

// TickSize returns the major tick length in pixels.
func (a *Axis) TickSize() float64 { return a.tickSize }

// SetTickSize sets the major tick length in pixels, zero for no ticks.
// Minor ticks are drawn at six tenths of the major length.
func (a *Axis) SetTickSize(size float64) {
	if size == a.tickSize {
		return
	}
	a.tickSize = size
	a.update.Notify()
}

// LabelSize returns the tick label text size.
func (a *Axis) LabelSize() float64 { return a.labelSize }

// SetLabelSize sets the tick label text size, zero for no labels.
func (a *Axis) SetLabelSize(size float64) {
	if size == a.labelSize {
		return
	}
	a.labelSize = size
	a.update.Notify()
}

// MajorGrid returns the major grid line style.
func (a *Axis) MajorGrid() LineStyle { return a.majorGrid }

// SetMajorGrid sets the major grid line style, LineNone for no major grid.
func (a *Axis) SetMajorGrid(style LineStyle) {
	if style == a.majorGrid {
		return
	}
	a.majorGrid = style
	a.update.Notify()
}

// MinorGrid returns the minor grid line style.
func (a *Axis) MinorGrid() LineStyle { return a.minorGrid }

// SetMinorGrid sets the minor grid line style, LineNone for no minor grid.
func (a *Axis) SetMinorGrid(style LineStyle) {
	if style == a.minorGrid {
		return
	}
	a.minorGrid = style
	a.update.Notify()
}

// Legend returns the axis legend text.
func (a *Axis) Legend() string { return a.legend }

// SetLegend sets the axis legend text, empty for none. The legend is drawn
// along the axis, rotated for vertical axes.
func (a *Axis) SetLegend(legend string) {
	if legend == a.legend {
		return
	}
	a.legend = legend
	a.update.Notify()
}

// LegendSize returns the legend text size.
func (a *Axis) LegendSize() float64 { return a.legendSize }

// SetLegendSize sets the legend text size.
func (a *Axis) SetLegendSize(size float64) {
	if size == a.legendSize {
		return
	}
	a.legendSize = size
	a.update.Notify()
}

// OnUpdate connects an observer called whenever the axis changes in a way
// that requires a redraw, and returns its id.
func (a *Axis) OnUpdate(fn func()) int {
	return a.update.Connect(fn)
}

// RemoveOnUpdate disconnects an OnUpdate observer.
func (a *Axis) RemoveOnUpdate(id int) {
	a.update.Disconnect(id)
}

// Freeze suspends update notifications until the matching Thaw; changes in
// between coalesce into a single notification.
func (a *Axis) Freeze() { a.update.Freeze() }

// Thaw resumes update notifications.
func (a *Axis) Thaw() { a.update.Thaw() }

// Adjustment returns the bound adjustment, or nil.
func (a *Axis) Adjustment() *Adjustment { return a.adjustment }

// SetAdjustment binds the axis to adj, or unbinds it when adj is nil. The
// adjustment is configured to span the axis bounds in mode space with the
// page covering the full span; moving its value then narrows the displayed
// window without touching the bounds, and changing its limits moves the
// bounds themselves.
func (a *Axis) SetAdjustment(adj *Adjustment) {
	if adj == a.adjustment {
		return
	}
	if a.adjustment != nil {
		a.adjustment.RemoveOnChanged(a.adjChanged)
		a.adjustment.RemoveOnValueChanged(a.adjValue)
	}
	a.adjustment = adj
	if adj != nil {
		a.adjChanged = adj.OnChanged(a.adjustmentChanged)
		a.adjValue = adj.OnValueChanged(a.adjustmentValueChanged)
		a.configureAdjustment()
	} else {
		a.updateBounds()
	}
	a.update.Notify()
}

// configureAdjustment pushes the full mode-space range into the adjustment.
func (a *Axis) configureAdjustment() {
	if a.adjustment == nil || a.inAdjust {
		return
	}
	a.inAdjust = true
	page := a.upperMode - a.lowerMode
	a.adjustment.Configure(a.lowerMode, a.lowerMode, a.upperMode, page/10.0, page/2.0, page)
	a.inAdjust = false
}

// pushAdjustment pushes changed bounds into the adjustment limits.
func (a *Axis) pushAdjustment() {
	if a.adjustment == nil || a.inAdjust {
		return
	}
	a.inAdjust = true
	a.adjustment.SetLower(a.lowerMode)
	a.adjustment.SetUpper(a.upperMode)
	a.inAdjust = false
}

func (a *Axis) adjustmentChanged() {
	if a.inAdjust {
		return
	}
	a.inAdjust = true
	a.lowerBound = a.invModeValue(a.adjustment.Lower())
	a.upperBound = a.invModeValue(a.adjustment.Upper())
	a.updateBounds()
	a.applyAdjustmentWindow()
	a.inAdjust = false
	a.update.Notify()
}

func (a *Axis) adjustmentValueChanged() {
	if a.inAdjust {
		return
	}
	a.applyAdjustmentWindow()
	a.update.Notify()
}

// applyAdjustmentWindow narrows the working range to the adjustment window.
// The stored bounds stay untouched.
func (a *Axis) applyAdjustmentWindow() {
	a.lowerMode = a.adjustment.Value()
	a.upperMode = a.adjustment.Value() + a.adjustment.PageSize()
}

// DisplayRange returns the displayed range in data space: the adjustment
// window when bound, the full bounds otherwise.
func (a *Axis) DisplayRange() (lower, upper float64) {
	if a.adjustment != nil {
		return a.invModeValue(a.adjustment.Value()),
			a.invModeValue(a.adjustment.Value() + a.adjustment.PageSize())
	}
	return a.lowerBound, a.upperBound
}

// Project maps a data value onto a pixel extent. The magnitude of norm is
// the extent in pixels; a negative norm mirrors the scale, which places the
// data minimum at the bottom of a Y-down extent.
func (a *Axis) Project(value float64, norm int) float64 {
	return a.LinearProject(a.modeValue(value), norm)
}

// LinearProject is Project for a value already in mode space.
func (a *Axis) LinearProject(value float64, norm int) float64 {
	scale := math.Abs(float64(norm)) - 1.0
	t := (value - a.lowerMode) / (a.upperMode - a.lowerMode)
	if norm < 0 {
		return (1.0 - t) * scale
	}
	return t * scale
}

// Size returns the pixels the axis scale needs across its orientation:
// label band plus tick band plus legend band.
func (a *Axis) Size() float64 {
	size := a.labelSize
	if 0.0 < a.tickSize {
		size += a.tickSize + extra
	}
	if a.legend != "" {
		size += a.legendSize + extra
	}
	return size
}

// majorStart returns the first major tick position at or below the lower
// working bound.
func (a *Axis) majorStart() float64 {
	return math.Floor(a.lowerMode/a.majorInterval) * a.majorInterval
}

// DrawGrid draws the axis grid lines across a plot area of width x height.
// A horizontal axis draws vertical lines, a vertical axis horizontal ones.
func (a *Axis) DrawGrid(r Renderer, orientation Orientation, width, height int, theme *Theme) {
	limit := math.Ceil(a.upperMode)
	start := a.majorStart()

	if a.majorGrid != LineNone {
		r.SetStrokeColor(theme.Grid)
		r.SetLineWidth(1.0)
		r.SetDash(a.majorGrid.Dashes())
		for i := 0; start+float64(i)*a.majorInterval <= limit; i++ {
			a.gridLine(r, orientation, width, height, start+float64(i)*a.majorInterval)
		}
		r.Stroke()
	}

	if a.minorGrid != LineNone && a.minorInterval < a.majorInterval {
		r.SetStrokeColor(theme.Grid)
		r.SetLineWidth(0.5)
		r.SetDash(a.minorGrid.Dashes())
		for i := 0; start+float64(i)*a.majorInterval <= limit; i++ {
			xy := start + float64(i)*a.majorInterval
			if a.mode == AxisLog10 {
				for k := 2; k < 10; k++ {
					a.gridLine(r, orientation, width, height, xy+math.Log10(float64(k)))
				}
			} else {
				for j := 1; float64(j)*a.minorInterval < a.majorInterval; j++ {
					a.gridLine(r, orientation, width, height, xy+float64(j)*a.minorInterval)
				}
			}
		}
		r.Stroke()
	}
}

// gridLine adds one pixel-snapped grid line at mode-space position xy.
func (a *Axis) gridLine(r Renderer, orientation Orientation, width, height int, xy float64) {
	if orientation == Horizontal {
		x := math.Floor(a.LinearProject(xy, width)) + 0.5
		r.MoveTo(x, 0.5)
		r.LineTo(x, float64(height))
	} else {
		y := math.Floor(a.LinearProject(xy, -height)) + 0.5
		r.MoveTo(0.5, y)
		r.LineTo(float64(width), y)
	}
}

// DrawAxis draws the axis scale into a widget rect of width x height: the
// frame edge facing the plot area, major and minor ticks, tick labels and
// the legend. pack tells which side of the plot area the rect sits on.
func (a *Axis) DrawAxis(r Renderer, orientation Orientation, pack Pack, width, height int, theme *Theme) {
	r.SetStrokeColor(theme.Foreground)
	r.SetDash(nil)
	r.SetLineWidth(1.0)

	// frame edge adjacent to the plot area
	if orientation == Horizontal {
		y := 0.5
		if pack == PackEnd {
			y = float64(height) - 0.5
		}
		r.MoveTo(0.0, y)
		r.LineTo(float64(width), y)
	} else {
		x := float64(width) - 0.5
		if pack == PackEnd {
			x = 0.5
		}
		r.MoveTo(x, 0.0)
		r.LineTo(x, float64(height))
	}
	r.Stroke()

	limit := math.Ceil(a.upperMode)
	start := a.majorStart()

	if 0.0 < a.tickSize {
		for i := 0; start+float64(i)*a.majorInterval <= limit; i++ {
			a.tick(r, orientation, pack, width, height, start+float64(i)*a.majorInterval, a.tickSize)
		}
		r.Stroke()

		r.SetLineWidth(0.5)
		for i := 0; start+float64(i)*a.majorInterval <= a.upperMode; i++ {
			xy := start + float64(i)*a.majorInterval
			if a.mode == AxisLog10 {
				for k := 2; k < 10; k++ {
					a.tick(r, orientation, pack, width, height, xy+math.Log10(float64(k)), 0.6*a.tickSize)
				}
			} else {
				for j := 1; float64(j)*a.minorInterval < a.majorInterval; j++ {
					a.tick(r, orientation, pack, width, height, xy+float64(j)*a.minorInterval, 0.6*a.tickSize)
				}
			}
		}
		r.Stroke()
	}

	if 0.0 < a.labelSize {
		r.SetFillColor(theme.Foreground)
		r.SetFontSize(a.labelSize)
		for i := 0; start+float64(i)*a.majorInterval <= a.upperMode; i++ {
			a.label(r, orientation, pack, width, height, start+float64(i)*a.majorInterval)
		}
	}

	if a.legend != "" {
		a.drawLegend(r, orientation, pack, width, height, theme)
	}
}

// tick adds one pixel-snapped tick of the given length at mode-space
// position xy. Ticks grow from the plot-area edge into the axis rect.
func (a *Axis) tick(r Renderer, orientation Orientation, pack Pack, width, height int, xy, length float64) {
	if orientation == Horizontal {
		pos := math.Floor(a.LinearProject(xy, width)) + 0.5
		if float64(width) < pos {
			return
		}
		if pack == PackStart {
			r.MoveTo(pos, 0.0)
			r.LineTo(pos, length)
		} else {
			r.MoveTo(pos, float64(height))
			r.LineTo(pos, float64(height)-length)
		}
	} else {
		pos := math.Floor(a.LinearProject(xy, -height)) + 0.5
		if float64(height) < pos {
			return
		}
		if pack == PackStart {
			r.MoveTo(float64(width), pos)
			r.LineTo(float64(width)-length, pos)
		} else {
			r.MoveTo(0.0, pos)
			r.LineTo(length, pos)
		}
	}
}

// labelText formats a tick label. Decade mode labels the data value of the
// decade, the other modes label the mode-space position itself.
func (a *Axis) labelText(xy float64) string {
	if a.mode == AxisLog10 {
		return fmt.Sprintf("%g", math.Pow(10.0, xy))
	}
	return fmt.Sprintf("%g", xy)
}

// label draws one tick label centered on its tick and clamped to the rect.
func (a *Axis) label(r Renderer, orientation Orientation, pack Pack, width, height int, xy float64) {
	text := a.labelText(xy)
	tm := r.TextExtents(text)

	band := 0.0
	if 0.0 < a.tickSize {
		band = a.tickSize + extra
	}

	if orientation == Horizontal {
		pos := math.Floor(a.LinearProject(xy, width)) + 0.5
		x := pos - tm.Width/2.0
		if float64(width)-1.0-tm.Width < x {
			x = float64(width) - 1.0 - tm.Width
		}
		if x < 0.0 {
			x = 0.0
		}
		y := band - tm.YBearing + extra
		if pack == PackEnd {
			y = float64(height) - 1.0 - band - extra
		}
		r.Text(x, y, text)
	} else {
		pos := math.Floor(a.LinearProject(xy, -height)) + 0.5
		y := pos - tm.YBearing/2.0
		if float64(height)-1.0 < y {
			y = float64(height) - 1.0
		}
		if y < -tm.YBearing {
			y = -tm.YBearing
		}
		x := float64(width) - 1.0 - band - tm.Width - extra
		if pack == PackEnd {
			x = band + extra
		}
		r.Text(x, y, text)
	}
}

// drawLegend draws the axis legend beyond the label band, rotated to read
// along vertical axes.
func (a *Axis) drawLegend(r Renderer, orientation Orientation, pack Pack, width, height int, theme *Theme) {
	r.SetFillColor(theme.Foreground)
	r.SetFontSize(a.legendSize)
	tm := r.TextExtents(a.legend)

	ends := a.labelSize
	if 0.0 < a.tickSize {
		ends += a.tickSize + extra
	}

	if orientation == Horizontal {
		x := (float64(width) - tm.Width) / 2.0
		y := ends - tm.YBearing + extra
		if pack == PackEnd {
			y = float64(height) - 1.0 - ends - extra
		}
		r.Text(x, y, a.legend)
	} else if pack == PackStart {
		// left side, reading bottom-up
		r.SetTextRotation(-math.Pi / 2.0)
		r.Text(float64(width)-1.0-ends-extra, (float64(height)+tm.Width)/2.0, a.legend)
		r.ClearTextRotation()
	} else {
		// right side, reading top-down
		r.SetTextRotation(math.Pi / 2.0)
		r.Text(ends+extra, (float64(height)-tm.Width)/2.0, a.legend)
		r.ClearTextRotation()
	}
}
