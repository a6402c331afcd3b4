package wplot

import "image/color"

// Curve is anything a plot can draw in its plot area. Data exposes the
// underlying dataset for bookkeeping, Draw renders into a plot area of
// width x height pixels, and Invalidate drops any cached geometry.
type Curve interface {
	Data() *Dataset
	Draw(r Renderer, width, height int)
	Invalidate()
}

// Dataset is a named series of control points drawn as a straight polyline
// through its X and Y axis projections. It is the base for other curve
// types, which hook invalidation to drop their caches when the points
// change.
type Dataset struct {
	points    []Point
	name      string
	legend    string
	lineColor color.RGBA
	lineStyle LineStyle
	xAxis     *Axis
	yAxis     *Axis

	update       notifier
	onInvalidate func()
}

// NewDataset returns an empty dataset with a solid white line.
func NewDataset() *Dataset {
	return &Dataset{
		lineColor: White,
		lineStyle: LineSolid,
	}
}

// Data returns the dataset itself, satisfying Curve.
func (d *Dataset) Data() *Dataset { return d }

// Points returns the control points.
func (d *Dataset) Points() []Point { return d.points }

// SetPoints replaces the control points, invalidating cached geometry.
func (d *Dataset) SetPoints(points []Point) {
	d.points = points
	d.Invalidate()
	d.update.Notify()
}

// SetPointsXY replaces the control points from separate X and Y slices.
func (d *Dataset) SetPointsXY(xs, ys []float64) {
	d.SetPoints(PointsXY(xs, ys))
}

// ClearPoints removes all control points.
func (d *Dataset) ClearPoints() {
	d.SetPoints(nil)
}

// Name returns the dataset nickname used by Plot.FindDataset.
func (d *Dataset) Name() string { return d.name }

// SetName sets the dataset nickname.
func (d *Dataset) SetName(name string) { d.name = name }

// Legend returns the dataset legend text.
func (d *Dataset) Legend() string { return d.legend }

// SetLegend sets the dataset legend text shown by Legend gadgets.
func (d *Dataset) SetLegend(legend string) {
	if legend == d.legend {
		return
	}
	d.legend = legend
	d.update.Notify()
}

// LineColor returns the stroke color.
func (d *Dataset) LineColor() color.RGBA { return d.lineColor }

// SetLineColor sets the stroke color.
func (d *Dataset) SetLineColor(c color.RGBA) {
	if c == d.lineColor {
		return
	}
	d.lineColor = c
	d.update.Notify()
}

// LineStyle returns the stroke dash style.
func (d *Dataset) LineStyle() LineStyle { return d.lineStyle }

// SetLineStyle sets the stroke dash style.
func (d *Dataset) SetLineStyle(style LineStyle) {
	if style == d.lineStyle {
		return
	}
	d.lineStyle = style
	d.update.Notify()
}

// XAxis returns the X axis, or nil when unset.
func (d *Dataset) XAxis() *Axis { return d.xAxis }

// SetXAxis sets the axis that projects the X coordinates.
func (d *Dataset) SetXAxis(axis *Axis) {
	if axis == d.xAxis {
		return
	}
	d.xAxis = axis
	d.Invalidate()
	d.update.Notify()
}

// YAxis returns the Y axis, or nil when unset.
func (d *Dataset) YAxis() *Axis { return d.yAxis }

// SetYAxis sets the axis that projects the Y coordinates.
func (d *Dataset) SetYAxis(axis *Axis) {
	if axis == d.yAxis {
		return
	}
	d.yAxis = axis
	d.Invalidate()
	d.update.Notify()
}

// OnUpdate connects an observer called when the dataset needs a redraw and
// returns its id.
func (d *Dataset) OnUpdate(fn func()) int {
	return d.update.Connect(fn)
}

// RemoveOnUpdate disconnects an OnUpdate observer.
func (d *Dataset) RemoveOnUpdate(id int) {
	d.update.Disconnect(id)
}

// Invalidate drops cached geometry. The base dataset caches nothing itself
// but forwards to the hook installed by embedding curve types.
func (d *Dataset) Invalidate() {
	if d.onInvalidate != nil {
		d.onInvalidate()
	}
}

// strokeLine strokes the accumulated path with the dataset line settings.
func (d *Dataset) strokeLine(r Renderer) {
	r.SetStrokeColor(d.lineColor)
	r.SetLineWidth(1.0)
	r.SetDash(d.lineStyle.Dashes())
	r.Stroke()
}

// polyline adds the projected points to the path as one connected line.
func (d *Dataset) polyline(r Renderer, points []Point, width, height int) {
	for i, p := range points {
		x := d.xAxis.Project(p.X, width)
		y := d.yAxis.Project(p.Y, -height)
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
}

// Draw strokes the control points as a straight polyline. It is a no-op
// without points or with either axis unset.
func (d *Dataset) Draw(r Renderer, width, height int) {
	if len(d.points) == 0 || d.xAxis == nil || d.yAxis == nil {
		return
	}
	d.polyline(r, d.points, width, height)
	d.strokeLine(r)
}
