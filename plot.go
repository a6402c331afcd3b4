package wplot

import "image/color"

// plotAxis is the per-plot bookkeeping for one axis.
type plotAxis struct {
	pack        Pack
	orientation Orientation
	hidden      bool
	rect        Rect
	updateID    int
}

// plotCurve is the per-plot bookkeeping for one dataset.
type plotCurve struct {
	solo     bool
	updateID int
}

// Plot composes axes and datasets into one canvas. Axes stack against the
// plot area on their packed sides, datasets draw inside it, and the current
// X and Y axes supply the grid. Axes and datasets are reference counted so
// they can be shared; changes on either mark the plot damaged, coalescing
// until the next Draw.
type Plot struct {
	title      string
	border     float64
	fill       color.RGBA
	enableFill bool

	axes     bag[*Axis, plotAxis]
	datasets bag[Curve, plotCurve]
	xAxis    *Axis
	yAxis    *Axis

	area     Rect
	laidOut  Rect
	solo     int
	relayout bool
	damage   bool
	onDamage func()
}

// NewPlot returns an empty plot with a four pixel axis spacing border.
func NewPlot() *Plot {
	return &Plot{
		border:   4.0,
		relayout: true,
	}
}

// Title returns the plot title. The plot itself does not render it; Legend
// gadgets do.
func (p *Plot) Title() string { return p.title }

// SetTitle sets the plot title.
func (p *Plot) SetTitle(title string) {
	if title == p.title {
		return
	}
	p.title = title
	p.QueueDraw()
}

// Border returns the spacing between stacked axes in pixels.
func (p *Plot) Border() float64 { return p.border }

// SetBorder sets the spacing between stacked axes in pixels.
func (p *Plot) SetBorder(border float64) {
	if border == p.border {
		return
	}
	p.border = border
	p.relayout = true
	p.QueueDraw()
}

// Fill returns the plot area fill color and whether it is drawn.
func (p *Plot) Fill() (c color.RGBA, enabled bool) {
	return p.fill, p.enableFill
}

// SetFill sets the plot area fill color and enables it.
func (p *Plot) SetFill(c color.RGBA) {
	p.fill = c
	p.enableFill = true
	p.QueueDraw()
}

// EnableFill toggles the plot area fill without changing its color.
func (p *Plot) EnableFill(enable bool) {
	if enable == p.enableFill {
		return
	}
	p.enableFill = enable
	p.QueueDraw()
}

// OnDamage installs the hook called when the plot first becomes damaged
// after a draw. A widget host schedules its redraw here.
func (p *Plot) OnDamage(fn func()) {
	p.onDamage = fn
}

// Damaged reports whether the plot needs a redraw.
func (p *Plot) Damaged() bool { return p.damage }

// QueueDraw marks the plot damaged. Repeated damage before the next Draw
// coalesces; the hook fires only on the first mark.
func (p *Plot) QueueDraw() {
	if p.damage {
		return
	}
	p.damage = true
	if p.onDamage != nil {
		p.onDamage()
	}
}

// AddAxis adds an axis on the given side, or bumps its reference count when
// already present, keeping the existing placement. Hidden axes take part in
// bookkeeping but not in layout or drawing.
func (p *Plot) AddAxis(axis *Axis, hidden bool, pack Pack, orientation Orientation) {
	if axis == nil {
		return
	}
	if !p.axes.add(axis) {
		*p.axes.data(axis) = plotAxis{
			pack:        pack,
			orientation: orientation,
			hidden:      hidden,
			updateID:    axis.OnUpdate(p.QueueDraw),
		}
		p.relayout = true
	}
	p.QueueDraw()
}

// RemoveAxis drops one reference to the axis, detaching it when the last
// reference goes. A removed current axis clears the current axis slot.
func (p *Plot) RemoveAxis(axis *Axis) {
	d := p.axes.data(axis)
	if d == nil {
		return
	}
	id := d.updateID
	if p.axes.remove(axis) {
		axis.RemoveOnUpdate(id)
		if p.xAxis == axis {
			p.xAxis = nil
		}
		if p.yAxis == axis {
			p.yAxis = nil
		}
		p.relayout = true
	}
	p.QueueDraw()
}

// ClearAxes detaches and drops all axes regardless of reference counts.
func (p *Plot) ClearAxes() {
	p.axes.foreach(func(axis *Axis, d *plotAxis) bool {
		axis.RemoveOnUpdate(d.updateID)
		return true
	})
	p.axes.empty()
	p.xAxis, p.yAxis = nil, nil
	p.relayout = true
	p.QueueDraw()
}

// HideAxis hides or shows an axis without dropping it.
func (p *Plot) HideAxis(axis *Axis, hidden bool) {
	d := p.axes.data(axis)
	if d == nil || d.hidden == hidden {
		return
	}
	d.hidden = hidden
	p.relayout = true
	p.QueueDraw()
}

// XAxis returns the current X axis supplying the vertical grid, or nil.
func (p *Plot) XAxis() *Axis { return p.xAxis }

// YAxis returns the current Y axis supplying the horizontal grid, or nil.
func (p *Plot) YAxis() *Axis { return p.yAxis }

// SetXAxis makes an already added axis the current X axis, or nil for none.
func (p *Plot) SetXAxis(axis *Axis) {
	if axis != nil && !p.axes.contains(axis) {
		return
	}
	if axis == p.xAxis {
		return
	}
	p.xAxis = axis
	p.QueueDraw()
}

// SetYAxis makes an already added axis the current Y axis, or nil for none.
func (p *Plot) SetYAxis(axis *Axis) {
	if axis != nil && !p.axes.contains(axis) {
		return
	}
	if axis == p.yAxis {
		return
	}
	p.yAxis = axis
	p.QueueDraw()
}

// SetAxis makes an already added axis current for its stored orientation.
func (p *Plot) SetAxis(axis *Axis) {
	d := p.axes.data(axis)
	if d == nil {
		return
	}
	if d.orientation == Horizontal {
		p.SetXAxis(axis)
	} else {
		p.SetYAxis(axis)
	}
}

// AxisAt returns the visible axis whose rect contains the canvas position,
// for hit testing in interactive hosts.
func (p *Plot) AxisAt(x, y float64) (*Axis, bool) {
	return p.axes.find(func(axis *Axis, d *plotAxis) bool {
		return !d.hidden && d.rect.Contains(x, y)
	})
}

// AddDataset adds a curve, or bumps its reference count when already
// present. A newly added curve brings its axes along on the given sides,
// and they become current when no current axis is set yet.
func (p *Plot) AddDataset(c Curve, xPack, yPack Pack) {
	if c == nil {
		return
	}
	if !p.datasets.add(c) {
		d := c.Data()
		p.datasets.data(c).updateID = d.OnUpdate(p.QueueDraw)
		if x := d.XAxis(); x != nil {
			p.AddAxis(x, false, xPack, Horizontal)
			if p.xAxis == nil {
				p.xAxis = x
			}
		}
		if y := d.YAxis(); y != nil {
			p.AddAxis(y, false, yPack, Vertical)
			if p.yAxis == nil {
				p.yAxis = y
			}
		}
	}
	p.QueueDraw()
}

// RemoveDataset drops one reference to the curve, detaching it and dropping
// its axes when the last reference goes.
func (p *Plot) RemoveDataset(c Curve) {
	d := p.datasets.data(c)
	if d == nil {
		return
	}
	id, solo := d.updateID, d.solo
	if p.datasets.remove(c) {
		ds := c.Data()
		ds.RemoveOnUpdate(id)
		if solo {
			p.solo--
		}
		if x := ds.XAxis(); x != nil {
			p.RemoveAxis(x)
		}
		if y := ds.YAxis(); y != nil {
			p.RemoveAxis(y)
		}
	}
	p.QueueDraw()
}

// ClearDatasets detaches and drops all datasets and their axis references
// regardless of reference counts.
func (p *Plot) ClearDatasets() {
	p.datasets.foreach(func(c Curve, d *plotCurve) bool {
		ds := c.Data()
		ds.RemoveOnUpdate(d.updateID)
		if x := ds.XAxis(); x != nil {
			p.RemoveAxis(x)
		}
		if y := ds.YAxis(); y != nil {
			p.RemoveAxis(y)
		}
		return true
	})
	p.datasets.empty()
	p.solo = 0
	p.QueueDraw()
}

// FindDataset returns the dataset with the given nickname.
func (p *Plot) FindDataset(name string) (Curve, bool) {
	return p.datasets.find(func(c Curve, d *plotCurve) bool {
		return c.Data().Name() == name
	})
}

// Datasets returns the curves in insertion order.
func (p *Plot) Datasets() []Curve {
	cs := make([]Curve, 0, p.datasets.len())
	p.datasets.foreach(func(c Curve, d *plotCurve) bool {
		cs = append(cs, c)
		return true
	})
	return cs
}

// SoloDataset flags or unflags a curve as solo. While any curve is solo,
// only solo curves draw.
func (p *Plot) SoloDataset(c Curve, solo bool) {
	d := p.datasets.data(c)
	if d == nil || d.solo == solo {
		return
	}
	d.solo = solo
	if solo {
		p.solo++
	} else {
		p.solo--
	}
	p.QueueDraw()
}

// PlotArea returns the plot area rect computed by the last layout.
func (p *Plot) PlotArea() Rect { return p.area }

// layout stacks the visible axes against the content rect in two passes:
// the first accumulates each side's offsets to find the plot area, the
// second spans every axis rect along it.
func (p *Plot) layout(content Rect) {
	var xStart, xEnd, yStart, yEnd float64
	p.axes.foreach(func(axis *Axis, d *plotAxis) bool {
		if d.hidden {
			d.rect = Rect{}
			return true
		}
		size := axis.Size()
		if d.orientation == Vertical {
			if d.pack == PackStart {
				d.rect.X = content.X + xStart
				xStart += size + p.border
			} else {
				d.rect.X = content.X + content.W - 1.0 - (xEnd + size)
				xEnd += size + p.border
			}
			d.rect.W = size
		} else {
			if d.pack == PackStart {
				d.rect.Y = content.Y + content.H - 1.0 - (yStart + size)
				yStart += size + p.border
			} else {
				d.rect.Y = content.Y + yEnd
				yEnd += size + p.border
			}
			d.rect.H = size
		}
		return true
	})

	p.area = Rect{
		X: content.X + xStart,
		Y: content.Y + yEnd,
		W: content.W - xStart - xEnd,
		H: content.H - yStart - yEnd,
	}

	p.axes.foreach(func(axis *Axis, d *plotAxis) bool {
		if d.hidden {
			return true
		}
		if d.orientation == Vertical {
			d.rect.Y = p.area.Y
			d.rect.H = p.area.H
		} else {
			d.rect.X = p.area.X
			d.rect.W = p.area.W
		}
		return true
	})

	p.relayout = false
}

// Draw renders the plot onto a canvas of width x height pixels: background
// and frame, the axis scales, the optionally filled plot area with the
// datasets, then the current axes' grids. Layout reruns only when marked
// dirty or when the canvas size changed. Drawing clears the damage flag.
func (p *Plot) Draw(r Renderer, width, height int, theme *Theme) {
	outer := Rect{0.0, 0.0, float64(width), float64(height)}

	r.Rect(outer.X, outer.Y, outer.W, outer.H)
	r.SetFillColor(theme.Background)
	r.Fill()

	frame := outer.Inset(theme.Border)
	r.Rect(frame.X+0.5, frame.Y+0.5, frame.W-1.0, frame.H-1.0)
	r.SetStrokeColor(theme.Frame)
	r.SetLineWidth(1.0)
	r.SetDash(nil)
	r.Stroke()

	content := frame.Inset(theme.Padding)
	if p.relayout || content != p.laidOut {
		p.layout(content)
		p.laidOut = content
	}

	p.axes.foreach(func(axis *Axis, d *plotAxis) bool {
		if d.hidden || d.rect.Empty() {
			return true
		}
		r.Save()
		r.ClipRect(d.rect.X, d.rect.Y, d.rect.W, d.rect.H)
		r.Translate(d.rect.X, d.rect.Y)
		axis.DrawAxis(r, d.orientation, d.pack, int(d.rect.W), int(d.rect.H), theme)
		r.Restore()
		return true
	})

	if p.area.Empty() {
		p.damage = false
		return
	}

	r.Save()
	if p.enableFill {
		r.Rect(p.area.X, p.area.Y, p.area.W, p.area.H)
		r.SetFillColor(p.fill)
		r.Fill()
	}
	r.ClipRect(p.area.X, p.area.Y, p.area.W, p.area.H)
	r.Translate(p.area.X, p.area.Y)

	w, h := int(p.area.W), int(p.area.H)
	p.datasets.foreach(func(c Curve, d *plotCurve) bool {
		if 0 < p.solo && !d.solo {
			return true
		}
		c.Draw(r, w, h)
		return true
	})
	if p.xAxis != nil {
		p.xAxis.DrawGrid(r, Horizontal, w, h, theme)
	}
	if p.yAxis != nil {
		p.yAxis.DrawGrid(r, Vertical, w, h, theme)
	}
	r.Restore()

	p.damage = false
}
