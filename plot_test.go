package wplot

import (
	"testing"

	"github.com/tdewolff/test"
)

// zeroTheme has no border or padding so plot geometry is easy to predict.
func zeroTheme() *Theme {
	return &Theme{}
}

func quietAxes() (x, y *Axis) {
	x, y = testAxes()
	x.SetMajorGrid(LineNone)
	x.SetMinorGrid(LineNone)
	y.SetMajorGrid(LineNone)
	y.SetMinorGrid(LineNone)
	return x, y
}

func TestPlotLayout(t *testing.T) {
	p := NewPlot()
	x, y := testAxes()
	p.AddAxis(x, false, PackStart, Horizontal)
	p.AddAxis(y, false, PackStart, Vertical)

	p.Draw(&recorder{}, 200, 100, zeroTheme())

	// both axes are 22 wide plus the 4 pixel border
	test.T(t, p.PlotArea(), Rect{26.0, 0.0, 174.0, 74.0})

	axis, ok := p.AxisAt(5.0, 5.0)
	test.That(t, ok)
	test.That(t, axis == y)
	axis, ok = p.AxisAt(30.0, 80.0)
	test.That(t, ok)
	test.That(t, axis == x)
	_, ok = p.AxisAt(100.0, 50.0) // inside the plot area
	test.That(t, !ok)
}

func TestPlotLayoutPackEnd(t *testing.T) {
	p := NewPlot()
	x, y := testAxes()
	p.AddAxis(x, false, PackEnd, Horizontal)
	p.AddAxis(y, false, PackEnd, Vertical)

	p.Draw(&recorder{}, 200, 100, zeroTheme())
	test.T(t, p.PlotArea(), Rect{0.0, 26.0, 174.0, 74.0})

	axis, ok := p.AxisAt(190.0, 50.0)
	test.That(t, ok)
	test.That(t, axis == y)
}

func TestPlotLayoutCaching(t *testing.T) {
	p := NewPlot()
	x, _ := testAxes()
	p.AddAxis(x, false, PackStart, Horizontal)

	p.Draw(&recorder{}, 200, 100, zeroTheme())
	area := p.PlotArea()

	// same size, no relayout
	p.Draw(&recorder{}, 200, 100, zeroTheme())
	test.T(t, p.PlotArea(), area)

	// size change forces one
	p.Draw(&recorder{}, 300, 150, zeroTheme())
	test.T(t, p.PlotArea(), Rect{0.0, 0.0, 300.0, 124.0})
}

func TestPlotHideAxis(t *testing.T) {
	p := NewPlot()
	x, y := testAxes()
	p.AddAxis(x, false, PackStart, Horizontal)
	p.AddAxis(y, false, PackStart, Vertical)

	p.Draw(&recorder{}, 200, 100, zeroTheme())
	test.T(t, p.PlotArea(), Rect{26.0, 0.0, 174.0, 74.0})

	p.HideAxis(y, true)
	p.Draw(&recorder{}, 200, 100, zeroTheme())
	test.T(t, p.PlotArea(), Rect{0.0, 0.0, 200.0, 74.0})

	_, ok := p.AxisAt(5.0, 5.0)
	test.That(t, !ok)
}

func TestPlotDatasetBringsAxes(t *testing.T) {
	p := NewPlot()
	x, y := quietAxes()
	d := NewDataset()
	d.SetXAxis(x)
	d.SetYAxis(y)

	p.AddDataset(d, PackStart, PackStart)
	test.That(t, p.XAxis() == x)
	test.That(t, p.YAxis() == y)

	p.RemoveDataset(d)
	test.That(t, p.XAxis() == nil)
	test.That(t, p.YAxis() == nil)
	test.That(t, !p.axes.contains(x))
}

func TestPlotSharedAxisRefcount(t *testing.T) {
	p := NewPlot()
	x, y := quietAxes()
	d1 := NewDataset()
	d1.SetXAxis(x)
	d1.SetYAxis(y)
	d2 := NewDataset()
	d2.SetXAxis(x)
	d2.SetYAxis(y)

	p.AddDataset(d1, PackStart, PackStart)
	p.AddDataset(d2, PackStart, PackStart)

	p.RemoveDataset(d1)
	test.That(t, p.axes.contains(x)) // still referenced by d2
	test.That(t, p.XAxis() == x)

	p.RemoveDataset(d2)
	test.That(t, !p.axes.contains(x))
}

func TestPlotDoubleAddDataset(t *testing.T) {
	p := NewPlot()
	x, y := quietAxes()
	d := NewDataset()
	d.SetXAxis(x)
	d.SetYAxis(y)

	p.AddDataset(d, PackStart, PackStart)
	p.AddDataset(d, PackStart, PackStart)
	p.RemoveDataset(d)
	test.T(t, len(p.Datasets()), 1) // one reference left
	p.RemoveDataset(d)
	test.T(t, len(p.Datasets()), 0)
}

func TestPlotSolo(t *testing.T) {
	p := NewPlot()
	x, y := quietAxes()
	d1 := NewDataset()
	d1.SetXAxis(x)
	d1.SetYAxis(y)
	d1.SetPoints(Points(0.0, 0.0, 100.0, 10.0))
	d2 := NewDataset()
	d2.SetXAxis(x)
	d2.SetYAxis(y)
	d2.SetPoints(Points(0.0, 10.0, 100.0, 0.0))

	p.AddDataset(d1, PackStart, PackStart)
	p.AddDataset(d2, PackStart, PackStart)
	p.HideAxis(x, true)
	p.HideAxis(y, true)

	r := &recorder{}
	p.Draw(r, 200, 100, zeroTheme())
	both := r.count("stroke")

	p.SoloDataset(d1, true)
	r = &recorder{}
	p.Draw(r, 200, 100, zeroTheme())
	test.T(t, r.count("stroke"), both-1)

	p.SoloDataset(d1, false)
	r = &recorder{}
	p.Draw(r, 200, 100, zeroTheme())
	test.T(t, r.count("stroke"), both)
}

func TestPlotFindDataset(t *testing.T) {
	p := NewPlot()
	d := NewDataset()
	d.SetName("noise")
	p.AddDataset(d, PackStart, PackStart)

	found, ok := p.FindDataset("noise")
	test.That(t, ok)
	test.That(t, found.Data() == d)
	_, ok = p.FindDataset("signal")
	test.That(t, !ok)
}

func TestPlotDamageCoalesces(t *testing.T) {
	p := NewPlot()
	fired := 0
	p.OnDamage(func() { fired++ })
	p.Draw(&recorder{}, 100, 100, zeroTheme())
	test.That(t, !p.Damaged())

	p.QueueDraw()
	p.QueueDraw()
	p.QueueDraw()
	test.T(t, fired, 1)
	test.That(t, p.Damaged())

	p.Draw(&recorder{}, 100, 100, zeroTheme())
	test.That(t, !p.Damaged())
	p.QueueDraw()
	test.T(t, fired, 2)
}

func TestPlotDatasetUpdateDamages(t *testing.T) {
	p := NewPlot()
	d := NewDataset()
	p.AddDataset(d, PackStart, PackStart)
	p.Draw(&recorder{}, 100, 100, zeroTheme())

	d.SetLineColor(Green)
	test.That(t, p.Damaged())

	p.Draw(&recorder{}, 100, 100, zeroTheme())
	p.RemoveDataset(d)
	p.Draw(&recorder{}, 100, 100, zeroTheme())
	d.SetLineColor(Red) // detached, no damage
	test.That(t, !p.Damaged())
}

func TestPlotAxisUpdateDamages(t *testing.T) {
	p := NewPlot()
	x, _ := quietAxes()
	p.AddAxis(x, false, PackStart, Horizontal)
	p.Draw(&recorder{}, 100, 100, zeroTheme())

	x.SetUpperBound(500.0)
	test.That(t, p.Damaged())
}

func TestPlotClearDatasets(t *testing.T) {
	p := NewPlot()
	x, y := quietAxes()
	d := NewDataset()
	d.SetXAxis(x)
	d.SetYAxis(y)
	p.AddDataset(d, PackStart, PackStart)
	p.SoloDataset(d, true)

	p.ClearDatasets()
	test.T(t, len(p.Datasets()), 0)
	test.That(t, !p.axes.contains(x))
	test.T(t, p.solo, 0)
}

func TestPlotCurrentAxisMustBeAdded(t *testing.T) {
	p := NewPlot()
	x, y := quietAxes()
	p.AddAxis(x, false, PackStart, Horizontal)

	p.SetXAxis(x)
	test.That(t, p.XAxis() == x)
	p.SetYAxis(y) // not in the bag, ignored
	test.That(t, p.YAxis() == nil)

	p.AddAxis(y, false, PackStart, Vertical)
	p.SetAxis(y) // dispatches on stored orientation
	test.That(t, p.YAxis() == y)
}

func TestPlotDrawSequence(t *testing.T) {
	p := NewPlot()
	x, y := quietAxes()
	d := NewDataset()
	d.SetXAxis(x)
	d.SetYAxis(y)
	d.SetPoints(Points(0.0, 0.0, 50.0, 10.0, 100.0, 0.0))

	p.AddAxis(x, true, PackStart, Horizontal)
	p.AddAxis(y, true, PackStart, Vertical)
	p.AddDataset(d, PackStart, PackStart)

	r := &recorder{}
	p.Draw(r, 200, 100, zeroTheme())

	// hidden axes leave the whole canvas to the plot area
	moves := r.find("moveto")
	lines := r.find("lineto")
	test.T(t, len(moves), 1)
	test.Float(t, moves[0].args[0], 0.0)
	test.Float(t, moves[0].args[1], 99.0)
	test.Float(t, lines[0].args[0], 99.5)
	test.Float(t, lines[0].args[1], 0.0)
	test.Float(t, lines[1].args[0], 199.0)
	test.Float(t, lines[1].args[1], 99.0)

	// the plot area is clipped and translated around the dataset
	test.T(t, r.count("clip"), 1)
	test.T(t, r.count("save"), 1)
	test.T(t, r.count("restore"), 1)
}

func TestPlotFill(t *testing.T) {
	p := NewPlot()
	p.SetFill(Darkgray)

	r := &recorder{}
	p.Draw(r, 100, 100, zeroTheme())
	// background plus plot area fill
	test.T(t, r.count("fill"), 2)

	p.EnableFill(false)
	r = &recorder{}
	p.Draw(r, 100, 100, zeroTheme())
	test.T(t, r.count("fill"), 1)
}
