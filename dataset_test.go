package wplot

import (
	"testing"

	"github.com/tdewolff/test"
)

func testAxes() (x, y *Axis) {
	x = NewAxis()
	x.Configure(AxisLinear, 0.0, 100.0)
	y = NewAxis()
	y.Configure(AxisLinear, 0.0, 10.0)
	return x, y
}

func TestDatasetDrawGuards(t *testing.T) {
	d := NewDataset()
	r := &recorder{}
	d.Draw(r, 200, 100) // no points, no axes
	test.T(t, len(r.ops), 0)

	d.SetPoints(Points(0.0, 0.0, 100.0, 10.0))
	d.Draw(r, 200, 100) // still no axes
	test.T(t, len(r.ops), 0)
}

func TestDatasetPolyline(t *testing.T) {
	x, y := testAxes()
	d := NewDataset()
	d.SetXAxis(x)
	d.SetYAxis(y)
	d.SetPoints(Points(0.0, 0.0, 50.0, 10.0, 100.0, 0.0))

	r := &recorder{}
	d.Draw(r, 200, 100)

	moves := r.find("moveto")
	lines := r.find("lineto")
	test.T(t, len(moves), 1)
	test.T(t, len(lines), 2)
	test.Float(t, moves[0].args[0], 0.0)
	test.Float(t, moves[0].args[1], 99.0)
	test.Float(t, lines[0].args[0], 99.5)
	test.Float(t, lines[0].args[1], 0.0)
	test.Float(t, lines[1].args[0], 199.0)
	test.Float(t, lines[1].args[1], 99.0)
	test.T(t, r.count("stroke"), 1)
}

func TestDatasetNotify(t *testing.T) {
	d := NewDataset()
	updates := 0
	d.OnUpdate(func() { updates++ })

	d.SetPoints(Points(0.0, 0.0))
	test.T(t, updates, 1)
	d.SetLineColor(Red)
	test.T(t, updates, 2)
	d.SetLineColor(Red) // unchanged
	test.T(t, updates, 2)
	d.SetLineStyle(LineDots)
	test.T(t, updates, 3)
}

func TestSplineDatasetCache(t *testing.T) {
	x, y := testAxes()
	s := NewSplineDataset()
	s.SetXAxis(x)
	s.SetYAxis(y)
	s.SetPoints(Points(0.0, 0.0, 50.0, 10.0, 100.0, 0.0))

	r := &recorder{}
	s.Draw(r, 200, 100)
	test.T(t, len(s.cache), 51) // one sample per four pixels, inclusive
	first := &s.cache[0]

	s.Draw(r, 200, 100)
	test.That(t, first == &s.cache[0]) // same width reuses the cache

	s.Draw(r, 300, 100)
	test.T(t, len(s.cache), 76) // width change resamples

	s.SetPoints(Points(0.0, 0.0, 100.0, 10.0))
	test.That(t, s.cache == nil) // new points drop the cache
}

func TestSplineDatasetDisplayRange(t *testing.T) {
	x, y := testAxes()
	adj := NewAdjustment(0.0, 0.0, 1.0, 0.0, 0.0, 1.0)
	x.SetAdjustment(adj)
	adj.SetPageSize(50.0)
	adj.SetValue(25.0)

	s := NewSplineDataset()
	s.SetXAxis(x)
	s.SetYAxis(y)
	s.SetPoints(Points(0.0, 0.0, 50.0, 10.0, 100.0, 0.0))

	s.Draw(&recorder{}, 200, 100)
	// samples cover the display window, not the full bounds
	test.Float(t, s.cache[0].X, 25.0)
	test.Float(t, s.cache[len(s.cache)-1].X, 75.0)
}

func TestSplineDatasetMarkers(t *testing.T) {
	x, y := testAxes()
	s := NewSplineDataset()
	s.SetXAxis(x)
	s.SetYAxis(y)
	s.SetPoints(Points(0.0, 0.0, 50.0, 10.0, 100.0, 0.0))
	s.SetMarkers(true)

	r := &recorder{}
	s.Draw(r, 200, 100)
	test.T(t, r.count("circle"), 3)
	test.T(t, r.count("fillstroke"), 3)

	circles := r.find("circle")
	test.Float(t, circles[0].args[2], 3.0)
}

func TestSplineDatasetSinglePoint(t *testing.T) {
	x, y := testAxes()
	s := NewSplineDataset()
	s.SetXAxis(x)
	s.SetYAxis(y)
	s.SetPoints(Points(50.0, 5.0))

	r := &recorder{}
	s.Draw(r, 200, 100)
	// no spline through one point, the base polyline draws instead
	test.T(t, r.count("moveto"), 1)
	test.That(t, s.cache == nil)
}

func TestLineStyleDashes(t *testing.T) {
	test.That(t, LineSolid.Dashes() == nil)
	test.T(t, LineDots.Dashes(), []float64{1.0})
	test.T(t, LineDash.Dashes(), []float64{2.0, 3.0})
	test.T(t, LineDotDash.Dashes(), []float64{1.0, 1.0, 1.0, 1.0, 4.0})
	test.T(t, LineDotDotDash.Dashes(), []float64{1.0, 3.0, 1.0, 3.0, 4.0})
	test.T(t, LineLongShortDash.Dashes(), []float64{4.0, 3.0, 2.0, 3.0})
}
