package wplot

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSplineStraightLine(t *testing.T) {
	pts := Points(0.0, 0.0, 1.0, 1.0)
	ys := SplineVector(pts, 0.0, 1.0, 3)
	test.T(t, len(ys), 3)
	test.Float(t, ys[0], 0.0)
	test.Float(t, ys[1], 0.5)
	test.Float(t, ys[2], 1.0)
}

func TestSplineThroughControlPoints(t *testing.T) {
	pts := Points(0.0, 0.0, 1.0, 1.0, 2.0, 0.0)
	ys := SplineVector(pts, 0.0, 2.0, 5)
	test.Float(t, ys[0], 0.0)
	test.Float(t, ys[2], 1.0)
	test.Float(t, ys[4], 0.0)
	// a symmetric input gives a symmetric spline
	test.Float(t, ys[1], ys[3])
	// the hump bulges above the straight interpolant
	test.That(t, 0.5 < ys[1])
}

func TestSplineSecondDerivatives(t *testing.T) {
	pts := Points(0.0, 0.0, 1.0, 1.0, 2.0, 0.0)
	y2 := splineDerivs(pts)
	// natural end conditions
	test.Float(t, y2[0], 0.0)
	test.Float(t, y2[2], 0.0)
	test.That(t, y2[1] < 0.0)
}

func TestSplinePoints(t *testing.T) {
	pts := Points(0.0, 0.0, 2.0, 4.0, 4.0, 0.0)
	out := SplinePoints(pts, 0.0, 4.0, 5)
	test.T(t, len(out), 5)
	for i, p := range out {
		test.Float(t, p.X, float64(i))
	}
	test.Float(t, out[2].Y, 4.0)
}

func TestSplineDegenerate(t *testing.T) {
	test.That(t, SplineVector(nil, 0.0, 1.0, 10) == nil)
	test.That(t, SplineVector(Points(1.0, 1.0), 0.0, 1.0, 10) == nil)
	test.That(t, SplineVector(Points(0.0, 0.0, 1.0, 1.0), 0.0, 1.0, 1) == nil)
	test.That(t, SplinePoints(nil, 0.0, 1.0, 10) == nil)
}
