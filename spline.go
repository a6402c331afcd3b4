package wplot

import (
	"github.com/aclements/go-moremath/vec"
)

// splineDerivs solves the tridiagonal system for the second derivatives of a
// natural cubic spline through the control points: zero second derivative at
// both ends, forward elimination followed by back substitution. The control
// points must be sorted by X.
func splineDerivs(points []Point) []float64 {
	n := len(points)
	y2 := make([]float64, n)
	u := make([]float64, n)

	y2[0], u[0] = 0.0, 0.0
	for i := 1; i < n-1; i++ {
		sig := (points[i].X - points[i-1].X) / (points[i+1].X - points[i-1].X)
		p := sig*y2[i-1] + 2.0
		y2[i] = (sig - 1.0) / p
		un := (points[i+1].Y-points[i].Y)/(points[i+1].X-points[i].X) -
			(points[i].Y-points[i-1].Y)/(points[i].X-points[i-1].X)
		u[i] = (6.0*un/(points[i+1].X-points[i-1].X) - sig*u[i-1]) / p
	}
	y2[n-1] = 0.0
	for k := n - 2; 0 <= k; k-- {
		y2[k] = y2[k]*y2[k+1] + u[k]
	}
	return y2
}

// splineEval interpolates Y at x from the control points and their second
// derivatives, locating the bracketing interval by binary search.
func splineEval(points []Point, y2 []float64, x float64) float64 {
	klo, khi := 0, len(points)-1
	for 1 < khi-klo {
		k := (khi + klo) / 2
		if x < points[k].X {
			khi = k
		} else {
			klo = k
		}
	}
	h := points[khi].X - points[klo].X
	if h == 0.0 {
		return points[klo].Y
	}
	a := (points[khi].X - x) / h
	b := (x - points[klo].X) / h
	return a*points[klo].Y + b*points[khi].Y +
		((a*a*a-a)*y2[klo]+(b*b*b-b)*y2[khi])*h*h/6.0
}

// SplineVector interpolates a natural cubic spline through the control
// points and samples its Y values at n evenly spaced X positions over
// [minX,maxX], both endpoints included. It returns nil when fewer than two
// control points are given.
func SplineVector(points []Point, minX, maxX float64, n int) []float64 {
	if len(points) < 2 || n < 2 {
		return nil
	}
	y2 := splineDerivs(points)
	ys := make([]float64, n)
	for i, x := range vec.Linspace(minX, maxX, n) {
		ys[i] = splineEval(points, y2, x)
	}
	return ys
}

// SplinePoints is like SplineVector but returns the sampled (X,Y) pairs.
func SplinePoints(points []Point, minX, maxX float64, n int) []Point {
	if len(points) < 2 || n < 2 {
		return nil
	}
	y2 := splineDerivs(points)
	pts := make([]Point, n)
	for i, x := range vec.Linspace(minX, maxX, n) {
		pts[i] = Point{x, splineEval(points, y2, x)}
	}
	return pts
}
