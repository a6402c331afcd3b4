package wplot

import (
	"fmt"
	"math"
)

// Epsilon is the smallest number below which we assume a value to be zero.
const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Point is a point in data or device space.
type Point struct {
	X, Y float64
}

// P is shorthand for Point{x, y}.
func P(x, y float64) Point {
	return Point{x, y}
}

// Add adds the coordinates of both points.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts the coordinates of both points.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies the coordinates by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Equals returns true if both points are equal within Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// String returns the string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Points builds a point slice from interleaved x,y coordinate pairs. An odd
// trailing coordinate is dropped.
func Points(xy ...float64) []Point {
	pts := make([]Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, Point{xy[i], xy[i+1]})
	}
	return pts
}

// PointsXY pairs the x and y slices into points. The shorter slice determines
// the length.
func PointsXY(xs, ys []float64) []Point {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{xs[i], ys[i]}
	}
	return pts
}

// Rect is a rectangle in device space with the origin in the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Contains returns true if the rectangle contains the given position.
func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && x < r.X+r.W && r.Y <= y && y < r.Y+r.H
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0.0 || r.H <= 0.0
}

// Inset shrinks the rectangle on all four sides.
func (r Rect) Inset(ins Insets) Rect {
	return Rect{
		X: r.X + ins.Left,
		Y: r.Y + ins.Top,
		W: r.W - ins.Left - ins.Right,
		H: r.H - ins.Top - ins.Bottom,
	}
}

// String returns the string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%gx%g)", r.X, r.Y, r.W, r.H)
}

// Insets is the space taken on each side of a rectangle.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns insets with the same space on every side.
func Uniform(v float64) Insets {
	return Insets{v, v, v, v}
}
