package dense

import (
	"fmt"
	"math"
)

// Point is a position in the map frame.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(v Vec2) Point {
	return Point{
		X: pt.X + v.X,
		Y: pt.Y + v.Y,
	}
}

// Sub computes pt−o as a vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Sqrt(x*x + y*y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// Distances returns the distance from every point to target. It is the
// batched counterpart of [Point.Distance] and computes each entry with the
// exact same operations, so batched and scalar call sites agree
// bit-for-bit.
func Distances(points []Point, target Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Distance(target)
	}
	return out
}
