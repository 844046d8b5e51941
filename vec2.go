package dense

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerate reports geometry that cannot support the requested
// computation, such as a direction between coincident points.
var ErrDegenerate = errors.New("dense: degenerate geometry")

// Vec2 is a 2D vector, used for displacements and directions.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Mul(t))
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// Rotate rotates (x, y) by angle radians about the origin.
func Rotate(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}

// Unit returns the unit direction from a to b. Coincident points have no
// direction; that case returns [ErrDegenerate], and callers are expected to
// treat it as "no heading available" rather than as a fatal condition.
func Unit(a, b Point) (Vec2, error) {
	d := b.Sub(a)
	h := d.Hypot()
	if h == 0 {
		return Vec2{}, fmt.Errorf("unit direction %v -> %v: %w", a, b, ErrDegenerate)
	}
	return d.Mul(1 / h), nil
}
