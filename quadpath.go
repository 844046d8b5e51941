package dense

import "math"

// QuadPath is a quadratic parametric curve
//
//	x(t) = A2 t² + A1 t + A0
//	y(t) = B2 t² + B1 t + B0
//
// for t ∈ [0, 1], fit against a reference path and used as a
// trajectory-attraction prior when shaping goal targets.
type QuadPath struct {
	A2, A1, A0 float64
	B2, B1, B0 float64
}

// Eval evaluates the curve at t.
func (q QuadPath) Eval(t float64) Point {
	return Pt(q.A2*t*t+q.A1*t+q.A0, q.B2*t*t+q.B1*t+q.B0)
}

func (q QuadPath) norm() float64 {
	return math.Sqrt(q.A2*q.A2 + q.A1*q.A1 + q.A0*q.A0 + q.B2*q.B2 + q.B1*q.B1 + q.B0*q.B0)
}

// Project returns the curve parameter t ∈ [0, 1] and curve point closest
// to pt.
//
// Setting the derivative of the squared distance to zero yields a cubic in
// t. Its real roots inside [0, 1] are candidates, and the two endpoints
// are always candidates as well, so a valid projection exists even when
// the cubic has no usable root.
func (q QuadPath) Project(pt Point) (float64, Point) {
	c3 := 4*q.A2*q.A2 + 4*q.B2*q.B2
	c2 := 6*q.A1*q.A2 + 6*q.B1*q.B2
	c1 := -4*q.A2*pt.X + 2*q.A1*q.A1 + 4*q.A0*q.A2 - 4*q.B2*pt.Y + 2*q.B1*q.B1 + 4*q.B0*q.B2
	c0 := -2*q.A1*pt.X + 2*q.A0*q.A1 - 2*q.B1*pt.Y + 2*q.B0*q.B1

	roots, n := SolveCubic(c0, c1, c2, c3)
	cands := make([]float64, 0, 5)
	for _, r := range roots[:n] {
		if r >= 0 && r <= 1 {
			cands = append(cands, r)
		}
	}
	cands = append(cands, 0.0, 1.0)

	tHat := 0.0
	best := math.Inf(1)
	var proj Point
	for _, t := range cands {
		p := q.Eval(t)
		if d := pt.DistanceSquared(p); d < best {
			best, tHat, proj = d, t, p
		}
	}
	return tHat, proj
}

const (
	// fitEta weighs the L2 penalty on the curve coefficients, which keeps
	// the optimizer away from degenerate high-curvature fits.
	fitEta = 0.1
	// fitTMin bounds the free parameter away from {0, 1}, where the
	// interpolation denominator t²−t vanishes.
	fitTMin = 1e-7
)

// FitQuadPath fits a quadratic path through the two ends of the reference
// path and an interior anchor, the path point closest to the target. The
// anchor's curve parameter t is left free and chosen to minimize the sum
// of squared projection residuals over every path point plus
// fitEta·‖coefficients‖.
//
// When the anchor coincides with an endpoint, the first non-degenerate
// path point is used instead; ok is false when none exists, and callers
// treat the missing curve as "no trajectory attraction".
func FitQuadPath(path Polyline, target Point) (_ QuadPath, ok bool) {
	ci := path.ClosestIndex(target)
	p1, p2, p3 := path[0], path[ci], path[len(path)-1]

	if p1.Distance(p2) < 1e-7 || p2.Distance(p3) < 1e-7 {
		found := false
		for _, cand := range path {
			if p1.Distance(cand) >= 1e-7 && cand.Distance(p3) >= 1e-7 {
				p2, found = cand, true
				break
			}
		}
		if !found {
			return QuadPath{}, false
		}
	}

	// Lagrange interpolation of the unique quadratic through (0, p1),
	// (t, p2), (1, p3).
	interp := func(t float64) QuadPath {
		den := t*t - t
		return QuadPath{
			A2: (p1.X*t - p1.X + p2.X - p3.X*t) / den,
			A1: (-p1.X*t*t + p1.X - p2.X + p3.X*t*t) / den,
			A0: (p1.X*t*t - p1.X*t) / den,
			B2: (p1.Y*t - p1.Y + p2.Y - p3.Y*t) / den,
			B1: (-p1.Y*t*t + p1.Y - p2.Y + p3.Y*t*t) / den,
			B0: (p1.Y*t*t - p1.Y*t) / den,
		}
	}

	objective := func(t float64) float64 {
		q := interp(t)
		loss := 0.0
		for _, p := range path {
			_, proj := q.Project(p)
			loss += p.DistanceSquared(proj)
		}
		return loss + fitEta*q.norm()
	}

	t := minimizeScalar(objective, fitTMin, 1-fitTMin)
	return interp(t), true
}

// minimizeScalar runs a fixed-iteration golden-section search on [lo, hi].
// Sixty iterations shrink the bracket by 0.618⁶⁰ ≈ 3e-13, well past the
// precision the fit needs, and the fixed count keeps the search
// deterministic.
func minimizeScalar(f func(float64) float64, lo, hi float64) float64 {
	const invPhi = 0.6180339887498949
	a, b := lo, hi
	c := b - (b-a)*invPhi
	d := a + (b-a)*invPhi
	fc, fd := f(c), f(d)
	for i := 0; i < 60; i++ {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - (b-a)*invPhi
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + (b-a)*invPhi
			fd = f(d)
		}
	}
	return 0.5 * (a + b)
}
