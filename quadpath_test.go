package dense

import (
	"math"
	"math/rand"
	"testing"
)

func TestProjectOnLine(t *testing.T) {
	// x(t) = 10t, y(t) = 0: a degenerate quadratic whose projection cubic
	// loses its leading coefficient and falls through to the linear solve.
	q := QuadPath{A1: 10}

	tt, p := q.Project(Pt(5, 3))
	if math.Abs(tt-0.5) > 1e-9 {
		t.Errorf("got t=%v, want 0.5", tt)
	}
	assertNear(t, p, Pt(5, 0), 1e-9)

	// Queries beyond the ends clamp to the boundary candidates.
	tt, p = q.Project(Pt(-5, 2))
	if tt != 0 {
		t.Errorf("got t=%v, want 0", tt)
	}
	assertNear(t, p, Pt(0, 0), 1e-12)

	tt, p = q.Project(Pt(15, 2))
	if tt != 1 {
		t.Errorf("got t=%v, want 1", tt)
	}
	assertNear(t, p, Pt(10, 0), 1e-12)
}

func TestProjectDegenerate(t *testing.T) {
	// The zero curve collapses to a single point; projection still
	// returns a valid parameter and the point itself.
	var q QuadPath
	tt, p := q.Project(Pt(1, 1))
	if tt < 0 || tt > 1 {
		t.Errorf("t=%v outside [0, 1]", tt)
	}
	assertNear(t, p, Pt(0, 0), 1e-12)
}

func TestProjectMatchesBrute(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 100000
	for iter := 0; iter < 25; iter++ {
		q := QuadPath{
			A2: rng.Float64()*10 - 5, A1: rng.Float64()*10 - 5, A0: rng.Float64()*10 - 5,
			B2: rng.Float64()*10 - 5, B1: rng.Float64()*10 - 5, B0: rng.Float64()*10 - 5,
		}
		pt := Pt(rng.Float64()*20-10, rng.Float64()*20-10)

		tt, proj := q.Project(pt)
		if tt < 0 || tt > 1 {
			t.Fatalf("t=%v outside [0, 1]", tt)
		}
		assertNear(t, proj, q.Eval(tt), 1e-12)

		got := pt.Distance(proj)
		brute := math.Inf(1)
		for i := 0; i <= n; i++ {
			brute = math.Min(brute, pt.Distance(q.Eval(float64(i)/float64(n))))
		}
		if got > brute+1e-3 {
			t.Errorf("curve %+v point %v: projection distance %v, brute force %v", q, pt, got, brute)
		}
	}
}

func TestFitStraightPath(t *testing.T) {
	// A perfectly straight reference path fits to a curve that degenerates
	// to the same line: the y polynomial vanishes and every curve point
	// stays on the segment.
	path := Polyline{Pt(0, 0), Pt(5, 0), Pt(10, 0)}
	q, ok := FitQuadPath(path, Pt(5, 0))
	if !ok {
		t.Fatal("fit failed")
	}
	if q.B2 != 0 || q.B1 != 0 || q.B0 != 0 {
		t.Errorf("y polynomial not degenerate: %+v", q)
	}
	assertNear(t, q.Eval(0), Pt(0, 0), 1e-9)
	assertNear(t, q.Eval(1), Pt(10, 0), 1e-9)
	for i := 0; i <= 100; i++ {
		p := q.Eval(float64(i) / 100)
		if d := path.Distance(p); d > 1e-9 {
			t.Fatalf("curve leaves the line at t=%v: %v (distance %g)", float64(i)/100, p, d)
		}
	}
}

func TestFitCurvedPath(t *testing.T) {
	var path Polyline
	for i := 0; i <= 8; i++ {
		x := float64(i) * 1.25
		path = append(path, Pt(x, x*x/10))
	}
	q, ok := FitQuadPath(path, Pt(5, 2.5))
	if !ok {
		t.Fatal("fit failed")
	}
	// The interpolation pins the path endpoints at t=0 and t=1 exactly,
	// for any interior parameter.
	assertNear(t, q.Eval(0), path[0], 1e-9)
	assertNear(t, q.Eval(1), path[len(path)-1], 1e-9)

	total := 0.0
	for _, p := range path {
		_, proj := q.Project(p)
		total += p.DistanceSquared(proj)
	}
	if total > 0.5 {
		t.Errorf("residual %g too large for a parabolic path", total)
	}
}

func TestFitDegenerate(t *testing.T) {
	// All points coincide: no valid interior anchor exists.
	path := Polyline{Pt(1, 1), Pt(1, 1), Pt(1, 1)}
	if _, ok := FitQuadPath(path, Pt(1, 1)); ok {
		t.Error("fit of a collapsed path should fail")
	}
}

func TestMinimizeScalar(t *testing.T) {
	got := minimizeScalar(func(x float64) float64 {
		return (x - 0.3) * (x - 0.3)
	}, 0, 1)
	if math.Abs(got-0.3) > 1e-9 {
		t.Errorf("got %v, want 0.3", got)
	}
}
