package dense

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// Brute-force reference: densely sample the segment and take the minimum
// point distance.
func segmentDistanceBrute(a, b, pt Point, n int) float64 {
	best := math.Inf(1)
	for i := 0; i <= n; i++ {
		p := a.Lerp(b, float64(i)/float64(n))
		best = math.Min(best, pt.Distance(p))
	}
	return best
}

func TestSegmentDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	randPt := func() Point {
		return Pt(rng.Float64()*10, rng.Float64()*10)
	}
	const n = 200000
	for iter := 0; iter < 20; iter++ {
		a, b, pt := randPt(), randPt(), randPt()
		got := SegmentDistance(a, b, pt)
		want := segmentDistanceBrute(a, b, pt, n)
		if math.Abs(got-want) > 1e-3 {
			t.Errorf("segment %v-%v point %v: got %v, brute force %v", a, b, pt, got, want)
		}
	}
}

func TestSegmentDistanceDegenerate(t *testing.T) {
	a := Pt(1, 1)
	if got := SegmentDistance(a, a, Pt(4, 5)); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
	// Below the degeneracy threshold the segment collapses to its first
	// endpoint.
	b := Pt(1+1e-9, 1)
	if got := SegmentDistance(a, b, Pt(4, 5)); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestPolylineDistance(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
	if got := pl.Distance(Pt(5, 3)); got != 3 {
		t.Errorf("got %v, want 3", got)
	}
	if got := pl.Distance(Pt(12, 5)); got != 2 {
		t.Errorf("got %v, want 2", got)
	}
	if got := pl.Distance(Pt(-3, -4)); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
}

func TestClosestIndex(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(5, 0), Pt(10, 0)}
	if got := pl.ClosestIndex(Pt(4.9, 2)); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	// Ties resolve to the first index.
	if got := pl.ClosestIndex(Pt(2.5, 0)); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestDensify(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(10, 0), Pt(20, 0)}
	got := pl.Densify(9)
	if len(got) != 9 {
		t.Fatalf("got %d points, want 9", len(got))
	}
	want := Polyline{
		Pt(0, 0), Pt(2.5, 0), Pt(5, 0), Pt(7.5, 0), Pt(10, 0),
		Pt(12.5, 0), Pt(15, 0), Pt(17.5, 0), Pt(20, 0),
	}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))

	// Already long enough: unchanged.
	diff(t, got, got.Densify(5))
}

func TestSubdivide(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(4, 0)}
	got := pl.Subdivide(SubdivideOptions{Threshold: 1})
	want := []Point{Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))

	got = pl.Subdivide(SubdivideOptions{Threshold: 1, IncludeSelf: true})
	want = []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestSubdivideUnits(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(4, 0)}
	points, units := pl.SubdivideUnits(1)
	if len(points) != len(units) {
		t.Fatalf("%d points but %d unit vectors", len(points), len(units))
	}
	for _, u := range units {
		diff(t, Vec(1, 0), u, cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestSubdivideBeside(t *testing.T) {
	pl := Polyline{Pt(0, 0), Pt(4, 0)}
	got := pl.Subdivide(SubdivideOptions{Threshold: 1, Beside: true})
	// Interleaved points plus lateral offsets at ±1 and ±2.
	for _, p := range got {
		if p.Y != 0 && math.Abs(p.Y) != 1 && math.Abs(p.Y) != 2 {
			t.Errorf("unexpected lateral offset %v", p)
		}
	}
	lateral := 0
	for _, p := range got {
		if p.Y != 0 {
			lateral++
		}
	}
	if lateral == 0 {
		t.Error("no lateral points emitted")
	}
}
