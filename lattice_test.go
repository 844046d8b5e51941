package dense

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDedupPoints(t *testing.T) {
	pts := []Point{Pt(1.04, 2.06), Pt(1.01, 2.11), Pt(3, 4)}
	got := DedupPoints(pts, 1)
	want := []Point{Pt(1.0, 2.1), Pt(3, 4)}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
}

func TestDedupPointsIdempotent(t *testing.T) {
	pts := []Point{Pt(0.12, 0.18), Pt(0.14, 0.21), Pt(-5.55, 3.33), Pt(0.12, 0.18)}
	once := DedupPoints(pts, 1)
	twice := DedupPoints(once, 1)
	diff(t, once, twice)
}

func TestNeighborhood(t *testing.T) {
	got := Neighborhood([]Point{Pt(0.2, -0.3)}, 2, 1, 1)
	if len(got) != 25 {
		t.Fatalf("got %d points, want 25", len(got))
	}
	diff(t, Pt(-2, -2), got[0], cmpopts.EquateApprox(0, 1e-9))
	diff(t, Pt(2, 2), got[len(got)-1], cmpopts.EquateApprox(0, 1e-9))

	// Deterministic: identical inputs give identical output, order included.
	again := Neighborhood([]Point{Pt(0.2, -0.3)}, 2, 1, 1)
	diff(t, got, again)
}

func TestNeighborhoodRange(t *testing.T) {
	if got := Neighborhood([]Point{Pt(150, 0)}, 2, 1, 1); len(got) != 0 {
		t.Errorf("out-of-range candidate produced %d points", len(got))
	}
}

func TestUnitNeighborhood(t *testing.T) {
	got := UnitNeighborhood([]Point{Pt(0, 0)}, 2)
	if len(got) != 25 {
		t.Fatalf("got %d points, want 25", len(got))
	}
	// Overlapping candidates share lattice points.
	got = UnitNeighborhood([]Point{Pt(0, 0), Pt(1, 0)}, 1)
	if len(got) != 12 {
		t.Errorf("got %d points, want 12", len(got))
	}
}
