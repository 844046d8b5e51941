package dense

import "math"

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

type latticeKey struct {
	x, y float64
}

// DedupPoints quantizes points to the given number of decimals and drops
// duplicates. The output carries the quantized coordinates in
// first-insertion order, so identical inputs produce identical outputs and
// deduplicating an already-deduplicated set is a no-op.
func DedupPoints(points []Point, decimals int) []Point {
	seen := make(map[latticeKey]struct{}, len(points))
	out := make([]Point, 0, len(points))
	for _, p := range points {
		k := latticeKey{roundTo(p.X, decimals), roundTo(p.Y, decimals)}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, Pt(k.x, k.y))
	}
	return out
}

// Neighborhood expands sparse candidates into a dense goal lattice: steps
// of density covering the Chebyshev ball of the given radius around each
// candidate's rounded position. Candidates outside [-100, 100] on either
// axis are skipped. The output is deduplicated at decimals and ordered by
// insertion, which is deterministic but not spatially sorted.
func Neighborhood(candidates []Point, radius, density float64, decimals int) []Point {
	const eps = 1e-5
	seen := make(map[latticeKey]struct{})
	var out []Point
	for _, p := range candidates {
		x, y := math.Round(p.X), math.Round(p.Y)
		if x < -100 || x > 100 || y < -100 || y > 100 {
			continue
		}
		for i := x - radius; i < x+radius+eps; i += density {
			for j := y - radius; j < y+radius+eps; j += density {
				k := latticeKey{i, j}
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				out = append(out, Pt(i, j))
			}
		}
	}
	return DedupPoints(out, decimals)
}

// UnitNeighborhood is the integer-step variant of [Neighborhood]: every
// integer lattice point within the Chebyshev radius of each candidate's
// rounded position, with no coordinate-range restriction.
func UnitNeighborhood(candidates []Point, radius int) []Point {
	seen := make(map[[2]int]struct{})
	var out []Point
	for _, p := range candidates {
		x, y := int(math.Round(p.X)), int(math.Round(p.Y))
		for i := -radius; i <= radius; i++ {
			for j := -radius; j <= radius; j++ {
				k := [2]int{x + i, y + j}
				if _, ok := seen[k]; ok {
					continue
				}
				seen[k] = struct{}{}
				out = append(out, Pt(float64(k[0]), float64(k[1])))
			}
		}
	}
	return out
}
