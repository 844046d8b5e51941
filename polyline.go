package dense

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Polyline is an ordered sequence of points. Index order is spatial order
// along a lane or path, so direction along the polyline is meaningful.
type Polyline []Point

// SegmentDistance returns the distance from pt to the segment ab.
//
// Near-zero-length segments collapse to a point distance. Otherwise the
// projection of pt is clamped to the segment by two dot-product sign
// checks before the perpendicular distance is taken.
func SegmentDistance(a, b, pt Point) float64 {
	if a.Distance(b) < 1e-7 {
		return pt.Distance(a)
	}
	if pt.Sub(a).Dot(b.Sub(a)) < 0 {
		return pt.Distance(a)
	}
	if pt.Sub(b).Dot(a.Sub(b)) < 0 {
		return pt.Distance(b)
	}
	return math.Abs(b.Sub(a).Cross(pt.Sub(a))) / a.Distance(b)
}

// Distance returns the minimum distance from pt to any segment of the
// polyline.
func (pl Polyline) Distance(pt Point) float64 {
	dis := 1e9
	for i := 0; i < len(pl)-1; i++ {
		dis = min(dis, SegmentDistance(pl[i], pl[i+1], pt))
	}
	return dis
}

// ClosestIndex returns the index of the polyline point closest to pt.
func (pl Polyline) ClosestIndex(pt Point) int {
	return floats.MinIdx(Distances(pl, pt))
}

// Densify inserts midpoints between consecutive points, repeatedly, until
// the polyline has at least n points. Polylines shorter than two points are
// returned unchanged.
func (pl Polyline) Densify(n int) Polyline {
	if len(pl) < 2 {
		return pl
	}
	out := pl
	for len(out) < n {
		next := make(Polyline, 0, 2*len(out)-1)
		for i := 0; i < len(out)-1; i++ {
			next = append(next, out[i], out[i].Midpoint(out[i+1]))
		}
		next = append(next, out[len(out)-1])
		out = next
	}
	return out
}

// SubdivideOptions controls [Polyline.Subdivide].
type SubdivideOptions struct {
	// Threshold is the spacing the subdivision aims for: every segment is
	// split evenly into the smallest number of parts that brings the
	// average segment length under Threshold. Zero means 1.0.
	Threshold float64
	// IncludeSelf keeps the original vertices in the output, interleaved
	// with the inserted points.
	IncludeSelf bool
	// Beside keeps the original vertices and additionally emits points
	// offset laterally by ±1 and ±2 perpendicular to the local direction,
	// widening the sampled band around the polyline.
	Beside bool
}

// Subdivide resamples the polyline at a finer spacing. It is the routine
// used to turn lane polylines into goal candidates.
func (pl Polyline) Subdivide(opts SubdivideOptions) []Point {
	points, _ := pl.subdivide(opts, false)
	return points
}

// SubdivideUnits subdivides like [Polyline.Subdivide] with only interior
// points, and also returns the unit direction of the segment each point
// was inserted on.
func (pl Polyline) SubdivideUnits(threshold float64) ([]Point, []Vec2) {
	return pl.subdivide(SubdivideOptions{Threshold: threshold}, true)
}

func (pl Polyline) subdivide(opts SubdivideOptions, withUnits bool) ([]Point, []Vec2) {
	if len(pl) < 2 {
		return nil, nil
	}
	threshold := opts.Threshold
	if threshold == 0 {
		threshold = 1.0
	}

	average := 0.0
	for i := 1; i < len(pl); i++ {
		average += pl[i].Distance(pl[i-1])
	}
	average /= float64(len(pl) - 1)

	parts := 1
	for average/float64(parts) > threshold {
		parts++
	}

	var points []Point
	var units []Vec2
	for i, p := range pl {
		if i > 0 {
			prev := pl[i-1]
			for k := 1; k < parts; k++ {
				points = append(points, prev.Lerp(p, float64(k)/float64(parts)))
				if withUnits {
					u, err := Unit(prev, p)
					if err != nil {
						u = Vec2{}
					}
					units = append(units, u)
				}
			}
		}
		if opts.IncludeSelf || opts.Beside {
			points = append(points, p)
		}
	}

	if opts.Beside {
		var beside []Point
		for i := 1; i < len(points); i++ {
			u, err := Unit(points[i-1], points[i])
			if err != nil {
				continue
			}
			dx, dy := Rotate(u.X, u.Y, math.Pi/2)
			for k := -2; k <= 2; k++ {
				if k == 0 {
					continue
				}
				off := Vec(float64(k)*dx, float64(k)*dy)
				beside = append(beside, points[i].Translate(off))
				if i == 1 {
					beside = append(beside, points[i-1].Translate(off))
				}
			}
		}
		points = append(points, beside...)
	}

	return points, units
}
