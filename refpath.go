package dense

import (
	"errors"
	"fmt"
	"math"
)

// BuildReferencePath shapes a raw map polyline into the reference path used
// for quadratic fitting: densified to at least nine points, recentred so
// its closest point coincides with the target, cropped to a
// speed-dependent radius around the target, and spliced with the tail of
// the ground-truth trajectory when the motion direction agrees with the
// path near the target.
//
// labels is the ground-truth future trajectory, target its final point,
// and futureFrames the forecast horizon length. Paths shorter than two
// points and empty trajectories are precondition violations.
func BuildReferencePath(path, labels Polyline, target Point, futureFrames int) (Polyline, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("dense: reference path needs at least 2 points, got %d", len(path))
	}
	if len(labels) == 0 {
		return nil, errors.New("dense: empty trajectory")
	}

	path = path.Densify(9)

	// Shift the whole path so its closest point lands exactly on the
	// target.
	ci := path.ClosestIndex(target)
	shift := target.Sub(path[ci])
	shifted := make(Polyline, len(path))
	for i, p := range path {
		shifted[i] = p.Translate(shift)
	}
	path = shifted

	last := labels[len(labels)-1]
	hi := trailingIndex(len(labels), futureFrames, 2)
	if hi < 0 {
		return nil, fmt.Errorf("dense: trajectory of %d points shorter than horizon %d", len(labels), futureFrames)
	}

	// Crop radius around the target, implicitly speed-dependent through
	// the trajectory spread, clamped to [3, 15].
	r := max(
		min(
			max(15, last.Distance(labels[hi])),
			last.Distance(labels[0]),
			max(
				path[len(path)-1].Distance(path[ci]),
				path[0].Distance(path[ci]),
			),
		),
		3,
	)

	filtered := make(Polyline, 0, len(path))
	for _, p := range path {
		if p.Distance(target) <= r {
			filtered = append(filtered, p)
		}
	}
	path = filtered

	// The recentred closest point is at distance zero from the target, so
	// the filtered path is never empty.
	ci = path.ClosestIndex(target)

	// Trailing trajectory segment that stays within the crop radius of the
	// closest path point.
	n := 0
	for n < len(labels) && labels[len(labels)-1-n].Distance(path[ci]) <= r {
		n++
	}
	n = max(0, n-1)
	seg := labels[len(labels)-1-n:]

	// Direction of motion over the last third of the horizon. A degenerate
	// direction (stationary trajectory, horizon shorter than three frames)
	// disables splicing.
	var trajDir Vec2
	hasTraj := false
	if di := trailingIndex(len(labels), futureFrames, 3); di >= 0 {
		if u, err := Unit(last, labels[di]); err == nil {
			trajDir = u
			hasTraj = true
		}
	}

	startDist := path[ci].Distance(path[0])
	endDist := path[ci].Distance(path[len(path)-1])

	if !hasTraj || (startDist <= 1e-7 && endDist <= 1e-7) {
		return path, nil
	}

	switch {
	case startDist <= 1e-7:
		// The target sits at the start of the path. Replace the path
		// outright if the trajectory heads the same way it does, else keep
		// the tail and prepend the trajectory.
		endDir, err := Unit(path[ci], path[len(path)-1])
		if err != nil {
			return path, nil
		}
		if trajDir.Dot(endDir) > 0 {
			path = append(Polyline{}, seg...)
		} else {
			path = append(append(Polyline{}, seg...), path[ci:]...)
		}
	case endDist <= 1e-7:
		// Symmetric case at the end of the path; the trajectory segment is
		// reversed so index order still runs along the path.
		startDir, err := Unit(path[ci], path[0])
		if err != nil {
			return path, nil
		}
		if trajDir.Dot(startDir) > 0 {
			path = append(Polyline{}, seg...)
		} else {
			path = append(append(Polyline{}, path[:ci]...), reversed(seg)...)
		}
	default:
		// The target is interior. Replace only the side whose direction
		// agrees with the trajectory, and only when the two sides clearly
		// disagree with each other.
		startDir, err := Unit(path[ci], path[0])
		if err != nil {
			return path, nil
		}
		endDir, err := Unit(path[ci], path[len(path)-1])
		if err != nil {
			return path, nil
		}
		sh := trajDir.Dot(startDir)
		eh := trajDir.Dot(endDir)
		if sh*eh <= 0 && !(math.Abs(sh) <= 1e-7 && math.Abs(eh) <= 1e-7) {
			if sh < eh {
				path = append(append(Polyline{}, path[:ci]...), reversed(seg)...)
			} else {
				path = append(append(Polyline{}, seg...), path[ci:]...)
			}
		}
	}

	return path, nil
}

// trailingIndex returns the index of the label ceil(frames/div) frames
// before the end, or 0 for a zero horizon. Negative results mean the
// trajectory is shorter than the horizon.
func trailingIndex(n, frames, div int) int {
	back := (frames + div - 1) / div
	if back == 0 {
		return 0
	}
	return n - back
}

func reversed(pl Polyline) Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}
