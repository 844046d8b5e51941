package dense

import (
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Example is one forecasting instance as handed over by the dataset
// provider. All fields are in the same (ego-normalized) frame.
type Example struct {
	// Labels is the ground-truth future trajectory. Its last point is the
	// ground-truth goal.
	Labels Polyline
	// Goals2D are the sparse candidate goals derived from the map.
	Goals2D []Point
	// Polygons are the lane polylines used to build reference paths.
	Polygons []Polyline
	// FocalPast is the observed history of the focal agent.
	FocalPast Polyline
	// QuadPath is the fitted quadratic path, or nil when fitting failed.
	// A nil path contributes a zero trajectory-attraction term everywhere.
	QuadPath *QuadPath
}

// Goal returns the ground-truth goal.
func (ex *Example) Goal() Point {
	return ex.Labels[len(ex.Labels)-1]
}

// LossAnchors are the per-example indices feeding [SquareSquareLoss].
type LossAnchors struct {
	Target   int
	Offender int // -1 when no goal offends
}

// BatchSSEPrep runs [SSEPrep] for every example in parallel. Examples are
// independent pure computations, so the fan-out needs no synchronization
// beyond the final join.
func BatchSSEPrep(examples []*Example, goals [][]Point, scores [][]float64, m, eps float64) []LossAnchors {
	out := make([]LossAnchors, len(examples))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, ex := range examples {
		i, ex := i, ex
		g.Go(func() error {
			t, o := SSEPrep(goals[i], scores[i], ex.Goal(), ex.QuadPath, m, eps)
			out[i] = LossAnchors{Target: t, Offender: o}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// BatchSquareSquareLoss computes the per-example square-square losses and
// their batch sum.
func BatchSquareSquareLoss(examples []*Example, goals [][]Point, scores [][]float64, m, eps float64) ([]float64, float64) {
	anchors := BatchSSEPrep(examples, goals, scores, m, eps)
	losses := make([]float64, len(anchors))
	for i, a := range anchors {
		losses[i] = SquareSquareLoss(scores[i], a.Target, a.Offender, m)
	}
	return losses, floats.Sum(losses)
}
