package dense

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// TargetParams shapes the soft goal targets.
type TargetParams struct {
	T      float64 // softmax temperature dividing the logits
	K1     float64 // goal-attraction stiffness
	K2     float64 // path-attraction stiffness
	Radius float64 // cutoff distance from the ground-truth goal
}

func DefaultTargetParams() TargetParams {
	return TargetParams{T: 50, K1: 1, K2: 2, Radius: 15}
}

// DenseTargets converts goal distances into soft logits for the scoring
// model. A goal within Radius of the ground-truth goal gets
//
//	max(−½·K1·d_goal² − ½·K2·d_path², −1e9) / T
//
// where d_goal is its distance to the ground-truth goal and d_path its
// distance to its projection on path (zero when no path was fit).
// Everything farther gets −1e9/T. The model consumes these as softmax
// logits, so the sign convention is load-bearing.
func DenseTargets(goals []Point, gt Point, path *QuadPath, p TargetParams) []float64 {
	out := make([]float64, len(goals))
	for i, g := range goals {
		gd := g.Distance(gt)
		if gd > p.Radius {
			out[i] = -1e9 / p.T
			continue
		}
		td := 0.0
		if path != nil {
			_, proj := path.Project(g)
			td = g.Distance(proj)
		}
		out[i] = math.Max(-0.5*p.K1*gd*gd-0.5*p.K2*td*td, -1e9) / p.T
	}
	return out
}

// OneHotTargets puts unit mass on the goal nearest the ground-truth goal
// and zero everywhere else.
func OneHotTargets(goals []Point, gt Point) []float64 {
	out := make([]float64, len(goals))
	out[floats.MinIdx(Distances(goals, gt))] = 1
	return out
}

// Square-square energy loss defaults.
const (
	// LossMargin is the energy above which offending goals stop being
	// pushed up.
	LossMargin = 10.0
	// LossSlack is the minimum combined goal and path distance for a goal
	// to count as offending.
	LossSlack = 10.0
)

// SSEPrep locates the anchors of the square-square energy loss: the index
// of the goal nearest the ground-truth goal, and the most offensive index,
// the lowest-scoring goal whose combined goal and path distance is at
// least eps. offender is -1 when no goal offends. Ties keep the first goal
// in iteration order.
func SSEPrep(goals []Point, scores []float64, gt Point, path *QuadPath, m, eps float64) (target, offender int) {
	target = floats.MinIdx(Distances(goals, gt))
	offender = -1
	moScore := math.Inf(1)
	for i, g := range goals {
		if scores[i] >= math.Min(moScore, m) {
			continue
		}
		gd := g.Distance(gt)
		td := 0.0
		if path != nil {
			_, proj := path.Project(g)
			td = g.Distance(proj)
		}
		if gd+td >= eps {
			moScore = scores[i]
			offender = i
		}
	}
	return target, offender
}

// SquareSquareLoss is the margin-based energy loss: the target goal's
// energy is pushed toward zero, and an offending goal with energy under
// the margin m is pushed up to it. The result is non-negative, and zero
// contribution comes from the second term when nothing offends.
func SquareSquareLoss(scores []float64, target, offender int, m float64) float64 {
	loss := scores[target] * scores[target]
	if offender >= 0 && scores[offender] < m {
		d := m - scores[offender]
		loss += d * d
	}
	return loss
}
