package dense

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NumModes is the number of endpoint hypotheses reported per example.
const NumModes = 6

// SelectParams tunes the multi-modal goal selector.
type SelectParams struct {
	T            float64 // softmax temperature over energies
	ModeRadius   float64 // suppression radius during mode seeking
	RefineRadius float64 // support radius during centroid refinement
	RefineIters  int     // refinement iterations
}

func DefaultSelectParams() SelectParams {
	return SelectParams{T: 20, ModeRadius: 2, RefineRadius: 3, RefineIters: 4}
}

// Softmax converts energies (lower = more plausible) into a probability
// field at the given temperature.
func Softmax(energies []float64, temperature float64) []float64 {
	probs := make([]float64, len(energies))
	for i, e := range energies {
		probs[i] = math.Exp(-e / temperature)
	}
	floats.Scale(1/floats.Sum(probs), probs)
	return probs
}

// modeSeek picks NumModes centres by repeatedly taking the goal whose
// ModeRadius ball holds the most probability mass, then zeroing that ball
// before the next round. probs is mutated.
func modeSeek(probs []float64, goals []Point, radius float64) [NumModes]Point {
	var centres [NumModes]Point
	for k := range centres {
		best := math.Inf(-1)
		bestIdx := 0
		for j, g := range goals {
			mass := 0.0
			for i, o := range goals {
				if o.Distance(g) < radius {
					mass += probs[i]
				}
			}
			if mass > best {
				best = mass
				bestIdx = j
			}
		}
		centres[k] = goals[bestIdx]
		for i, o := range goals {
			if o.Distance(centres[k]) < radius {
				probs[i] = 0
			}
		}
	}
	return centres
}

// refineCentres recomputes each centre as the probability-weighted mean of
// the goals within RefineRadius of it. The weight upweights goals that
// belong to this centre more exclusively than to competing centres:
//
//	w_i = p_i · (min_k d_ik + ε) / (d_ik² + ε)
//
// A centre whose support ball holds no goals is left where it is.
func refineCentres(probs []float64, goals []Point, centres [NumModes]Point, iters int, radius float64) [NumModes]Point {
	const eps = 1e-7
	dist := mat.NewDense(len(goals), NumModes, nil)
	row := make([]float64, NumModes)
	for it := 0; it < iters; it++ {
		for i, g := range goals {
			for k := range centres {
				dist.Set(i, k, g.Distance(centres[k]))
			}
		}
		for k := range centres {
			var sx, sy, sw float64
			for i, g := range goals {
				mat.Row(row, i, dist)
				dk := row[k]
				if dk > radius {
					continue
				}
				w := probs[i] * (floats.Min(row) + eps) / (dk*dk + eps)
				sx += g.X * w
				sy += g.Y * w
				sw += w
			}
			if sw > 0 {
				centres[k] = Pt(sx/sw, sy/sw)
			}
		}
	}
	return centres
}

// SelectGoals reduces each example's scored goal field to NumModes
// representative endpoints: softmax over energies, mode seeking, then
// weighted centroid refinement. The second return value is the per-example
// min-FDE diagnostic, the distance from the best of the six endpoints to
// the ground-truth goal.
func SelectGoals(scores [][]float64, goals [][]Point, gts []Point, p SelectParams) ([][NumModes]Point, []float64) {
	out := make([][NumModes]Point, len(scores))
	minFDE := make([]float64, len(scores))
	for i := range scores {
		probs := Softmax(scores[i], p.T)
		seek := append([]float64(nil), probs...)
		centres := modeSeek(seek, goals[i], p.ModeRadius)
		out[i] = refineCentres(probs, goals[i], centres, p.RefineIters, p.RefineRadius)

		best := math.Inf(1)
		for _, c := range out[i] {
			best = math.Min(best, c.Distance(gts[i]))
		}
		minFDE[i] = best
	}
	return out, minFDE
}

// AnnealSelect is a stochastic baseline for [SelectGoals]: random-restart
// local search over endpoint sets, minimizing the expected distance under
// the probability field and occasionally accepting worse moves. It is an
// approximate comparison baseline, not the primary selector. All
// randomness comes from rng, so a seeded source reproduces the search
// exactly.
func AnnealSelect(probs []float64, goals []Point, rng *rand.Rand) [NumModes]Point {
	const (
		restarts = 8
		steps    = 10000
		jitter   = 0.5
	)

	expectation := func(pts [NumModes]Point) float64 {
		best := math.Inf(1)
		for _, p := range pts {
			e := 0.0
			for i, g := range goals {
				e += probs[i] * g.Distance(p)
			}
			best = math.Min(best, e)
		}
		return best
	}

	var cur [NumModes]Point
	for i := range cur {
		cur[i] = goals[rng.Intn(len(goals))]
	}
	curE := expectation(cur)
	best, bestE := cur, curE

	for r := 0; r < restarts; r++ {
		for s := 0; s < steps; s++ {
			next := cur
			for i := range next {
				if rng.Float64() < 0.7 {
					next[i].X += rng.Float64()*2*jitter - jitter
					next[i].Y += rng.Float64()*2*jitter - jitter
					// A jittered point almost never lands back on the
					// lattice; snap it to a random goal instead.
					if floats.Min(Distances(goals, next[i])) > 0 {
						next[i] = goals[rng.Intn(len(goals))]
					}
				}
			}
			nextE := expectation(next)
			if nextE < curE || rng.Float64() < 0.01 {
				curE, cur = nextE, next
			}
			if curE < bestE {
				bestE, best = curE, cur
			}
		}
	}
	return best
}
