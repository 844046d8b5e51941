// Package dense builds and scores dense goal fields for multi-modal
// trajectory prediction.
//
// Given a vehicle's ground-truth future trajectory and the lane polylines
// around it, the package constructs a reference path anchored at the
// trajectory's endpoint ([BuildReferencePath]), fits a quadratic path to it
// ([FitQuadPath]), expands sparse candidate goals into a dense lattice
// ([Neighborhood]), and shapes supervision targets and a square-square
// energy loss for an external scoring model ([DenseTargets],
// [SquareSquareLoss]). At inference time the model's per-goal energies are
// reduced to six representative endpoints by mode seeking and weighted
// centroid refinement ([SelectGoals]).
//
// Scores follow an energy convention throughout: lower means more
// plausible, and [Softmax] negates them before normalizing.
//
// Everything operates on per-example values. Nothing in this package is
// shared across examples, performs I/O, or prescribes the scoring model
// beyond the energy convention. Batch helpers ([BatchSSEPrep],
// [BatchSquareSquareLoss]) fan out over examples, which are fully
// independent.
package dense
