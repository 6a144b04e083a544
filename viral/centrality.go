package viral

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/spreadlab/viralcent/core"
)

// Centrality computes the spread estimate of every node by synchronous
// (Jacobi-style) fixed-point iteration over the in-adjacency.
//
// Algorithm outline:
//  1. Start from the all-zero vector: with no prior information, a
//     node is assumed to activate nobody.
//  2. Each sweep derives a full new vector from the previous one:
//     next[i] = Σ_k scale·w[i][k] · (1 + cur[inNeighbors[i][k]])
//     — in-neighbor j, if activated, contributes itself plus whatever
//     it would go on to activate, attenuated by the edge weight.
//     Influence therefore flows along the direction edges point: an
//     edge j→i means activity at j adds to i's exposure.
//  3. delta = max_i |next[i] - cur[i]| (L∞ change).
//  4. Stop when delta ≤ Tolerance, or when the sweep count reaches
//     MaxIterations (unless Uncapped).
//
// Properties:
//   - A node with no in-neighbors is 0 from the first sweep on.
//   - All weights non-negative ⇒ the estimates grow monotonically from
//     the zero start toward the fixed point.
//   - Self-loops are legal input and feed a node's own prior value
//     back into its update; excluding them is the producer's call.
//   - No division anywhere — divide-by-zero cannot occur.
//
// opts == nil selects DefaultOptions. The returned vector has exactly
// NumNodes entries, indexable by node id; it is freshly allocated per
// call and owned by the caller.
//
// Errors: ErrNilAdjacency, ErrInvalidGraphInput, ErrBadTolerance,
// ErrBadTransmissionScale — all detected before any iteration.
func Centrality(adj *core.Adjacency, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(&o); err != nil {
		return nil, err
	}
	if err := validateAdjacency(adj); err != nil {
		return nil, err
	}

	n := adj.NumNodes()
	cur := make([]float64, n)
	if n == 0 {
		return cur, nil
	}
	next := make([]float64, n)
	inf := math.Inf(1)

	for sweeps := 0; o.MaxIterations < 0 || sweeps < o.MaxIterations; sweeps++ {
		for i := 0; i < n; i++ {
			neighbors := adj.InNeighbors[i]
			weights := adj.InWeights[i]
			var sum float64
			for k, j := range neighbors {
				sum += o.TransmissionScale * weights[k] * (1 + cur[j])
			}
			next[i] = sum
		}

		// L∞ distance between consecutive sweeps.
		delta := floats.Distance(next, cur, inf)
		cur, next = next, cur
		if delta <= o.Tolerance {
			break
		}
	}

	return cur, nil
}
