package viral

import (
	"fmt"
	"math"

	"github.com/spreadlab/viralcent/core"
)

// validateOptions re-checks Options that may have been built by hand
// rather than through the Option constructors. Returns plain sentinel
// wraps so call sites can branch with errors.Is.
func validateOptions(o *Options) error {
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) {
		return fmt.Errorf("viral: Tolerance=%v: %w", o.Tolerance, ErrBadTolerance)
	}
	if o.TransmissionScale < 0 || math.IsNaN(o.TransmissionScale) || math.IsInf(o.TransmissionScale, 0) {
		return fmt.Errorf("viral: TransmissionScale=%v: %w", o.TransmissionScale, ErrBadTransmissionScale)
	}

	return nil
}

// validateAdjacency performs the full pre-iteration shape check of the
// engine contract: per-node list-length agreement, node ids in [0, N),
// weights finite and non-negative — on both the in- and out-side
// structures. It never mutates and runs in O(N + E).
//
// Cross-node in/out consistency is deliberately NOT checked: the
// adjacency is trusted as given, consistency is the producer's job.
func validateAdjacency(adj *core.Adjacency) error {
	if adj == nil {
		return ErrNilAdjacency
	}

	n := adj.NumNodes()
	if len(adj.InWeights) != n || len(adj.OutNeighbors) != n || len(adj.OutWeights) != n {
		return fmt.Errorf("viral: top-level lists span %d/%d/%d/%d nodes: %w",
			n, len(adj.InWeights), len(adj.OutNeighbors), len(adj.OutWeights), ErrInvalidGraphInput)
	}

	for i := 0; i < n; i++ {
		if err := validateSide(i, n, "in", adj.InNeighbors[i], adj.InWeights[i]); err != nil {
			return err
		}
		if err := validateSide(i, n, "out", adj.OutNeighbors[i], adj.OutWeights[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateSide checks one node's neighbor/weight list pair.
func validateSide(node, n int, side string, neighbors []int, weights []float64) error {
	if len(neighbors) != len(weights) {
		return fmt.Errorf("viral: node %d: %sNeighbors has %d entries but %sWeights has %d: %w",
			node, side, len(neighbors), side, len(weights), ErrInvalidGraphInput)
	}
	for k, nb := range neighbors {
		if nb < 0 || nb >= n {
			return fmt.Errorf("viral: node %d: %sNeighbors[%d]=%d outside [0,%d): %w",
				node, side, k, nb, n, ErrInvalidGraphInput)
		}
		if w := weights[k]; w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("viral: node %d: %sWeights[%d]=%v must be finite and non-negative: %w",
				node, side, k, w, ErrInvalidGraphInput)
		}
	}

	return nil
}
