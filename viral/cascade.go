package viral

import (
	"gonum.org/v1/gonum/floats"

	"github.com/spreadlab/viralcent/core"
)

// ExpectedActivations computes the spread estimate of every node with
// the per-seed cascade model: each node in turn is seeded as the sole
// initially-activated node and the probabilistic contagion is advanced
// over its reachable set until it settles (or hits the sweep cap).
// Entry i of the result is the expected number of OTHER nodes a
// contagion seeded at i activates — the seed's own activation is not
// counted.
//
// Per seed, each node carries a survival probability ("still
// uninfected") starting at 1, and a probability of having been
// activated on the previous step. One time step:
//
//  1. Grow the reachable frontier by one breadth-first ring along the
//     OUT-adjacency (nodes the contagion could have reached by now).
//  2. For every reachable node i, the chance it survives this step is
//     Π_k (1 - lastInfected[j_k]·scale·w[i][k]) over its in-edges —
//     each freshly-activated in-neighbor is an independent shot at it.
//  3. Fold the step into the running probabilities.
//
// Termination: with a non-negative MaxIterations the cascade runs for
// exactly that many steps. With Uncapped it runs until the largest
// RELATIVE drop of any reachable node's survival probability is ≤
// Tolerance (relative, because late-cascade probabilities are tiny and
// an absolute test would stop too early).
//
// Unlike Centrality this routine genuinely consumes the out-adjacency;
// both sides are validated either way.
//
// opts == nil selects DefaultOptions. Errors: ErrNilAdjacency,
// ErrInvalidGraphInput, ErrBadTolerance, ErrBadTransmissionScale —
// all detected before any iteration.
func ExpectedActivations(adj *core.Adjacency, opts *Options) ([]float64, error) {
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
	result := make([]float64, n)
	if n == 0 {
		return result, nil
	}

	// Working buffers, reused across seeds; each seed resets them in O(N).
	var (
		uninfected   = make([]float64, n) // P(node not yet activated)
		lastInfected = make([]float64, n) // P(node activated on previous step)
		curInfected  = make([]float64, n) // P(node activated on current step)
		queue        = make([]int, n)     // frontier buffer, first-in/first-out
		seedDist     = make([]int, n)     // ring number from seed, -1 = unreached
	)

	for seed := 0; seed < n; seed++ {
		for i := 0; i < n; i++ {
			uninfected[i] = 1
			lastInfected[i] = 0
			curInfected[i] = 0
			seedDist[i] = -1
		}
		uninfected[seed] = 0
		lastInfected[seed] = 1
		queue[0] = seed
		seedDist[seed] = 0
		read, write := 0, 1

		for t := 0; o.MaxIterations < 0 || t < o.MaxIterations; t++ {
			// Expand the frontier by one ring; read == write means the
			// breadth-first search is exhausted.
			if read != write {
				writeStart := write
				for read < writeStart {
					v := queue[read]
					for _, nb := range adj.OutNeighbors[v] {
						if seedDist[nb] < 0 {
							seedDist[nb] = t + 1
							queue[write] = nb
							write++
						}
					}
					read++
				}
			}

			// Step probabilities for every reachable node, from the
			// previous step's activations only (synchronous update).
			for _, node := range queue[:write] {
				pSurvive := 1.0
				neighbors := adj.InNeighbors[node]
				weights := adj.InWeights[node]
				for k, j := range neighbors {
					pSurvive *= 1 - lastInfected[j]*o.TransmissionScale*weights[k]
				}
				curInfected[node] = (1 - pSurvive) * uninfected[node]
			}

			// Fold the step in and measure the largest relative drop of
			// any survival probability. The seed (and any node already
			// at 0) is skipped — no relative change is defined there.
			maxRel := 0.0
			for _, node := range queue[:write] {
				prev := uninfected[node]
				lastInfected[node] = curInfected[node]
				uninfected[node] = prev - curInfected[node]
				if prev > 0 {
					if rel := curInfected[node] / prev; rel > maxRel {
						maxRel = rel
					}
				}
			}

			if o.MaxIterations < 0 && maxRel <= o.Tolerance {
				break
			}
		}

		// Expected activations: total activation probability mass minus
		// the seed's own (which is 1 by construction).
		result[seed] = float64(n) - floats.Sum(uninfected) - 1
	}

	return result, nil
}
