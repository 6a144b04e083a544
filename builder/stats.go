// SPDX-License-Identifier: MIT
// Package: viralcent/builder
//
// stats.go — summary statistics of the built edge-weight population.

package builder

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/spreadlab/viralcent/core"
)

// WeightStats summarizes the distribution of a network's edge weights.
// The normalized weights of an influence network tend to be heavily
// right-skewed (most influence rates tiny, a few dominant), so the
// summary carries the spread alongside the mean.
type WeightStats struct {
	Count  int     // number of directed edges
	Min    float64 // smallest weight (0 if no edges)
	Max    float64 // largest weight (0 if no edges)
	Mean   float64 // arithmetic mean (0 if no edges)
	StdDev float64 // sample standard deviation (0 if fewer than 2 edges)
}

// Weights collects every out-edge weight of adj into one flat slice,
// in node order. The slice is freshly allocated.
func Weights(adj *core.Adjacency) []float64 {
	all := make([]float64, 0, adj.EdgeCount())
	for i := range adj.OutWeights {
		all = append(all, adj.OutWeights[i]...)
	}

	return all
}

// Stats computes WeightStats over the out-edge weights of adj.
// An edgeless network yields the zero value.
func Stats(adj *core.Adjacency) WeightStats {
	ws := Weights(adj)
	if len(ws) == 0 {
		return WeightStats{}
	}

	s := WeightStats{
		Count: len(ws),
		Min:   floats.Min(ws),
		Max:   floats.Max(ws),
		Mean:  stat.Mean(ws, nil),
	}
	if len(ws) > 1 {
		s.StdDev = stat.StdDev(ws, nil)
	}

	return s
}
