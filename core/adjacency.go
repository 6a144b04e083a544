package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for adjacency construction.
var (
	// ErrNodeOutOfRange indicates an edge endpoint outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrBadWeight indicates a negative, NaN, or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")
)

// Adjacency is the weighted directed adjacency of a dense-indexed
// network: node ids are exactly the integers [0, N).
//
// The four lists are exported on purpose — the numeric kernels in
// viral/ index them directly, and producers such as builder/ and
// dataset/ may fill them without going through AddEdge as long as the
// per-node length invariant holds.
type Adjacency struct {
	// InNeighbors[i] lists the nodes with an edge pointing into i.
	InNeighbors [][]int

	// InWeights[i][k] is the weight of the edge InNeighbors[i][k] → i.
	InWeights [][]float64

	// OutNeighbors[i] lists the nodes i points at.
	OutNeighbors [][]int

	// OutWeights[i][k] is the weight of the edge i → OutNeighbors[i][k].
	OutWeights [][]float64
}

// NewAdjacency returns an empty adjacency over n nodes. Every list is
// allocated (non-nil) and empty, so an isolated node reads as a node
// with zero neighbors rather than a missing entry.
//
// Panics if n is negative (programmer error, not graph input).
func NewAdjacency(n int) *Adjacency {
	if n < 0 {
		panic("core: NewAdjacency(n < 0)")
	}
	a := &Adjacency{
		InNeighbors:  make([][]int, n),
		InWeights:    make([][]float64, n),
		OutNeighbors: make([][]int, n),
		OutWeights:   make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		a.InNeighbors[i] = []int{}
		a.InWeights[i] = []float64{}
		a.OutNeighbors[i] = []int{}
		a.OutWeights[i] = []float64{}
	}

	return a
}

// NumNodes reports N, the number of nodes the adjacency spans.
func (a *Adjacency) NumNodes() int { return len(a.InNeighbors) }

// EdgeCount reports the number of directed edges, counted on the
// out-side lists. For adjacency built through AddEdge the in-side
// count is identical; hand-filled structures may disagree.
func (a *Adjacency) EdgeCount() int {
	var total int
	for i := range a.OutNeighbors {
		total += len(a.OutNeighbors[i])
	}

	return total
}

// AddEdge appends the directed edge from → to with weight w, updating
// the out-lists of from and the in-lists of to in one step so both
// sides stay mutually consistent.
//
// Parallel edges are permitted (each call appends a new entry); so are
// self-loops. Returns ErrNodeOutOfRange or ErrBadWeight, each wrapped
// with the offending endpoint or weight, and mutates nothing on error.
func (a *Adjacency) AddEdge(from, to int, w float64) error {
	n := a.NumNodes()
	if from < 0 || from >= n {
		return fmt.Errorf("core: AddEdge: from=%d with N=%d: %w", from, n, ErrNodeOutOfRange)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("core: AddEdge: to=%d with N=%d: %w", to, n, ErrNodeOutOfRange)
	}
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("core: AddEdge: weight=%v: %w", w, ErrBadWeight)
	}

	a.OutNeighbors[from] = append(a.OutNeighbors[from], to)
	a.OutWeights[from] = append(a.OutWeights[from], w)
	a.InNeighbors[to] = append(a.InNeighbors[to], from)
	a.InWeights[to] = append(a.InWeights[to], w)

	return nil
}

// Clone returns a deep copy sharing no backing storage with a.
func (a *Adjacency) Clone() *Adjacency {
	c := &Adjacency{
		InNeighbors:  cloneInts(a.InNeighbors),
		InWeights:    cloneFloats(a.InWeights),
		OutNeighbors: cloneInts(a.OutNeighbors),
		OutWeights:   cloneFloats(a.OutWeights),
	}

	return c
}

// cloneInts deep-copies a list-of-lists of node ids.
func cloneInts(src [][]int) [][]int {
	dst := make([][]int, len(src))
	for i, row := range src {
		dst[i] = append([]int{}, row...)
	}

	return dst
}

// cloneFloats deep-copies a list-of-lists of weights.
func cloneFloats(src [][]float64) [][]float64 {
	dst := make([][]float64, len(src))
	for i, row := range src {
		dst[i] = append([]float64{}, row...)
	}

	return dst
}
