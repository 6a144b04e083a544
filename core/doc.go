// Package core defines the dense-indexed weighted adjacency model that
// every other viralcent package produces or consumes.
//
// A network with N nodes is identified by the integers [0, N): every
// index is a valid node id, including isolated ones. For each node the
// model keeps two parallel pairs of lists:
//
//	InNeighbors[i][k]  — the k-th node with an edge pointing into i
//	InWeights[i][k]    — the weight of that edge
//	OutNeighbors[i][k] — the k-th node i points at
//	OutWeights[i][k]   — the weight of that edge
//
// Invariant: each neighbor list and its weight list have equal length.
// Weights are non-negative finite reals; a weight of zero is a legal
// edge that contributes nothing downstream.
//
// The model is a plain data holder: no locks, no hidden indices. It is
// safe for any number of concurrent readers; mutation (AddEdge) must
// not race with reads. Cross-node in/out consistency is the producer's
// responsibility — consumers validate shape only.
//
// Errors:
//
//	ErrNodeOutOfRange - an edge endpoint is outside [0, N).
//	ErrBadWeight      - an edge weight is negative, NaN, or infinite.
package core
