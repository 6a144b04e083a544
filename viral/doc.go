// Package viral computes per-node spread estimates on weighted,
// directed networks: for every node, the expected number of other
// nodes a contagion seeded there would eventually activate.
//
// 🚀 What is viral centrality?
//
//	Model activity at a node as an infection that travels along the
//	network's edges with per-edge transmission weights. A node's viral
//	centrality is the expected count of nodes it ends up activating.
//	Two routines are provided:
//	  • Centrality — synchronous (Jacobi-style) fixed-point iteration
//	    over the in-adjacency: cheap, deterministic, one sweep touches
//	    every edge once.
//	  • ExpectedActivations — the per-seed cascade model: simulates the
//	    probabilistic spread from each seed over its reachable set,
//	    expanding the frontier breadth-first ring by ring.
//
// Convergence policy (shared):
//
//   - Tolerance — iteration stops once the per-sweep change drops to
//     this value or below (absolute L∞ change for Centrality, largest
//     relative change of the survival probabilities for
//     ExpectedActivations, mirroring the published routine).
//   - MaxIterations — hard cap on sweeps; Uncapped (-1) removes the
//     cap and leaves termination to Tolerance alone. With Uncapped, a
//     cycle whose total weight reaches 1 may never contract — the
//     engine does not detect this; callers wanting a guaranteed bound
//     must keep a finite cap (the default).
//
// Purity:
//
//	Both routines are pure functions of their inputs: no I/O, no
//	global state, fresh working vectors per call. Independent calls
//	may run concurrently without coordination.
//
// Failure semantics:
//
//	Malformed adjacency (list-length mismatch, out-of-range node id,
//	negative or non-finite weight) fails before any iteration with an
//	error wrapping ErrInvalidGraphInput that names the offending node
//	and field. A partial result is never produced.
//
// Errors (sentinel):
//
//	ErrNilAdjacency         - the adjacency pointer is nil.
//	ErrInvalidGraphInput    - shape mismatch, bad node id, or bad weight.
//	ErrBadTolerance         - Tolerance is negative or NaN.
//	ErrBadTransmissionScale - TransmissionScale is negative or non-finite.
//
// Example usage:
//
//	opts := viral.DefaultOptions()
//	opts.MaxIterations = viral.Uncapped
//	opts.Tolerance = 0.001
//
//	spread, err := viral.Centrality(adj, &opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("node 0 activates %.2f nodes on average\n", spread[0])
//
// Complexity:
//
//   - Centrality:          O(S·E) time, O(N) extra space,
//     S = sweeps until convergence or cap.
//   - ExpectedActivations: O(N·S·E) time, O(N) extra space
//     (one cascade per seed).
package viral
