// Package viralcent estimates how far a contagion started at each node
// of a weighted, directed network would spread — the Viral Centrality
// measure — together with the pipeline that produces such networks from
// raw social-interaction logs.
//
// 🚀 What is viralcent?
//
//	A small, focused library organized as a strict one-way pipeline:
//		• fetcher/  — rate-limited, paginated acquisition of posts from a
//		  social-network API (explicit config, no global client state)
//		• builder/  — turns typed interaction records into a weighted
//		  directed multigraph (accumulate → normalize → prune)
//		• dataset/  — codec for the published network-data JSON layout
//		• core/     — the dense-indexed adjacency model shared by all of it
//		• viral/    — the numeric heart: fixed-point spread estimation and
//		  the per-seed cascade model, with explicit convergence policy
//
// ✨ Why choose viralcent?
//
//   - Deterministic – same graph, same options ⇒ bit-identical output
//   - Pure kernels – viral/ performs no I/O and touches no global state
//   - Honest failures – malformed adjacency fails fast with sentinel
//     errors naming the offending node and field, never a partial result
//   - Concurrency-safe by construction – each computation owns its
//     working vectors exclusively; run one per graph, in parallel
//
// Quick taste:
//
//	adj := core.NewAdjacency(2)
//	_ = adj.AddEdge(0, 1, 1.0) // node 0 influences node 1
//
//	opts := viral.DefaultOptions()
//	opts.Tolerance = 0.001
//	spread, err := viral.Centrality(adj, &opts)
//	// spread[0] == 0, spread[1] == 1.0
//
// Dive into each package's doc.go for the full contract.
package viralcent
