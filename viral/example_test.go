package viral_test

import (
	"fmt"

	"github.com/spreadlab/viralcent/core"
	"github.com/spreadlab/viralcent/viral"
)

// ExampleCentrality runs the fixed-point engine on the minimal
// two-node network: node 0 influences node 1 with weight 1.0.
// Node 0 has no in-neighbors and stays at 0; node 1 settles at
// 1.0·(1+0) = 1.0 after a single sweep.
func ExampleCentrality() {
	adj := core.NewAdjacency(2)
	if err := adj.AddEdge(0, 1, 1.0); err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := viral.DefaultOptions(viral.WithUncapped(), viral.WithTolerance(0.001))
	spread, err := viral.Centrality(adj, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, v := range spread {
		fmt.Printf("node %d: %.3f\n", i, v)
	}
	// Output:
	// node 0: 0.000
	// node 1: 1.000
}

// ExampleExpectedActivations runs the per-seed cascade on a two-hop
// chain where the first edge is certain and the second is a coin flip:
// seeding node 0 activates node 1 for sure and node 2 half the time.
func ExampleExpectedActivations() {
	adj := core.NewAdjacency(3)
	_ = adj.AddEdge(0, 1, 1.0)
	_ = adj.AddEdge(1, 2, 0.5)

	opts := viral.DefaultOptions(viral.WithUncapped(), viral.WithTolerance(0.001))
	activations, err := viral.ExpectedActivations(adj, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, v := range activations {
		fmt.Printf("seed %d activates %.2f nodes\n", i, v)
	}
	// Output:
	// seed 0 activates 1.50 nodes
	// seed 1 activates 0.50 nodes
	// seed 2 activates 0.00 nodes
}
