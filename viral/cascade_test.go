package viral_test

import (
	"testing"

	"github.com/spreadlab/viralcent/core"
	"github.com/spreadlab/viralcent/viral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// path builds 0→1→…→(n-1) with uniform weight w.
func path(t *testing.T, n int, w float64) *core.Adjacency {
	t.Helper()
	adj := core.NewAdjacency(n)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, adj.AddEdge(i, i+1, w))
	}

	return adj
}

// TestExpectedActivations_CertainChain verifies weight-1 edges carry
// the infection with certainty: a seed activates everything downstream,
// not itself.
func TestExpectedActivations_CertainChain(t *testing.T) {
	adj := path(t, 3, 1.0)
	opts := viral.DefaultOptions(viral.WithUncapped(), viral.WithTolerance(0.001))

	got, err := viral.ExpectedActivations(adj, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got[0], 1e-12, "seed 0 reaches nodes 1 and 2")
	assert.InDelta(t, 1.0, got[1], 1e-12, "seed 1 reaches node 2 only")
	assert.InDelta(t, 0.0, got[2], 1e-12, "sink seeds nobody")
}

// TestExpectedActivations_ProbabilityEdge verifies a single edge of
// weight p yields expected activations exactly p.
func TestExpectedActivations_ProbabilityEdge(t *testing.T) {
	adj := path(t, 2, 0.5)
	opts := viral.DefaultOptions(viral.WithUncapped(), viral.WithTolerance(0.001))

	got, err := viral.ExpectedActivations(adj, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got[0], 1e-12)
	assert.InDelta(t, 0.0, got[1], 1e-12)
}

// TestExpectedActivations_ChainCompounds verifies transmission
// probabilities multiply along a chain: 1.0 then 0.5 gives 1 + 0.5.
func TestExpectedActivations_ChainCompounds(t *testing.T) {
	adj := core.NewAdjacency(3)
	require.NoError(t, adj.AddEdge(0, 1, 1.0))
	require.NoError(t, adj.AddEdge(1, 2, 0.5))
	opts := viral.DefaultOptions(viral.WithUncapped(), viral.WithTolerance(0.001))

	got, err := viral.ExpectedActivations(adj, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got[0], 1e-12)
}

// TestExpectedActivations_MatchesTransposedCentrality verifies the
// relationship between the two models: the cascade credits the seed
// with its downstream reach, the fixed-point recurrence credits a node
// with its upstream exposure. On acyclic certain-transmission graphs
// both reduce to reachable-set counting, so the cascade on g equals
// the fixed point on g with every edge reversed.
func TestExpectedActivations_MatchesTransposedCentrality(t *testing.T) {
	adj := core.NewAdjacency(4)
	require.NoError(t, adj.AddEdge(0, 1, 1.0))
	require.NoError(t, adj.AddEdge(0, 2, 1.0))
	require.NoError(t, adj.AddEdge(2, 3, 1.0))

	transposed := &core.Adjacency{
		InNeighbors:  adj.OutNeighbors,
		InWeights:    adj.OutWeights,
		OutNeighbors: adj.InNeighbors,
		OutWeights:   adj.InWeights,
	}
	opts := viral.DefaultOptions(viral.WithUncapped(), viral.WithTolerance(0))

	cascade, err := viral.ExpectedActivations(adj, &opts)
	require.NoError(t, err)
	fixed, err := viral.Centrality(transposed, &opts)
	require.NoError(t, err)

	for i := range cascade {
		assert.InDelta(t, fixed[i], cascade[i], 1e-12, "models must agree at node %d", i)
	}
}

// TestExpectedActivations_CapLimitsReach verifies a finite cap runs
// exactly that many time steps: the infection travels one hop per step.
func TestExpectedActivations_CapLimitsReach(t *testing.T) {
	adj := path(t, 4, 1.0)

	opts := viral.DefaultOptions(viral.WithMaxIterations(1))
	got, err := viral.ExpectedActivations(adj, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got[0], 1e-12, "one step reaches one hop")

	opts = viral.DefaultOptions(viral.WithMaxIterations(3))
	got, err = viral.ExpectedActivations(adj, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got[0], 1e-12, "three steps exhaust the chain")
}

// TestExpectedActivations_ZeroCap verifies MaxIterations=0 leaves every
// estimate at zero.
func TestExpectedActivations_ZeroCap(t *testing.T) {
	adj := path(t, 3, 1.0)
	opts := viral.DefaultOptions(viral.WithMaxIterations(0))

	got, err := viral.ExpectedActivations(adj, &opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, got)
}

// TestExpectedActivations_TransmissionScale verifies the beta
// multiplier attenuates every edge uniformly.
func TestExpectedActivations_TransmissionScale(t *testing.T) {
	adj := path(t, 2, 1.0)
	opts := viral.DefaultOptions(
		viral.WithUncapped(),
		viral.WithTolerance(0.001),
		viral.WithTransmissionScale(0.25),
	)

	got, err := viral.ExpectedActivations(adj, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got[0], 1e-12)
}

// TestExpectedActivations_CycleTerminates verifies the uncapped mode
// settles on a cycle where survival probabilities shrink geometrically.
func TestExpectedActivations_CycleTerminates(t *testing.T) {
	adj := core.NewAdjacency(3)
	require.NoError(t, adj.AddEdge(0, 1, 0.5))
	require.NoError(t, adj.AddEdge(1, 2, 0.5))
	require.NoError(t, adj.AddEdge(2, 0, 0.5))
	opts := viral.DefaultOptions(viral.WithUncapped(), viral.WithTolerance(0.001))

	got, err := viral.ExpectedActivations(adj, &opts)
	require.NoError(t, err)
	for i, v := range got {
		assert.Greater(t, v, 0.0, "cycle node %d must activate someone", i)
		assert.Less(t, v, 2.0, "expected activations bounded by reachable set at node %d", i)
	}
}

// TestExpectedActivations_NoEdges verifies the all-zero result on an
// edgeless graph.
func TestExpectedActivations_NoEdges(t *testing.T) {
	got, err := viral.ExpectedActivations(core.NewAdjacency(3), nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, got)
}

// TestExpectedActivations_ValidatesInput verifies the shared validation
// runs before any cascade.
func TestExpectedActivations_ValidatesInput(t *testing.T) {
	_, err := viral.ExpectedActivations(nil, nil)
	assert.ErrorIs(t, err, viral.ErrNilAdjacency)

	adj := &core.Adjacency{
		InNeighbors:  [][]int{{}},
		InWeights:    [][]float64{{}},
		OutNeighbors: [][]int{{5}},
		OutWeights:   [][]float64{{1.0}},
	}
	_, err = viral.ExpectedActivations(adj, nil)
	assert.ErrorIs(t, err, viral.ErrInvalidGraphInput,
		"out-of-range out-neighbor must be caught before frontier expansion")
}

// TestExpectedActivations_PureFunction verifies repeatability and that
// the input survives untouched.
func TestExpectedActivations_PureFunction(t *testing.T) {
	adj := path(t, 4, 0.5)
	snapshot := adj.Clone()
	opts := viral.DefaultOptions(viral.WithUncapped(), viral.WithTolerance(0.001))

	first, err := viral.ExpectedActivations(adj, &opts)
	require.NoError(t, err)
	second, err := viral.ExpectedActivations(adj, &opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, adj)
}
