package dataset_test

import (
	"strings"
	"testing"

	"github.com/spreadlab/viralcent/dataset"
	"github.com/spreadlab/viralcent/viral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validNetwork is a 3-node network in the published layout:
// alice→bob (0.5), bob→carol (0.25).
const validNetwork = `[{
	"inList":       [[], [0], [1]],
	"inWeight":     [[], [0.5], [0.25]],
	"outList":      [[1], [2], []],
	"outWeight":    [[0.5], [0.25], []],
	"usernameList": ["alice", "bob", "carol"]
}]`

// TestLoad_ValidNetwork verifies the happy path end to end, including
// that the decoded adjacency is accepted by the engine.
func TestLoad_ValidNetwork(t *testing.T) {
	adj, names, err := dataset.Load(strings.NewReader(validNetwork))
	require.NoError(t, err)

	assert.Equal(t, 3, adj.NumNodes())
	assert.Equal(t, []string{"alice", "bob", "carol"}, names)
	assert.Equal(t, []int{0}, adj.InNeighbors[1])
	assert.Equal(t, []float64{0.25}, adj.InWeights[2])

	opts := viral.DefaultOptions(viral.WithUncapped(), viral.WithTolerance(0.001))
	spread, err := viral.Centrality(adj, &opts)
	require.NoError(t, err, "decoded network must pass engine validation")
	assert.Equal(t, 0.0, spread[0])
	assert.InDelta(t, 0.5, spread[1], 1e-12)
}

// TestLoad_EmptyArray verifies the empty-dataset sentinel.
func TestLoad_EmptyArray(t *testing.T) {
	_, _, err := dataset.Load(strings.NewReader(`[]`))
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)
}

// TestLoad_MalformedJSON verifies decode failures surface as errors,
// not as empty networks.
func TestLoad_MalformedJSON(t *testing.T) {
	_, _, err := dataset.Load(strings.NewReader(`{"inList": }`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, dataset.ErrBadShape)
}

// TestLoad_ShapeMismatches verifies each shape guard fires with
// ErrBadShape and a message naming the problem.
func TestLoad_ShapeMismatches(t *testing.T) {
	cases := map[string]string{
		"top-level span": `[{
			"inList": [[]], "inWeight": [[], []],
			"outList": [[]], "outWeight": [[]],
			"usernameList": ["a"]
		}]`,
		"username count": `[{
			"inList": [[]], "inWeight": [[]],
			"outList": [[]], "outWeight": [[]],
			"usernameList": ["a", "b"]
		}]`,
		"in pair": `[{
			"inList": [[0]], "inWeight": [[0.5, 0.5]],
			"outList": [[]], "outWeight": [[]],
			"usernameList": ["a"]
		}]`,
		"out pair": `[{
			"inList": [[]], "inWeight": [[]],
			"outList": [[0]], "outWeight": [[]],
			"usernameList": ["a"]
		}]`,
	}

	for name, doc := range cases {
		_, _, err := dataset.Load(strings.NewReader(doc))
		assert.ErrorIs(t, err, dataset.ErrBadShape, "case %q", name)
	}
}

// TestLoadFile_Missing verifies a useful error for an absent file.
func TestLoadFile_Missing(t *testing.T) {
	_, _, err := dataset.LoadFile("does/not/exist.json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "open")
}
