package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spreadlab/viralcent/core"
)

// Sentinel errors for dataset decoding.
var (
	// ErrEmptyDataset indicates the top-level JSON array has no elements.
	ErrEmptyDataset = errors.New("dataset: no network object in file")

	// ErrBadShape indicates the adjacency lists disagree in length.
	ErrBadShape = errors.New("dataset: inconsistent list lengths")
)

// record mirrors one network object of the published JSON layout.
type record struct {
	InList       [][]int     `json:"inList"`
	InWeight     [][]float64 `json:"inWeight"`
	OutList      [][]int     `json:"outList"`
	OutWeight    [][]float64 `json:"outWeight"`
	UsernameList []string    `json:"usernameList"`
}

// Load decodes a network from r. It returns the adjacency and the
// per-node username table, in the same index space.
func Load(r io.Reader) (*core.Adjacency, []string, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyDataset
	}

	return assemble(records[0])
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*core.Adjacency, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// assemble shape-checks one decoded record and lifts it into the core
// model. Values are moved, not copied — the record is discarded after.
func assemble(rec record) (*core.Adjacency, []string, error) {
	n := len(rec.InList)
	if len(rec.InWeight) != n || len(rec.OutList) != n || len(rec.OutWeight) != n {
		return nil, nil, fmt.Errorf("dataset: lists span %d/%d/%d/%d nodes: %w",
			n, len(rec.InWeight), len(rec.OutList), len(rec.OutWeight), ErrBadShape)
	}
	if len(rec.UsernameList) != n {
		return nil, nil, fmt.Errorf("dataset: %d usernames for %d nodes: %w",
			len(rec.UsernameList), n, ErrBadShape)
	}
	for i := 0; i < n; i++ {
		if len(rec.InList[i]) != len(rec.InWeight[i]) {
			return nil, nil, fmt.Errorf("dataset: node %d: inList has %d entries but inWeight has %d: %w",
				i, len(rec.InList[i]), len(rec.InWeight[i]), ErrBadShape)
		}
		if len(rec.OutList[i]) != len(rec.OutWeight[i]) {
			return nil, nil, fmt.Errorf("dataset: node %d: outList has %d entries but outWeight has %d: %w",
				i, len(rec.OutList[i]), len(rec.OutWeight[i]), ErrBadShape)
		}
	}

	adj := &core.Adjacency{
		InNeighbors:  rec.InList,
		InWeights:    rec.InWeight,
		OutNeighbors: rec.OutList,
		OutWeights:   rec.OutWeight,
	}

	return adj, rec.UsernameList, nil
}
