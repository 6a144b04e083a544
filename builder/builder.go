// SPDX-License-Identifier: MIT
// Package: viralcent/builder
//
// builder.go — the accumulate → normalize → prune pipeline.

package builder

import (
	"fmt"
	"sort"

	"github.com/spreadlab/viralcent/core"
)

// edgeKey identifies a directed influence edge in the accumulation
// phase; one key per ordered (source, dest) pair.
type edgeKey struct {
	src UserID
	dst UserID
}

// edge is a normalized, kept edge awaiting dense re-indexing.
type edge struct {
	src UserID
	dst UserID
	w   float64
}

// Build runs the full pipeline over a flat interaction log.
//
// activity is the network roster: every in-network user mapped to the
// number of posts they authored in the observation window. It doubles
// as the membership filter — interactions touching users absent from
// the roster are dropped, exactly like self-interactions.
//
// Returned values: the dense adjacency, and the id table mapping node
// index → UserID (ascending). Users with no surviving incident edge do
// not appear; an empty log or total pruning yields a 0-node adjacency
// and an empty table, not an error.
//
// Determinism: outputs depend only on the multiset of interactions,
// the roster, and the options — never on map iteration order.
//
// Errors: ErrUnknownKind (wrapped with the record index) and
// ErrNegativeActivity (wrapped with the user id), both detected before
// any accumulation.
//
// Complexity: O(I + E·log E + U) time for I interactions, E distinct
// edges, U roster users; O(E + U) space.
func Build(interactions []Interaction, activity map[UserID]int, opts ...Option) (*core.Adjacency, []UserID, error) {
	cfg := newConfig(opts...)

	// Validate the whole input before touching any state.
	for i, rec := range interactions {
		if rec.Kind < KindReply || rec.Kind > KindMention {
			return nil, nil, fmt.Errorf("builder: interaction %d: kind=%d: %w", i, int(rec.Kind), ErrUnknownKind)
		}
	}
	for id, n := range activity {
		if n < 0 {
			return nil, nil, fmt.Errorf("builder: user %d: activity=%d: %w", id, n, ErrNegativeActivity)
		}
	}

	// Phase 1: accumulate raw counts per directed pair. Self-influence
	// and users outside the roster never enter the graph.
	counts := make(map[edgeKey]float64)
	for _, rec := range interactions {
		if rec.Source == rec.Dest {
			continue
		}
		if _, ok := activity[rec.Source]; !ok {
			continue
		}
		if _, ok := activity[rec.Dest]; !ok {
			continue
		}
		counts[edgeKey{src: rec.Source, dst: rec.Dest}]++
	}

	// Phase 3 bookkeeping first: a source below the threshold is
	// removed as a node, taking its incoming edges down with it.
	removed := make(map[UserID]struct{})
	for key := range counts {
		if activity[key.src] < cfg.minActivity {
			removed[key.src] = struct{}{}
		}
	}

	// Phase 2+3: normalize surviving edges by source activity and
	// collect the surviving node set.
	kept := make([]edge, 0, len(counts))
	nodeSet := make(map[UserID]struct{})
	for key, cnt := range counts {
		if _, gone := removed[key.src]; gone {
			continue
		}
		if _, gone := removed[key.dst]; gone {
			continue
		}
		kept = append(kept, edge{src: key.src, dst: key.dst, w: cnt / float64(activity[key.src])})
		nodeSet[key.src] = struct{}{}
		nodeSet[key.dst] = struct{}{}
	}

	// Dense re-indexing: ascending UserID keeps the output stable.
	ids := make([]UserID, 0, len(nodeSet))
	for id := range nodeSet {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[UserID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	// Stable edge order as well, so adjacency lists come out identical
	// run to run.
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].src != kept[j].src {
			return kept[i].src < kept[j].src
		}

		return kept[i].dst < kept[j].dst
	})

	adj := core.NewAdjacency(len(ids))
	for _, e := range kept {
		if err := adj.AddEdge(index[e.src], index[e.dst], e.w); err != nil {
			return nil, nil, fmt.Errorf("builder: Build: %w", err)
		}
	}

	return adj, ids, nil
}
