// Package dataset reads the published network-data JSON layout into
// the core adjacency model.
//
// The layout is a JSON array whose first element carries the whole
// network (the published file wraps a single object in an array):
//
//	[{
//	  "inList":       [[...], ...],  // in-neighbor ids per node
//	  "inWeight":     [[...], ...],  // matching in-edge weights
//	  "outList":      [[...], ...],  // out-neighbor ids per node
//	  "outWeight":    [[...], ...],  // matching out-edge weights
//	  "usernameList": ["...", ...]   // display name per node
//	}]
//
// Load performs shape validation (array non-empty, the four adjacency
// lists span the same node count, each neighbor list matches its
// weight list, username count matches) so a decoded network is safe to
// hand to viral/ — deep validation of ids and weights stays with the
// engine, which re-checks on every call anyway.
//
// Errors:
//
//	ErrEmptyDataset - the top-level array has no elements.
//	ErrBadShape     - the lists disagree in length; the wrapped message
//	                  names the node and field.
package dataset
