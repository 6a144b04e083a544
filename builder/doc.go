// SPDX-License-Identifier: MIT
// Package: viralcent/builder
//
// Package builder turns raw social-interaction logs into the weighted
// directed adjacency consumed by viral/.
//
// Pipeline (strict, three phases):
//
//	accumulate → normalize → prune
//
//  1. Accumulate. Every Interaction{Source, Dest, Kind} adds 1 to the
//     weight of the Source→Dest edge. Source is the influencer: when
//     user A replies to, reposts, quotes, or mentions user B, the
//     interaction runs B→A ("who influenced me"). Self-interactions
//     and interactions touching users outside the activity roster are
//     dropped.
//  2. Normalize. Each accumulated weight is divided by the source
//     user's activity count (posts authored in the observation
//     window), turning raw counts into per-post influence rates.
//  3. Prune. A source whose activity count is below MinActivity is
//     removed from the graph entirely — its outgoing edges AND its
//     incoming ones go with it. Users that end up with no incident
//     edge never become nodes.
//
// The surviving users are re-indexed densely: Build returns the
// adjacency plus an id table mapping node index → UserID, sorted
// ascending so identical inputs always yield identical graphs.
//
// Interactions(post) flattens one authored post into its interaction
// records, applying the per-post rule that a mention of a user already
// credited through a reply/repost/quote on the same post is not
// double-counted.
//
// Determinism: no RNG, no map-order dependence in outputs; same
// records and options ⇒ identical adjacency and id table.
//
// Errors (sentinel, branch with errors.Is):
//
//	ErrUnknownKind      - an Interaction carries a Kind outside the enum.
//	ErrNegativeActivity - an activity count below zero.
package builder
