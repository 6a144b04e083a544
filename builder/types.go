// SPDX-License-Identifier: MIT
// Package: viralcent/builder
//
// types.go — typed interaction records.
//
// Design contract (strict):
//   - InteractionKind is a CLOSED enumeration; anything outside it is
//     rejected by Build with ErrUnknownKind, never coerced.
//   - Records carry no loosely-typed fields: every id is a UserID,
//     every kind a named constant. No late-bound lookups anywhere.
//   - Absence is an empty slice, not an error caught mid-parse:
//     a Post with nobody mentioned simply has Mentioned == nil.

package builder

// UserID identifies a user on the upstream social-network service.
type UserID int64

// InteractionKind classifies how one user engaged with another.
// The enumeration is closed: Build rejects values outside it.
type InteractionKind int

const (
	// KindReply — the acting user replied to the source user's post.
	KindReply InteractionKind = iota

	// KindRetweet — the acting user reposted the source user's post.
	KindRetweet

	// KindQuote — the acting user quote-posted the source user's post.
	KindQuote

	// KindMention — the acting user mentioned the source user.
	KindMention
)

// String returns the lowercase name of the kind, or "unknown" for
// values outside the enumeration.
func (k InteractionKind) String() string {
	switch k {
	case KindReply:
		return "reply"
	case KindRetweet:
		return "retweet"
	case KindQuote:
		return "quote"
	case KindMention:
		return "mention"
	default:
		return "unknown"
	}
}

// Interaction is one unit of observed influence: the Dest user engaged
// with the Source user's content, so influence runs Source → Dest.
type Interaction struct {
	Source UserID          // the influencer (edge tail)
	Dest   UserID          // the influenced, acting user (edge head)
	Kind   InteractionKind // how the engagement happened
}

// Post is one authored post with the references relevant to graph
// making. Empty reference lists mean "none", never an error state.
type Post struct {
	Author    UserID   // the acting user who wrote the post
	RepliedTo []UserID // authors this post replied to
	Retweeted []UserID // authors this post reposted
	Quoted    []UserID // authors this post quote-posted
	Mentioned []UserID // users this post mentioned
}

// Interactions flattens one post into its interaction records.
//
// Replies, reposts, and quotes each yield one record per referenced
// author. A mention yields a record only when the mentioned user was
// NOT already credited on this same post through a reply, repost, or
// quote — mentioning someone while reposting them is one influence
// event, not two. The rule is scoped to a single post; across posts
// every event counts.
//
// Self-references and users outside the network roster are emitted
// as-is; Build is the single place that drops them.
func Interactions(p Post) []Interaction {
	out := make([]Interaction, 0, len(p.RepliedTo)+len(p.Retweeted)+len(p.Quoted)+len(p.Mentioned))
	credited := make(map[UserID]struct{}, len(p.RepliedTo)+len(p.Retweeted)+len(p.Quoted))

	for _, src := range p.RepliedTo {
		out = append(out, Interaction{Source: src, Dest: p.Author, Kind: KindReply})
		credited[src] = struct{}{}
	}
	for _, src := range p.Retweeted {
		out = append(out, Interaction{Source: src, Dest: p.Author, Kind: KindRetweet})
		credited[src] = struct{}{}
	}
	for _, src := range p.Quoted {
		out = append(out, Interaction{Source: src, Dest: p.Author, Kind: KindQuote})
		credited[src] = struct{}{}
	}
	for _, src := range p.Mentioned {
		if _, seen := credited[src]; seen {
			continue
		}
		out = append(out, Interaction{Source: src, Dest: p.Author, Kind: KindMention})
	}

	return out
}
