package fetcher

import (
	"log/slog"
	"strconv"

	"github.com/spreadlab/viralcent/builder"
)

// PostID identifies a single post on the service.
type PostID int64

// Field selection: everything graph making needs and nothing more.
const (
	tweetFields = "author_id,referenced_tweets,in_reply_to_user_id,entities"
	expansions  = "referenced_tweets.id.author_id"
)

// Referenced-post relationship types as the service spells them.
const (
	refRepliedTo = "replied_to"
	refRetweeted = "retweeted"
	refQuoted    = "quoted"
)

// apiResponse is the common envelope of the search and lookup
// endpoints. A response may carry data, per-item errors, or both.
type apiResponse struct {
	Data     []apiPost   `json:"data"`
	Includes apiIncludes `json:"includes"`
	Errors   []apiError  `json:"errors"`
	Meta     apiMeta     `json:"meta"`
}

// apiPost is one post as the service serializes it; ids arrive as
// decimal strings.
type apiPost struct {
	ID               string         `json:"id"`
	AuthorID         string         `json:"author_id"`
	InReplyToUserID  string         `json:"in_reply_to_user_id"`
	ReferencedTweets []apiReference `json:"referenced_tweets"`
	Entities         *apiEntities   `json:"entities"`
}

// apiReference links a post to one it replied to, reposted, or quoted.
type apiReference struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// apiIncludes carries the expanded referenced posts for a whole page.
type apiIncludes struct {
	Tweets []apiPost `json:"tweets"`
}

// apiEntities carries the mention annotations of one post.
type apiEntities struct {
	Mentions []apiMention `json:"mentions"`
}

// apiMention is one mentioned user.
type apiMention struct {
	ID string `json:"id"`
}

// apiError is a per-item problem reported inside a 2xx response.
type apiError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// apiMeta carries the pagination cursor.
type apiMeta struct {
	NextToken string `json:"next_token"`
}

// parseUserID converts a decimal user-id string. The second return is
// false for empty or malformed input — absence is a value here, not an
// exception to catch.
func parseUserID(s string) (builder.UserID, bool) {
	if s == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}

	return builder.UserID(id), true
}

// toPosts converts one response page into builder posts.
//
// Referenced-author resolution follows the service contract: the
// includes section carries the referenced posts for the whole page,
// keyed by post id. A reply whose source post is missing from includes
// (deleted post) falls back to in_reply_to_user_id, which survives
// post deletion but not account deletion — in the latter case the
// reference is dropped. Reposts and quotes of deleted posts have no
// fallback and are dropped.
//
// fallbackAuthor is used when a post arrives without author_id (the
// search endpoint scopes a whole page to one queried user). Malformed
// ids are logged and skipped, never fatal.
func toPosts(resp *apiResponse, fallbackAuthor builder.UserID, log *slog.Logger) []builder.Post {
	included := make(map[string]apiPost, len(resp.Includes.Tweets))
	for _, t := range resp.Includes.Tweets {
		included[t.ID] = t
	}

	posts := make([]builder.Post, 0, len(resp.Data))
	for _, raw := range resp.Data {
		author, ok := parseUserID(raw.AuthorID)
		if !ok {
			author = fallbackAuthor
		}
		p := builder.Post{Author: author}

		for _, ref := range raw.ReferencedTweets {
			src, found := included[ref.ID]
			if found {
				srcAuthor, okID := parseUserID(src.AuthorID)
				if !okID {
					log.Warn("unparsable referenced author id",
						slog.String("post_id", raw.ID), slog.String("author_id", src.AuthorID))

					continue
				}
				switch ref.Type {
				case refRepliedTo:
					p.RepliedTo = append(p.RepliedTo, srcAuthor)
				case refRetweeted:
					p.Retweeted = append(p.Retweeted, srcAuthor)
				case refQuoted:
					p.Quoted = append(p.Quoted, srcAuthor)
				}

				continue
			}
			// Source post gone from includes: only replies have a
			// recoverable author.
			if ref.Type == refRepliedTo {
				if target, okID := parseUserID(raw.InReplyToUserID); okID {
					p.RepliedTo = append(p.RepliedTo, target)
				}
			}
		}

		if raw.Entities != nil {
			for _, m := range raw.Entities.Mentions {
				if id, okID := parseUserID(m.ID); okID {
					p.Mentioned = append(p.Mentioned, id)
				}
			}
		}

		posts = append(posts, p)
	}

	return posts
}

// logResponseErrors writes the per-item problems of one page.
func logResponseErrors(log *slog.Logger, errs []apiError) {
	for i, e := range errs {
		log.Debug("partial response error",
			slog.Int("index", i), slog.String("title", e.Title), slog.String("detail", e.Detail))
	}
}
