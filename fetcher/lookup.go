package fetcher

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/spreadlab/viralcent/builder"
)

// lookupBatchSize is the service's per-request id cap on the lookup
// endpoint.
const lookupBatchSize = 100

// LookupPosts hydrates posts by id through the lookup endpoint,
// batching ids to the service's per-request limit. Ids the service
// cannot resolve (deleted posts, suspended authors) surface as
// per-item errors, which are logged and skipped; the result holds
// whatever could be hydrated, in service order.
func (c *Client) LookupPosts(ctx context.Context, ids []PostID) ([]builder.Post, error) {
	posts := make([]builder.Post, 0, len(ids))

	for start := 0; start < len(ids); start += lookupBatchSize {
		end := start + lookupBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		q := url.Values{}
		q.Set("ids", joinIDs(ids[start:end]))
		q.Set("tweet.fields", tweetFields)
		q.Set("expansions", expansions)

		resp, err := c.get(ctx, lookupPath, q)
		if err != nil {
			return nil, err
		}
		logResponseErrors(c.log, resp.Errors)
		posts = append(posts, toPosts(resp, 0, c.log)...)
	}
	c.log.Debug("posts hydrated",
		slog.Int("requested", len(ids)), slog.Int("resolved", len(posts)))

	return posts, nil
}

// joinIDs renders a comma-separated id list for the ids parameter.
func joinIDs(ids []PostID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}

	return strings.Join(parts, ",")
}
