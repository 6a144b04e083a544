package fetcher

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/spreadlab/viralcent/builder"
)

// SearchUserPosts fetches the posts userID authored inside the
// configured window, via the full-archive search endpoint.
//
// With MaxPostsPerUser unset the client follows the service's
// next-page token until the window is exhausted; otherwise it issues a
// single request capped at that many posts — the two acquisition modes
// of the original crawler. Per-item errors reported by the service are
// logged and skipped. An empty result is a valid answer, not an error.
func (c *Client) SearchUserPosts(ctx context.Context, userID builder.UserID) ([]builder.Post, error) {
	log := c.log.With(slog.Int64("user_id", int64(userID)))

	pageSize := c.cfg.PageSize
	singlePage := c.cfg.MaxPostsPerUser > 0
	if singlePage && c.cfg.MaxPostsPerUser < pageSize {
		pageSize = c.cfg.MaxPostsPerUser
	}

	var posts []builder.Post
	nextToken := ""
	pages := 0
	for {
		q := c.searchQuery(userID, pageSize)
		if nextToken != "" {
			q.Set("next_token", nextToken)
		}

		resp, err := c.get(ctx, searchPath, q)
		if err != nil {
			return nil, err
		}
		logResponseErrors(log, resp.Errors)
		posts = append(posts, toPosts(resp, userID, log)...)
		pages++

		nextToken = resp.Meta.NextToken
		if singlePage || nextToken == "" {
			break
		}
	}
	log.Debug("user posts fetched", slog.Int("posts", len(posts)), slog.Int("pages", pages))

	return posts, nil
}

// searchQuery assembles the query parameters for one search page.
func (c *Client) searchQuery(userID builder.UserID, pageSize int) url.Values {
	q := url.Values{}
	q.Set("query", "from:"+strconv.FormatInt(int64(userID), 10))
	q.Set("max_results", strconv.Itoa(pageSize))
	q.Set("tweet.fields", tweetFields)
	q.Set("expansions", expansions)
	if !c.cfg.StartTime.IsZero() {
		q.Set("start_time", c.cfg.StartTime.UTC().Format(time.RFC3339))
	}
	if !c.cfg.EndTime.IsZero() {
		q.Set("end_time", c.cfg.EndTime.UTC().Format(time.RFC3339))
	}

	return q
}
