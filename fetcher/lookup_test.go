package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPosts_SingleBatch(t *testing.T) {
	var gotIDs string
	c := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		gotIDs = r.URL.Query().Get("ids")
		w.Write([]byte(`{"data":[{"id":"1","author_id":"7"},{"id":"2","author_id":"8"}]}`))
	})

	posts, err := c.LookupPosts(context.Background(), []PostID{1, 2})
	require.NoError(t, err)

	assert.Equal(t, "1,2", gotIDs)
	assert.Len(t, posts, 2)
}

func TestLookupPosts_SplitsIntoBatches(t *testing.T) {
	var batches []int
	c := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		batches = append(batches, len(strings.Split(r.URL.Query().Get("ids"), ",")))
		w.Write([]byte(`{"data":[]}`))
	})

	ids := make([]PostID, 250)
	for i := range ids {
		ids[i] = PostID(i + 1)
	}
	_, err := c.LookupPosts(context.Background(), ids)
	require.NoError(t, err)

	assert.Equal(t, []int{100, 100, 50}, batches)
}

func TestLookupPosts_Empty(t *testing.T) {
	c := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty id list")
	})

	posts, err := c.LookupPosts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestLookupPosts_PropagatesTransportFailure(t *testing.T) {
	var calls int
	c := newTestClient(t, Config{}, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 2 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		w.Write([]byte(`{"data":[]}`))
	})

	ids := make([]PostID, 150)
	for i := range ids {
		ids[i] = PostID(i + 1)
	}
	_, err := c.LookupPosts(context.Background(), ids)
	assert.ErrorIs(t, err, ErrAPI)
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "", joinIDs(nil))
	assert.Equal(t, "5", joinIDs([]PostID{5}))
	assert.Equal(t, fmt.Sprintf("%d,%d", 1, 1234567890123), joinIDs([]PostID{1, 1234567890123}))
}
