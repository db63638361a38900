package models

import (
	"context"
	"testing"
	"time"

	"newsrank/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishArticle(t *testing.T) {
	ts := newTestStore(t)

	id1, err := ts.articles.PublishArticle("alice", "first post", "http://example.com/1")
	require.NoError(t, err)
	id2, err := ts.articles.PublishArticle("bob", "second post", "")
	require.NoError(t, err)

	// ids come from the atomic counter
	assert.Equal(t, "1", id1)
	assert.Equal(t, "2", id2)

	article, err := ts.articles.GetArticleByID(id1)
	require.NoError(t, err)
	assert.Equal(t, "1", article.ID)
	assert.Equal(t, "first post", article.Title)
	assert.Equal(t, "http://example.com/1", article.Link)
	assert.Equal(t, "alice", article.Author)
	assert.Equal(t, int64(1), article.Votes) // the author is the first voter
	assert.Equal(t, int64(0), article.Bonus)
	assert.InDelta(t, float64(time.Now().Unix()), article.Posted, 5)
}

func TestPublishArticleSeedsIndices(t *testing.T) {
	ts := newTestStore(t)
	ctx := context.Background()

	id, err := ts.articles.PublishArticle("alice", "indexed", "")
	require.NoError(t, err)

	posted, err := ts.client.ZScore(ctx, keyTimeIndex, articleKey(id)).Result()
	require.NoError(t, err)

	// score index starts one vote above the publish timestamp
	assert.InDelta(t, posted+testVoteScore, ts.score(t, id), 0.001)

	// the author is pre-registered in the voter set, which expires with the window
	member, err := ts.client.SIsMember(ctx, votedKey(id), "alice").Result()
	require.NoError(t, err)
	assert.True(t, member)
	assert.Equal(t, testVoteWindow, ts.mr.TTL(votedKey(id)))
}

func TestPublishArticleLinkOptional(t *testing.T) {
	ts := newTestStore(t)

	id, err := ts.articles.PublishArticle("alice", "no link", "")
	require.NoError(t, err)

	article, err := ts.articles.GetArticleByID(id)
	require.NoError(t, err)
	assert.Empty(t, article.Link)
}

func TestGetArticleByIDUnknown(t *testing.T) {
	ts := newTestStore(t)

	article, err := ts.articles.GetArticleByID("99")
	assert.Nil(t, article)
	assert.Equal(t, apperror.ErrNoData, err)
}
