package models

import (
	"testing"
	"time"

	"newsrank/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastVote(t *testing.T) {
	ts := newTestStore(t)

	id, err := ts.articles.PublishArticle("alice", "votable", "")
	require.NoError(t, err)
	base := ts.score(t, id)

	article, err := ts.votes.CastVote(id, "bob", VoteUp)
	require.NoError(t, err)
	assert.Equal(t, int64(2), article.Votes)
	assert.Equal(t, int64(0), article.Bonus)
	assert.InDelta(t, base+testVoteScore, ts.score(t, id), 0.001)

	// same voter again: silent no-op
	article, err = ts.votes.CastVote(id, "bob", VoteUp)
	require.NoError(t, err)
	assert.Equal(t, int64(2), article.Votes)
	assert.InDelta(t, base+testVoteScore, ts.score(t, id), 0.001)

	// a down-vote is counted separately and lowers the score
	article, err = ts.votes.CastVote(id, "carol", VoteDown)
	require.NoError(t, err)
	assert.Equal(t, int64(2), article.Votes)
	assert.Equal(t, int64(1), article.Bonus)
	assert.InDelta(t, base, ts.score(t, id), 0.001) // bob and carol cancel out
}

func TestCastVoteOnePerUser(t *testing.T) {
	ts := newTestStore(t)

	id, err := ts.articles.PublishArticle("alice", "one slot", "")
	require.NoError(t, err)

	_, err = ts.votes.CastVote(id, "bob", VoteUp)
	require.NoError(t, err)

	// a user who up-voted cannot later down-vote the same article
	article, err := ts.votes.CastVote(id, "bob", VoteDown)
	require.NoError(t, err)
	assert.Equal(t, int64(2), article.Votes)
	assert.Equal(t, int64(0), article.Bonus)

	// the author's implicit vote occupies their slot as well
	article, err = ts.votes.CastVote(id, "alice", VoteUp)
	require.NoError(t, err)
	assert.Equal(t, int64(2), article.Votes)
}

func TestCastVoteWindowExpired(t *testing.T) {
	ts := newTestStore(t)

	id, err := ts.articles.PublishArticle("alice", "too old", "")
	require.NoError(t, err)
	base := ts.score(t, id)

	ts.age(t, id, testVoteWindow+time.Hour)

	article, err := ts.votes.CastVote(id, "bob", VoteUp)
	assert.Nil(t, article)
	assert.Equal(t, apperror.ErrVoteClosed, err)

	// the rejection leaves counters and score untouched
	current, err := ts.articles.GetArticleByID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), current.Votes)
	assert.Equal(t, int64(0), current.Bonus)
	assert.InDelta(t, base, ts.score(t, id), 0.001)
}

func TestCastVoteJustWithinWindow(t *testing.T) {
	ts := newTestStore(t)

	id, err := ts.articles.PublishArticle("alice", "still open", "")
	require.NoError(t, err)

	ts.age(t, id, testVoteWindow-time.Hour)

	article, err := ts.votes.CastVote(id, "bob", VoteUp)
	require.NoError(t, err)
	assert.Equal(t, int64(2), article.Votes)
}

func TestCastVoteUnknownArticle(t *testing.T) {
	ts := newTestStore(t)

	// an unindexed article is treated as expired (fail-closed)
	article, err := ts.votes.CastVote("99", "bob", VoteUp)
	assert.Nil(t, article)
	assert.Equal(t, apperror.ErrVoteClosed, err)
}

func TestCastVoteInvalidAction(t *testing.T) {
	ts := newTestStore(t)

	id, err := ts.articles.PublishArticle("alice", "strict", "")
	require.NoError(t, err)

	_, err = ts.votes.CastVote(id, "bob", 0)
	assert.Equal(t, apperror.ErrInvalidVote, err)
}
