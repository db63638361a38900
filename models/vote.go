package models

import (
	"context"
	"time"

	"newsrank/apperror"
	"newsrank/helpers"

	"github.com/go-redis/redis/v8"
)

// vote (action) type
const (
	VoteUp   int32 = 1
	VoteDown int32 = -1
)

// VoteModel provides the logics to the data type
type VoteModel struct {
	Client     *redis.Client
	VoteScore  float64
	VoteWindow time.Duration
	// injected from the article model, so the controller doesn't have to
	GetArticle func(articleID string) (*Article, error)
}

// CastVote registers an up or down vote for an article and returns the
// record as it looks after the vote.
//
// The voter set insert is the serialization point: only the first vote of
// a user adjusts score and counters, any later attempt - same or opposite
// action - is a silent no-op. One vote of either kind per user per article.
//
// The writes are per-command atomic only; there is no transaction around
// the set insert and the score adjustment. A crash in between can leave a
// voter recorded without the score reflecting it (accepted best-effort
// consistency, matching the store's command semantics).
func (v VoteModel) CastVote(articleID string, userID string, vote int32) (*Article, error) {

	if vote != VoteUp && vote != VoteDown {
		return nil, apperror.ErrInvalidVote
	}

	var ctx = context.Background()
	article := articleKey(articleID)

	posted, err := v.Client.ZScore(ctx, keyTimeIndex, article).Result()
	if err != nil {
		if err == redis.Nil {
			// unindexed articles are treated as expired (fail-closed)
			return nil, apperror.ErrVoteClosed
		}
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	cutoff := float64(time.Now().UnixNano())/1e9 - v.VoteWindow.Seconds()
	if posted < cutoff {
		return nil, apperror.ErrVoteClosed
	}

	added, err := v.Client.SAdd(ctx, votedKey(articleID), userID).Result()
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	if added == 1 {
		field := "votes"
		if vote == VoteDown {
			field = "bonus"
		}
		err = v.Client.ZIncrBy(ctx, keyScoreIndex, float64(vote)*v.VoteScore, article).Err()
		if err != nil {
			return nil, helpers.WrapError(err, helpers.FuncName())
		}
		err = v.Client.HIncrBy(ctx, article, field, 1).Err()
		if err != nil {
			return nil, helpers.WrapError(err, helpers.FuncName())
		}
	}

	return v.GetArticle(articleID)
}
