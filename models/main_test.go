package models

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// testStore wires the models to a miniredis instance
type testStore struct {
	mr       *miniredis.Miniredis
	client   *redis.Client
	articles ArticleModel
	votes    VoteModel
	groups   GroupModel
	ranking  RankingModel
}

const (
	testVoteScore  = 432
	testVoteWindow = 7 * 24 * time.Hour
	testPageSize   = 2
)

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	ts := &testStore{mr: mr, client: client}

	ts.articles = ArticleModel{Client: client, VoteScore: testVoteScore, VoteWindow: testVoteWindow}
	ts.votes = VoteModel{Client: client, VoteScore: testVoteScore, VoteWindow: testVoteWindow, GetArticle: ts.articles.GetArticleByID}
	ts.groups = GroupModel{Client: client}
	ts.ranking = RankingModel{Client: client, ArticlesPerPage: testPageSize, GetArticle: ts.articles.GetArticleByID}

	return ts
}

// age rewrites the publish timestamp in the time index, as if the article
// had been published that long ago
func (ts *testStore) age(t *testing.T, articleID string, age time.Duration) {
	t.Helper()

	posted := float64(time.Now().Add(-age).UnixNano()) / 1e9
	err := ts.client.ZAdd(context.Background(), keyTimeIndex, &redis.Z{Score: posted, Member: articleKey(articleID)}).Err()
	if err != nil {
		t.Fatalf("failed to age article: %v", err)
	}
}

// score reads the current entry of an article in the score index
func (ts *testStore) score(t *testing.T, articleID string) float64 {
	t.Helper()

	score, err := ts.client.ZScore(context.Background(), keyScoreIndex, articleKey(articleID)).Result()
	if err != nil {
		t.Fatalf("failed to read score: %v", err)
	}
	return score
}
