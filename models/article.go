package models

import (
	"context"
	"strconv"
	"strings"
	"time"

	"newsrank/apperror"
	"newsrank/helpers"

	"github.com/go-redis/redis/v8"
)

// key layout of the ranking store:
// one global id counter, one hash per article, two global sorted indices,
// one voter set per article and one member set per group
const (
	keyArticleCounter = "article:"
	keyScoreIndex     = "score:"
	keyTimeIndex      = "time:"
)

func articleKey(articleID string) string {
	return keyArticleCounter + articleID
}

func votedKey(articleID string) string {
	return "voted:" + articleID
}

func groupKey(groupName string) string {
	return "group:" + groupName
}

// Article represents a published item as stored in its article:<id> hash.
// Votes counts up-votes (the author is the implicit first one),
// Bonus counts down-votes separately.
type Article struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Link   string  `json:"link,omitempty"` // optional, not validated
	Author string  `json:"user"`
	Posted float64 `json:"now"` // epoch seconds, fractional
	Votes  int64   `json:"votes"`
	Bonus  int64   `json:"bonus"`
}

// ArticleModel provides the logics to the data type
type ArticleModel struct {
	Client     *redis.Client
	VoteScore  float64       // score delta per effective vote
	VoteWindow time.Duration // period during which votes are accepted
}

// PublishArticle creates a new article under a fresh id and seeds both
// ranking indices. The author counts as the first voter, so the score
// index starts one vote above the publish timestamp.
// The individual commands are atomic, the sequence as a whole is not;
// the hash is written before the index entries so an indexed id always
// resolves to a record.
func (m ArticleModel) PublishArticle(author string, title string, link string) (string, error) {

	var ctx = context.Background()

	id, err := m.Client.Incr(ctx, keyArticleCounter).Result()
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}
	articleID := strconv.FormatInt(id, 10)

	now := float64(time.Now().UnixNano()) / 1e9
	article := articleKey(articleID)

	fields := map[string]interface{}{
		"title": title,
		"link":  link,
		"user":  author,
		"now":   strconv.FormatFloat(now, 'f', -1, 64),
		"votes": "1",
		"bonus": "0",
	}
	err = m.Client.HSet(ctx, article, fields).Err()
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}

	// the author has voted for their own article
	err = m.Client.SAdd(ctx, votedKey(articleID), author).Err()
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}
	// votes are only accepted within the window, afterwards the
	// voter set is no longer needed
	err = m.Client.Expire(ctx, votedKey(articleID), m.VoteWindow).Err()
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}

	err = m.Client.ZAdd(ctx, keyScoreIndex, &redis.Z{Score: now + m.VoteScore, Member: article}).Err()
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}
	err = m.Client.ZAdd(ctx, keyTimeIndex, &redis.Z{Score: now, Member: article}).Err()
	if err != nil {
		return "", helpers.WrapError(err, helpers.FuncName())
	}

	return articleID, nil
}

// GetArticleByID returns the stored fields of an article.
// An unknown id is not a fault; it yields ErrNoData
func (m ArticleModel) GetArticleByID(articleID string) (*Article, error) {

	var ctx = context.Background()

	data, err := m.Client.HGetAll(ctx, articleKey(articleID)).Result()
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}
	if len(data) == 0 {
		return nil, apperror.ErrNoData
	}

	return articleFromHash(articleID, data)
}

// articleFromHash maps the raw hash fields to the model type
func articleFromHash(articleID string, data map[string]string) (*Article, error) {

	article := &Article{
		ID:     strings.TrimPrefix(articleID, keyArticleCounter),
		Title:  data["title"],
		Link:   data["link"],
		Author: data["user"],
	}

	var err error
	article.Posted, err = strconv.ParseFloat(data["now"], 64)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}
	article.Votes, err = strconv.ParseInt(data["votes"], 10, 64)
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}
	// records written before down-votes existed have no bonus field
	if data["bonus"] != "" {
		article.Bonus, err = strconv.ParseInt(data["bonus"], 10, 64)
		if err != nil {
			return nil, helpers.WrapError(err, helpers.FuncName())
		}
	}

	return article, nil
}
