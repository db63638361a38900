package models

import (
	"context"
	"strings"

	"newsrank/apperror"
	"newsrank/helpers"

	"github.com/go-redis/redis/v8"
)

// sort rules accepted by the listing operations
const (
	SortByTime  = "time"
	SortByScore = "score"
)

// RankingModel produces paginated article listings from the sorted indices
type RankingModel struct {
	Client          *redis.Client
	ArticlesPerPage int64
	// injected from the article model
	GetArticle func(articleID string) (*Article, error)
}

func indexKey(rule string) (string, error) {
	switch rule {
	case SortByTime:
		return keyTimeIndex, nil
	case SortByScore:
		return keyScoreIndex, nil
	default:
		return "", apperror.ErrInvalidSortKey
	}
}

// ListArticles returns one page of articles, highest score or most recent
// first. A page beyond the end of the index yields an empty list
func (r RankingModel) ListArticles(page int64, rule string) ([]Article, error) {

	order, err := indexKey(rule)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * r.ArticlesPerPage
	end := start + r.ArticlesPerPage - 1

	var ctx = context.Background()
	ids, err := r.Client.ZRevRange(ctx, order, start, end).Result()
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	return r.resolve(ids)
}

// ListGroupArticles returns one page of the articles belonging to a group,
// ordered like the chosen index.
//
// The whole index is read and filtered by membership before slicing. That
// is O(index size) per call - accepted for correctness and simplicity; a
// per-group sorted index would be the optimization if groups grow large,
// as long as ordering and page boundaries stay the same.
func (r RankingModel) ListGroupArticles(groupName string, page int64, rule string) ([]Article, error) {

	order, err := indexKey(rule)
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	var ctx = context.Background()
	ids, err := r.Client.ZRevRange(ctx, order, 0, -1).Result()
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}

	members, err := r.Client.SMembers(ctx, groupKey(groupName)).Result()
	if err != nil {
		return nil, helpers.WrapError(err, helpers.FuncName())
	}
	inGroup := make(map[string]bool, len(members))
	for _, member := range members {
		inGroup[member] = true
	}

	var filtered []string
	for _, id := range ids {
		if inGroup[id] {
			filtered = append(filtered, id)
		}
	}

	start := (page - 1) * r.ArticlesPerPage
	end := start + r.ArticlesPerPage
	size := int64(len(filtered))

	switch {
	case size <= start:
		return []Article{}, nil
	case size >= end:
		filtered = filtered[start:end]
	default:
		filtered = filtered[start:]
	}

	return r.resolve(filtered)
}

// resolve maps index members back to their full records
func (r RankingModel) resolve(ids []string) ([]Article, error) {

	articles := make([]Article, 0, len(ids))
	for _, id := range ids {
		article, err := r.GetArticle(strings.TrimPrefix(id, keyArticleCounter))
		if err != nil {
			// an index entry without a record is never exposed
			if err == apperror.ErrNoData {
				continue
			}
			return nil, err
		}
		articles = append(articles, *article)
	}

	return articles, nil
}
