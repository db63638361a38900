package models

import (
	"context"
	"strings"

	"newsrank/helpers"

	"github.com/go-redis/redis/v8"
)

// GroupModel maintains the many-to-many membership between articles
// and named groups
type GroupModel struct {
	Client *redis.Client
}

// AddToGroups assigns an article to each of the comma-separated groups.
// Re-adding an existing membership is a no-op
func (g GroupModel) AddToGroups(articleID string, groupNames string) error {

	var ctx = context.Background()

	for _, group := range splitGroups(groupNames) {
		err := g.Client.SAdd(ctx, groupKey(group), articleKey(articleID)).Err()
		if err != nil {
			return helpers.WrapError(err, helpers.FuncName())
		}
	}

	return nil
}

// RemoveFromGroups takes an article out of each of the comma-separated
// groups. Removing an absent membership is a no-op; the group itself is
// kept even when emptied
func (g GroupModel) RemoveFromGroups(articleID string, groupNames string) error {

	var ctx = context.Background()

	for _, group := range splitGroups(groupNames) {
		err := g.Client.SRem(ctx, groupKey(group), articleKey(articleID)).Err()
		if err != nil {
			return helpers.WrapError(err, helpers.FuncName())
		}
	}

	return nil
}

func splitGroups(groupNames string) []string {
	var groups []string
	for _, group := range strings.Split(groupNames, ",") {
		group = strings.TrimSpace(group)
		if group != "" {
			groups = append(groups, group)
		}
	}
	return groups
}
