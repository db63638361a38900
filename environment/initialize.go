package environment

import (
	"os"
	"strconv"
	"time"

	"newsrank/analytics"
	"newsrank/client"
	"newsrank/database"
	"newsrank/models"

	"github.com/go-redis/redis/v8"
)

// ranking defaults, overridable per environment.
// the vote score is large enough that one vote always outweighs the
// per-second drift of the timestamp baseline
const (
	DefaultVoteScore       = 432
	DefaultVoteWindow      = 7 * 86400 // seconds
	DefaultArticlesPerPage = 25
)

// Environment is used for dependency-injection (package de-coupling)
type Environment struct {
	Tracker      *analytics.Tracker
	Requests     *client.Registry
	ArticleModel models.ArticleModel
	VoteModel    models.VoteModel
	GroupModel   models.GroupModel
	RankingModel models.RankingModel
}

// NewEnv operates as the constructor to wire the models to the store
// and inject the ranking configuration
func NewEnv(redisClient *redis.Client) *Environment {
	env := &Environment{}

	env.Requests = new(client.Registry)
	env.Requests.Initialize()

	// always create the tracker so no further checking is needed
	// in the controllers
	env.Tracker = new(analytics.Tracker)
	env.Tracker.Requests = env.Requests

	voteScore := envFloat("VOTE_SCORE", DefaultVoteScore)
	voteWindow := time.Duration(envInt("VOTE_WINDOW", DefaultVoteWindow)) * time.Second
	perPage := envInt("ARTICLES_PER_PAGE", DefaultArticlesPerPage)

	env.ArticleModel.Client = redisClient
	env.ArticleModel.VoteScore = voteScore
	env.ArticleModel.VoteWindow = voteWindow

	env.VoteModel.Client = redisClient
	env.VoteModel.VoteScore = voteScore
	env.VoteModel.VoteWindow = voteWindow
	// inject the article model's read function
	env.VoteModel.GetArticle = env.ArticleModel.GetArticleByID

	env.GroupModel.Client = redisClient

	env.RankingModel.Client = redisClient
	env.RankingModel.ArticlesPerPage = perPage
	env.RankingModel.GetArticle = env.ArticleModel.GetArticleByID

	return env
}

// Env is the singleton registry
var Env *Environment

// InitializeModels injects the store connections to the models
// (do not confuse with package init)
func InitializeModels() {
	Env = NewEnv(database.GetRedisConnection())

	if os.Getenv("USE_ANALYTICS") == "YES" {
		Env.Tracker.SetConnections(database.GetInfluxConnection())
	}
}

func envFloat(name string, fallback float64) float64 {
	val, err := strconv.ParseFloat(os.Getenv(name), 64)
	if err != nil {
		return fallback
	}
	return val
}

func envInt(name string, fallback int64) int64 {
	val, err := strconv.ParseInt(os.Getenv(name), 10, 64)
	if err != nil {
		return fallback
	}
	return val
}
