package database

import (
	"context"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"
)

var redisClient *redis.Client

// OpenRedisConnection pools the connection to the store
func OpenRedisConnection() error {
	var err error

	var dsn string
	dsn = os.Getenv("STORE_HOST") + ":" + os.Getenv("STORE_PORT")

	dbID, err := strconv.Atoi(os.Getenv("ARTICLE_DB"))
	if err != nil {
		return err
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     dsn,
		Password: os.Getenv("STORE_PASS"),
		DB:       dbID,
	})

	// make sure a connection has actually been made
	var ctx = context.Background()
	_, err = redisClient.Ping(ctx).Result()
	if err != nil {
		return err
	}

	return nil
}

// GetRedisConnection returns a reference to the shared connection
func GetRedisConnection() *redis.Client {
	return redisClient
}

// CloseRedisConnection closes the connection to the store
func CloseRedisConnection() error {
	return redisClient.Close()
}
