package main

import (
	"fmt"
	"log"
	"os"

	"newsrank/controllers"
	"newsrank/database"
	"newsrank/environment"
	"newsrank/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	router = gin.Default()
)

func init() {
	// Load Config
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func handleRequests() {
	router.Use(middleware.CORSMiddleware())

	router.GET("/test", controllers.Test)

	// articles
	router.POST("/articles", controllers.PublishArticle)
	router.GET("/articles/sort", controllers.SortArticles)
	router.GET("/articles/groups", controllers.GetGroupArticles)
	router.GET("/articles/:id", controllers.GetArticle)

	// voting
	router.PATCH("/articles/:id/vote", controllers.CastVote)

	// grouping
	router.POST("/articles/:id/groups", controllers.AddArticleToGroups)
	router.DELETE("/articles/:id/groups", controllers.RemoveArticleFromGroups)

	// statistics
	router.GET("/articles/:id/visits", controllers.GetArticleVisits)

	// system tools
	router.GET("/monitor/requests/count", controllers.CountRequests)
	router.GET("/monitor/requests/dump", controllers.DumpRequests)
	router.POST("/monitor/requests/flush", controllers.FlushRequests)

	switch os.Getenv("APP_ENV") {
	case "DEV":
		router.Run(":" + os.Getenv("API_PORT"))
	case "PRD":
		router.RunTLS(":"+os.Getenv("API_PORT"), os.Getenv("APP_CERTFILE"), os.Getenv("APP_KEYFILE"))
	default:
		panic(fmt.Errorf("APP_ENV must not set"))
	}
}

func main() {
	// connect to the ranking store (redis)
	err := database.OpenRedisConnection()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseRedisConnection()

	// connect to the analytics store (influxDB)
	if os.Getenv("USE_ANALYTICS") == "YES" {
		err = database.OpenInfluxConnection()
		if err != nil {
			log.Fatal(err)
		}
		defer database.CloseInfluxConnection()
	}

	// Initialize the Models
	environment.InitializeModels()

	fmt.Println("newsrank running...")
	handleRequests()
}
