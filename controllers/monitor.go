package controllers

import (
	"net/http"

	"newsrank/environment"

	"github.com/gin-gonic/gin"
)

// Test is used for liveness checks
func Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "running"})
}

func CountRequests(c *gin.Context) {
	c.JSON(http.StatusOK, environment.Env.Requests.Count())
}

func DumpRequests(c *gin.Context) {
	c.JSON(http.StatusOK, environment.Env.Requests.Dump(50))
}

func FlushRequests(c *gin.Context) {
	environment.Env.Requests.Flush()

	c.Status(http.StatusOK)
}
