package controllers

import (
	"net/http"

	"newsrank/environment"
	"newsrank/models"

	"github.com/gin-gonic/gin"
)

// CastVote registers an up or down vote for an article within its voting
// window and returns the updated record. Re-votes of either kind are
// silently ignored
// http://localhost:3000/articles/42/vote?user=bob&vote=up
func CastVote(c *gin.Context) {

	var apiError ErrorResponse

	articleID := c.Param("id")

	user := c.Query("user")
	if user == "" {
		apiError.Code = InvalidRequest
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	var vote int32
	switch c.DefaultQuery("vote", "up") {
	case "up":
		vote = models.VoteUp
	case "down":
		vote = models.VoteDown
	default:
		apiError.Code = InvalidVoteAction
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	article, err := environment.Env.VoteModel.CastVote(articleID, user, vote)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, article)
}
