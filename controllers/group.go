package controllers

import (
	"net/http"

	"newsrank/environment"

	"github.com/gin-gonic/gin"
)

// AddArticleToGroups assigns an article to the comma-separated groups
// http://localhost:3000/articles/42/groups?groupIds=tech,news
func AddArticleToGroups(c *gin.Context) {

	articleID, groupIds, ok := groupParams(c)
	if !ok {
		return
	}

	err := environment.Env.GroupModel.AddToGroups(articleID, groupIds)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.Status(http.StatusOK)
}

// RemoveArticleFromGroups takes an article out of the comma-separated groups
func RemoveArticleFromGroups(c *gin.Context) {

	articleID, groupIds, ok := groupParams(c)
	if !ok {
		return
	}

	err := environment.Env.GroupModel.RemoveFromGroups(articleID, groupIds)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.Status(http.StatusOK)
}

// GetGroupArticles returns one page of the articles in a group,
// ordered like the chosen index
// http://localhost:3000/articles/groups?group=tech&page=1&rule=time
func GetGroupArticles(c *gin.Context) {

	var apiError ErrorResponse

	group := c.Query("group")
	if group == "" {
		apiError.Code = InvalidRequest
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	page, rule, ok := listParams(c)
	if !ok {
		return
	}

	articles, err := environment.Env.RankingModel.ListGroupArticles(group, page, rule)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, articles)
}

func groupParams(c *gin.Context) (articleID string, groupIds string, ok bool) {

	var apiError ErrorResponse

	articleID = c.Param("id")

	groupIds = c.Query("groupIds")
	if groupIds == "" {
		apiError.Code = InvalidRequest
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return "", "", false
	}

	return articleID, groupIds, true
}
