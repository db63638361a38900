package controllers

import (
	"net/http"
	"strconv"

	"newsrank/apperror"
	"newsrank/environment"

	"github.com/gin-gonic/gin"
)

// PublishArticle creates a new article; the author counts as its first voter
// http://localhost:3000/articles (form: username, title, link)
func PublishArticle(c *gin.Context) {

	var (
		err      error
		apiError ErrorResponse
	)

	var data struct {
		Username string `form:"username" binding:"required"`
		Title    string `form:"title" binding:"required"`
		Link     string `form:"link"` // optional, not validated
	}

	if err = c.ShouldBind(&data); err != nil {
		apiError.Code = InvalidRequest
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return
	}

	articleID, err := environment.Env.ArticleModel.PublishArticle(data.Username, data.Title, data.Link)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, Created{articleID})
}

// GetArticle returns a single article record
// http://localhost:3000/articles/42
func GetArticle(c *gin.Context) {

	id := c.Param("id")

	article, err := environment.Env.ArticleModel.GetArticleByID(id)
	if err != nil {
		// nothing found (not an error to the client)
		if err == apperror.ErrNoData {
			c.Status(http.StatusNoContent)
			return
		}
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	environment.Env.Tracker.SaveVisitor("article", id, c.ClientIP())

	c.JSON(http.StatusOK, article)
}

// SortArticles returns one page of all articles, ordered by recency or score
// http://localhost:3000/articles/sort?rule=time&page=1
func SortArticles(c *gin.Context) {

	page, rule, ok := listParams(c)
	if !ok {
		return
	}

	articles, err := environment.Env.RankingModel.ListArticles(page, rule)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	c.JSON(http.StatusOK, articles)
}

// listParams reads the shared paging/sorting query parameters.
// On a bad page number the response is already written
func listParams(c *gin.Context) (page int64, rule string, ok bool) {

	var apiError ErrorResponse

	rule = c.DefaultQuery("rule", "time")

	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		apiError.Code = InvalidRequest
		apiError.Message = apiError.String(apiError.Code)
		c.JSON(http.StatusUnprocessableEntity, apiError)
		return 0, "", false
	}

	return page, rule, true
}
