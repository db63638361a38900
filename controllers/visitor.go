package controllers

import (
	"fmt"
	"net/http"
	"time"

	"newsrank/environment"

	"github.com/gin-gonic/gin"
)

// GetArticleVisits returns the live visit count of an article
// http://localhost:3000/articles/42/visits?startDT=2021-03-20
func GetArticleVisits(c *gin.Context) {

	var (
		err      error
		apiError ErrorResponse
	)

	id := c.Param("id")

	var startDT time.Time

	startStr := c.Query("startDT")
	if startStr == "" {
		// default: 7 days back (starting at 00:00:00)
		startDT = time.Now().AddDate(0, 0, -7)
		startDT = time.Date(startDT.Year(), startDT.Month(), startDT.Day(), 0, 0, 0, 0, startDT.UTC().Location())
	} else {
		startDT, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			fmt.Println(err)
			apiError.Code = InvalidRequest
			apiError.Message = apiError.String(apiError.Code)
			c.JSON(http.StatusUnprocessableEntity, apiError)
			return
		}
	}

	visits, err := environment.Env.Tracker.GetVisits("article", id, startDT)
	if err != nil {
		status, apiError := HandleError(err)
		c.JSON(status, apiError)
		return
	}

	// wrap response into an object
	res := struct {
		Visits int64 `json:"visits"`
	}{visits}

	c.JSON(http.StatusOK, res)
}
