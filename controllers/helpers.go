package controllers

// Created is the standard response for new items
type Created struct {
	ArticleID string `json:"articleId"`
}
