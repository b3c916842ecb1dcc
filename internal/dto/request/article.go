// Package request contains the HTTP request payloads.
package request

// CreateArticleRequest represents the payload for creating an article
type CreateArticleRequest struct {
	Name    string `json:"name" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// UpdateArticleRequest represents the payload for updating an article.
// Nil fields are left untouched.
type UpdateArticleRequest struct {
	Name    *string `json:"name"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Author  *string `json:"author"`
}
