package response

import (
	"time"

	"github.com/gidacan/blog-backend/internal/domain/entity"
)

// ArticleResponse represents an article in API responses
type ArticleResponse struct {
	ID        uint                 `json:"id"`
	Name      string               `json:"name"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Author    string               `json:"author"`
	Status    entity.ArticleStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// NewArticleResponse builds an ArticleResponse from an entity
func NewArticleResponse(a *entity.Article) ArticleResponse {
	return ArticleResponse{
		ID:        a.ID,
		Name:      a.Name,
		Title:     a.Title,
		Content:   a.Content,
		Author:    a.Author,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// NewArticleResponses builds a slice of ArticleResponse from entities
func NewArticleResponses(articles []*entity.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		if a == nil {
			continue
		}
		out = append(out, NewArticleResponse(a))
	}
	return out
}
