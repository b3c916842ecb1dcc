package dao

import (
	"context"

	"github.com/gidacan/blog-backend/internal/domain/entity"
)

// ArticleDAO extends BaseDAO with article-specific data access operations.
type ArticleDAO interface {
	BaseDAO[entity.Article, uint]

	// FindByName retrieves an article by its exact name. Name is not
	// unique in the store; the lowest-ID match wins.
	// Returns nil, nil if no article matches.
	FindByName(ctx context.Context, name string) (*entity.Article, error)
}
