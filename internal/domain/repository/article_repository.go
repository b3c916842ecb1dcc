// Package repository defines the interfaces the service layer depends on for
// data access.
package repository

import (
	"context"

	"github.com/gidacan/blog-backend/internal/domain/entity"
)

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	// Create creates a new article
	Create(ctx context.Context, article *entity.Article) error

	// GetByID retrieves an article by ID
	GetByID(ctx context.Context, id uint) (*entity.Article, error)

	// GetByName retrieves an article by its exact name
	GetByName(ctx context.Context, name string) (*entity.Article, error)

	// Update updates an existing article
	Update(ctx context.Context, article *entity.Article) error

	// List retrieves articles with pagination
	List(ctx context.Context, page, size int) ([]*entity.Article, int64, error)
}
