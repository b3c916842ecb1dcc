// Package impl provides repository implementations that delegate to the DAO
// layer and record per-operation store metrics on the way through.
package impl

import (
	"context"
	"time"

	"github.com/gidacan/blog-backend/internal/domain/dao"
	"github.com/gidacan/blog-backend/internal/domain/entity"
	"github.com/gidacan/blog-backend/internal/domain/repository"
	"github.com/gidacan/blog-backend/internal/observability"
)

// articleRepository implements repository.ArticleRepository by delegating to
// ArticleDAO.
type articleRepository struct {
	dao     dao.ArticleDAO
	metrics *observability.MetricsProvider
}

// NewArticleRepository creates a new ArticleRepository instance.
// The metrics provider may be nil; operations are then unrecorded.
func NewArticleRepository(articleDAO dao.ArticleDAO, metrics *observability.MetricsProvider) repository.ArticleRepository {
	return &articleRepository{dao: articleDAO, metrics: metrics}
}

// record times a store operation and reports it to the metrics provider.
func (r *articleRepository) record(ctx context.Context, op string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordDBOperation(ctx, op, err == nil, time.Since(start))
}

// Create inserts a new article.
func (r *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	start := time.Now()
	err := r.dao.Create(ctx, article)
	r.record(ctx, "articles.insert", start, err)
	return err
}

// GetByID retrieves an article by its ID.
func (r *articleRepository) GetByID(ctx context.Context, id uint) (*entity.Article, error) {
	start := time.Now()
	article, err := r.dao.FindByID(ctx, id)
	r.record(ctx, "articles.find", start, err)
	return article, err
}

// GetByName retrieves an article by its exact name.
func (r *articleRepository) GetByName(ctx context.Context, name string) (*entity.Article, error) {
	start := time.Now()
	article, err := r.dao.FindByName(ctx, name)
	r.record(ctx, "articles.find", start, err)
	return article, err
}

// Update modifies an existing article.
func (r *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	start := time.Now()
	err := r.dao.Update(ctx, article)
	r.record(ctx, "articles.update", start, err)
	return err
}

// List retrieves articles with pagination.
func (r *articleRepository) List(ctx context.Context, page, size int) ([]*entity.Article, int64, error) {
	start := time.Now()
	articles, total, err := r.dao.FindAll(ctx, page, size)
	r.record(ctx, "articles.find", start, err)
	return articles, total, err
}
