// Package service contains the business logic sitting between the HTTP
// controllers and the repositories.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gidacan/blog-backend/internal/domain/entity"
	"github.com/gidacan/blog-backend/internal/domain/repository"
	"github.com/gidacan/blog-backend/internal/dto/request"
	apperrors "github.com/gidacan/blog-backend/pkg/errors"
)

var (
	ErrArticleNotFound = apperrors.ErrNotFound.WithMessage("article not found")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ArticleService defines the business operations for articles
type ArticleService interface {
	List(ctx context.Context, page, size int) ([]*entity.Article, int64, error)
	Create(ctx context.Context, req *request.CreateArticleRequest) (*entity.Article, error)
	Update(ctx context.Context, id uint, req *request.UpdateArticleRequest) (*entity.Article, error)
	ToggleStatus(ctx context.Context, id uint) (*entity.Article, error)
	GetByName(ctx context.Context, name string) (*entity.Article, error)
}

type articleService struct {
	articles repository.ArticleRepository
	logger   *zap.Logger
}

// NewArticleService creates a new ArticleService instance
func NewArticleService(articles repository.ArticleRepository, logger *zap.Logger) ArticleService {
	return &articleService{
		articles: articles,
		logger:   logger,
	}
}

// normalizePage clamps pagination parameters to sane bounds
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

func (s *articleService) List(ctx context.Context, page, size int) ([]*entity.Article, int64, error) {
	page, size = normalizePage(page, size)
	articles, total, err := s.articles.List(ctx, page, size)
	if err != nil {
		s.logger.Error("failed to list articles", zap.Error(err))
		return nil, 0, apperrors.ErrStoreUnavailable.WithError(err)
	}
	return articles, total, nil
}

func (s *articleService) Create(ctx context.Context, req *request.CreateArticleRequest) (*entity.Article, error) {
	article := &entity.Article{
		Name:    req.Name,
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
		Status:  entity.ArticleActive,
	}

	if err := s.articles.Create(ctx, article); err != nil {
		s.logger.Error("failed to create article", zap.String("name", req.Name), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}

	s.logger.Info("article created", zap.Uint("id", article.ID), zap.String("name", article.Name))
	return article, nil
}

func (s *articleService) Update(ctx context.Context, id uint, req *request.UpdateArticleRequest) (*entity.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get article", zap.Uint("id", id), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	if req.Name != nil {
		article.Name = *req.Name
	}
	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Author != nil {
		article.Author = *req.Author
	}

	if err := s.articles.Update(ctx, article); err != nil {
		s.logger.Error("failed to update article", zap.Uint("id", id), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}
	return article, nil
}

func (s *articleService) ToggleStatus(ctx context.Context, id uint) (*entity.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get article", zap.Uint("id", id), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	article.ToggleStatus()

	if err := s.articles.Update(ctx, article); err != nil {
		s.logger.Error("failed to toggle article status", zap.Uint("id", id), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}

	s.logger.Info("article status toggled",
		zap.Uint("id", article.ID),
		zap.String("status", string(article.Status)))
	return article, nil
}

func (s *articleService) GetByName(ctx context.Context, name string) (*entity.Article, error) {
	article, err := s.articles.GetByName(ctx, name)
	if err != nil {
		s.logger.Error("failed to get article by name", zap.String("name", name), zap.Error(err))
		return nil, apperrors.ErrStoreUnavailable.WithError(err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}
