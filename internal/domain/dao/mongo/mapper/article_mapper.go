// Package mapper provides conversion functions between domain entities and
// MongoDB documents.
package mapper

import (
	"github.com/gidacan/blog-backend/internal/domain/dao/mongo/document"
	"github.com/gidacan/blog-backend/internal/domain/entity"
)

// ArticleMapper converts between Article entity and ArticleDocument.
type ArticleMapper struct{}

// NewArticleMapper creates a new ArticleMapper instance.
func NewArticleMapper() *ArticleMapper {
	return &ArticleMapper{}
}

// ToDocument converts an Article entity to an ArticleDocument.
func (m *ArticleMapper) ToDocument(article *entity.Article) *document.ArticleDocument {
	if article == nil {
		return nil
	}

	return &document.ArticleDocument{
		NumericID: article.ID,
		Name:      article.Name,
		Title:     article.Title,
		Content:   article.Content,
		Author:    article.Author,
		Status:    string(article.Status),
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}

// ToEntity converts an ArticleDocument to an Article entity.
func (m *ArticleMapper) ToEntity(doc *document.ArticleDocument) *entity.Article {
	if doc == nil {
		return nil
	}

	return &entity.Article{
		ID:        doc.NumericID,
		Name:      doc.Name,
		Title:     doc.Title,
		Content:   doc.Content,
		Author:    doc.Author,
		Status:    entity.ArticleStatus(doc.Status),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// ToEntities converts a slice of ArticleDocument to a slice of Article entities.
func (m *ArticleMapper) ToEntities(docs []*document.ArticleDocument) []*entity.Article {
	if docs == nil {
		return nil
	}

	articles := make([]*entity.Article, len(docs))
	for i, doc := range docs {
		articles[i] = m.ToEntity(doc)
	}
	return articles
}
