package entity

import (
	"time"
)

// ArticleStatus represents the publication status of an article
type ArticleStatus string

const (
	ArticleActive   ArticleStatus = "active"
	ArticleInactive ArticleStatus = "inactive"
)

// IsValid reports whether the status is one of the known values
func (s ArticleStatus) IsValid() bool {
	return s == ArticleActive || s == ArticleInactive
}

// Article represents a blog article.
// Name is a secondary lookup key; uniqueness is not enforced by the store,
// so lookups by name resolve to the lowest-ID match.
type Article struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Title     string        `json:"title,omitempty"`
	Content   string        `json:"content,omitempty"`
	Author    string        `json:"author,omitempty"`
	Status    ArticleStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ToggleStatus flips the article between active and inactive
func (a *Article) ToggleStatus() {
	if a.Status == ArticleActive {
		a.Status = ArticleInactive
		return
	}
	a.Status = ArticleActive
}

// IsActive reports whether the article is active
func (a *Article) IsActive() bool {
	return a.Status == ArticleActive
}
