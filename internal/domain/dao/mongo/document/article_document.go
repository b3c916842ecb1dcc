// Package document defines MongoDB document structs for persistence.
// These structs are separate from domain entities so that bson layout can
// evolve without touching business code.
package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArticleDocument represents an article in MongoDB.
type ArticleDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	NumericID uint               `bson:"numeric_id"`
	Name      string             `bson:"name"`
	Title     string             `bson:"title,omitempty"`
	Content   string             `bson:"content,omitempty"`
	Author    string             `bson:"author,omitempty"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for articles.
func (ArticleDocument) CollectionName() string {
	return "articles"
}
