// Package dao defines data access object interfaces for the document store.
// The DAO layer separates repository business logic from MongoDB-specific
// query code.
package dao

import (
	"context"
)

// BaseDAO defines common CRUD operations for all DAOs.
// T is the entity type, ID is the identifier type.
type BaseDAO[T any, ID comparable] interface {
	// Create inserts a new entity into the store.
	Create(ctx context.Context, entity *T) error

	// FindByID retrieves an entity by its numeric ID.
	// Returns nil, nil if the entity is not found.
	FindByID(ctx context.Context, id ID) (*T, error)

	// Update replaces the stored fields of an existing entity.
	Update(ctx context.Context, entity *T) error

	// FindAll retrieves entities with pagination.
	// Returns the entities, total count, and any error.
	FindAll(ctx context.Context, page, size int) ([]*T, int64, error)

	// Count returns the total number of entities.
	Count(ctx context.Context) (int64, error)

	// ExistsBy checks if an entity exists by a field value.
	ExistsBy(ctx context.Context, field string, value any) (bool, error)
}
