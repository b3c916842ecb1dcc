package document

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDocument represents a user in MongoDB.
type UserDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	NumericID     uint               `bson:"numeric_id"`
	FirstName     string             `bson:"first_name,omitempty"`
	LastName      string             `bson:"last_name,omitempty"`
	Age           int                `bson:"age,omitempty"`
	Gender        string             `bson:"gender,omitempty"`
	ContactNumber string             `bson:"contact_number,omitempty"`
	Username      string             `bson:"username"`
	Email         string             `bson:"email"`
	Password      string             `bson:"password"`
	Address       string             `bson:"address,omitempty"`
	IsActive      bool               `bson:"is_active"`
	Role          string             `bson:"type"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// CollectionName returns the MongoDB collection name for users.
func (UserDocument) CollectionName() string {
	return "users"
}
