package mapper

import (
	"github.com/gidacan/blog-backend/internal/domain/dao/mongo/document"
	"github.com/gidacan/blog-backend/internal/domain/entity"
)

// UserMapper converts between User entity and UserDocument.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToDocument converts a User entity to a UserDocument.
func (m *UserMapper) ToDocument(user *entity.User) *document.UserDocument {
	if user == nil {
		return nil
	}

	return &document.UserDocument{
		NumericID:     user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Age:           user.Age,
		Gender:        user.Gender,
		ContactNumber: user.ContactNumber,
		Username:      user.Username,
		Email:         user.Email,
		Password:      user.Password,
		Address:       user.Address,
		IsActive:      user.IsActive,
		Role:          string(user.Role),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// ToEntity converts a UserDocument to a User entity.
func (m *UserMapper) ToEntity(doc *document.UserDocument) *entity.User {
	if doc == nil {
		return nil
	}

	return &entity.User{
		ID:            doc.NumericID,
		FirstName:     doc.FirstName,
		LastName:      doc.LastName,
		Age:           doc.Age,
		Gender:        doc.Gender,
		ContactNumber: doc.ContactNumber,
		Username:      doc.Username,
		Email:         doc.Email,
		Password:      doc.Password,
		Address:       doc.Address,
		IsActive:      doc.IsActive,
		Role:          entity.UserRole(doc.Role),
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

// ToEntities converts a slice of UserDocument to a slice of User entities.
func (m *UserMapper) ToEntities(docs []*document.UserDocument) []*entity.User {
	if docs == nil {
		return nil
	}

	users := make([]*entity.User, len(docs))
	for i, doc := range docs {
		users[i] = m.ToEntity(doc)
	}
	return users
}
