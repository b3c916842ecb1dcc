package response

import (
	"time"

	"github.com/gidacan/blog-backend/internal/domain/entity"
)

// UserResponse represents a user in API responses.
// The password hash is never exposed.
type UserResponse struct {
	ID            uint            `json:"id"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Age           int             `json:"age"`
	Gender        string          `json:"gender"`
	ContactNumber string          `json:"contactNumber"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	Address       string          `json:"address"`
	IsActive      bool            `json:"isActive"`
	Type          entity.UserRole `json:"type"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// NewUserResponse builds a UserResponse from an entity
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Age:           u.Age,
		Gender:        u.Gender,
		ContactNumber: u.ContactNumber,
		Username:      u.Username,
		Email:         u.Email,
		Address:       u.Address,
		IsActive:      u.IsActive,
		Type:          u.Role,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// NewUserResponses builds a slice of UserResponse from entities
func NewUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		out = append(out, NewUserResponse(u))
	}
	return out
}
