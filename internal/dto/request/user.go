package request

// CreateUserRequest represents the payload for creating a user
type CreateUserRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Age           int    `json:"age" binding:"omitempty,gte=0"`
	Gender        string `json:"gender"`
	ContactNumber string `json:"contactNumber"`
	Username      string `json:"username" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=5,max=72"`
	Address       string `json:"address"`
	Type          string `json:"type" binding:"omitempty,oneof=admin member"`
}

// UpdateUserRequest represents the payload for updating a user.
// Nil fields are left untouched. A non-nil password is re-hashed.
type UpdateUserRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Age           *int    `json:"age" binding:"omitempty,gte=0"`
	Gender        *string `json:"gender"`
	ContactNumber *string `json:"contactNumber"`
	Username      *string `json:"username"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Password      *string `json:"password" binding:"omitempty,min=5,max=72"`
	Address       *string `json:"address"`
	IsActive      *bool   `json:"isActive"`
	Type          *string `json:"type" binding:"omitempty,oneof=admin member"`
}
