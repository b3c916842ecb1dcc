package request

// LoginRequest represents the login payload. Username also accepts an email.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
