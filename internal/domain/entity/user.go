package entity

import (
	"time"
)

// UserRole represents user roles in the system
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// User represents a user entity in the system.
// Password always holds a bcrypt hash, never plaintext, and is excluded
// from JSON serialization.
type User struct {
	ID            uint      `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Age           int       `json:"age,omitempty"`
	Gender        string    `json:"gender,omitempty"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	Address       string    `json:"address,omitempty"`
	IsActive      bool      `json:"isActive"`
	Role          UserRole  `json:"type"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
