package model

import "time"

// User is a stored account. Email is unique and stored lowercased.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the public view of a user; it never carries the password.
type Profile struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Profile returns the public view of u.
func (u *User) Profile() *Profile {
	return &Profile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// LoginRequest is the payload for POST /api/auth/login.
// Emptiness and format are checked by the auth service after normalization.
type LoginRequest struct {
	Email    string `json:"email" binding:"max=255"`
	Password string `json:"password" binding:"max=128"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Success bool     `json:"success"`
	User    *Profile `json:"user"`
}
