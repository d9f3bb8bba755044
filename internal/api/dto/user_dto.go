package dto

import apperrors "github.com/spec-kit/ticket-tracker/pkg/util"

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks the signup shape, returning one entry per failing field.
func (r SignupRequest) Validate() []apperrors.FieldError {
	var fields []apperrors.FieldError
	if r.Username == "" {
		fields = append(fields, apperrors.FieldError{Field: "username", Message: "Username is required"})
	}
	if r.Password == "" {
		fields = append(fields, apperrors.FieldError{Field: "password", Message: "Password is required"})
	}
	return fields
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse holds the public user fields. The password is never echoed.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
