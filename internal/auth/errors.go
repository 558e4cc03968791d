package auth

import "errors"

var (
	ErrEmailPasswordRequired = errors.New("Email and password are required")
	ErrInvalidCredentials    = errors.New("Invalid email or password")
	ErrTokenExpired          = errors.New("Token has expired")
	ErrInvalidToken          = errors.New("Invalid token")
	ErrAdminNotFound         = errors.New("Admin not found")
)
