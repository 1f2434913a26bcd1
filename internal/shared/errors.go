package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("User not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrValidation indicates a malformed or incomplete request.
	ErrValidation = errors.New("Name, email, and password are required")
	// ErrDuplicateUser occurs when a signup email is already taken.
	ErrDuplicateUser = errors.New("User already exists")
	// ErrInvalidToken covers malformed, tampered and expired tokens alike.
	ErrInvalidToken = errors.New("Invalid or expired token")
	// ErrUpstream indicates the feed provider failed or returned garbage.
	ErrUpstream = errors.New("Failed to fetch news from external API")
)
