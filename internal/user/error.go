package user

import "errors"

// -- Auth errors --

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is not set")
	ErrInvalidToken       = errors.New("invalid token")
)

// -- Persistence errors --

var (
	ErrFailedCreateUser = errors.New("failed to create user")
	ErrUserNotFound     = errors.New("user not found")
)
