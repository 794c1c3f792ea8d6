package domain

import "errors"

var (
	// ErrEmailTaken is returned when registering with an already used email
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when no user matches the given email or id
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when login password verification fails
	ErrInvalidCredentials = errors.New("invalid email or password")
)
