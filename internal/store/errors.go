package store

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameAlreadyExists is returned on a unique violation for the
	// username column.
	ErrUsernameAlreadyExists = errors.New("username already exists")
	// ErrEmailAlreadyExists is returned on a unique violation for the
	// email column.
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrExcuseNotFound is returned when no excuse matches the given ID.
	ErrExcuseNotFound = errors.New("excuse not found")
)
