package service

import "errors"

var (
	// ErrMissingFields is returned when a required request field is empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrUsernameTaken is returned when the requested username already
	// belongs to another account.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when the requested email already belongs
	// to another account.
	ErrEmailTaken = errors.New("email already taken")
	// ErrAuthenticationFailed covers both unknown usernames and wrong
	// passwords, so callers cannot probe which accounts exist.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrInvalidCategory is returned for an unknown excuse category.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidTone is returned for an unknown excuse tone.
	ErrInvalidTone = errors.New("invalid tone")
)
