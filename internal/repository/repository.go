package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when an insert collides with a unique key.
	ErrAlreadyExists = errors.New("already exists")
)
