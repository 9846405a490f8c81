package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicate     = errors.New("duplicate resource")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("access denied")
	ErrConflict      = errors.New("conflict with current state")
	ErrInUse         = errors.New("resource is referenced by other records")
)
