package utils

import "errors"

var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("record not found")
	ErrConflict        = errors.New("record already exists")
	ErrAlreadyInactive = errors.New("record is already inactive")
	ErrReference       = errors.New("referenced record does not exist")
	ErrDatabaseError   = errors.New("database error")

	// ErrAuthFailure is returned for every failed login, whatever the cause.
	ErrAuthFailure = errors.New("invalid email or password")

	ErrInvalidID     = errors.New("invalid id parameter")
	ErrInvalidPeriod = errors.New("invalid period parameter")
)
