package database

import "github.com/pkg/errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("duplicate")
	ErrViolation       = errors.New("data integrity violation")
	ErrInvalidArgument = errors.New("invalid argument")
)
