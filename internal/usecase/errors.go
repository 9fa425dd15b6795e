package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrDuplicateName = errors.New("name already exists")
	ErrUnauthorized  = errors.New("unauthorized")
)
