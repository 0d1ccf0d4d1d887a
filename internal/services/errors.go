package services

import (
	"errors"

	"gamestore/internal/models"
)

var (
	ErrUsernameTaken    = errors.New("username already registered")
	ErrEmailTaken       = errors.New("email already registered")
	ErrInvalidInput     = errors.New("invalid input")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password too short")
	ErrUserGone         = errors.New("user no longer exists")
	ErrForbidden        = errors.New("forbidden")

	// ErrNotFound - тот же sentinel, что возвращают репозитории.
	ErrNotFound = models.ErrNotFound
)

const MinPasswordLength = 8

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
