package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to status codes; the specific errors
// below wrap one of them.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrDownload        = errors.New("download failed")
	ErrStorage         = errors.New("storage failed")
	ErrSigning         = errors.New("token signing failed")
)

// Auth errors
var (
	ErrMissingToken       = fmt.Errorf("%w: missing token", ErrUnauthenticated)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	ErrTokenExpired       = fmt.Errorf("%w: token expired", ErrUnauthenticated)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
)

// Resource errors
var (
	ErrEmailTaken    = fmt.Errorf("%w: email already registered", ErrValidation)
	ErrTooManyFiles  = fmt.Errorf("%w: too many files", ErrValidation)
	ErrUserNotFound  = fmt.Errorf("user %w", ErrNotFound)
	ErrPlaceNotFound = fmt.Errorf("place %w", ErrNotFound)
	ErrNotPlaceOwner = fmt.Errorf("%w: you do not own this place", ErrForbidden)
)
