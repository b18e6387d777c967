package usecase

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEntryNotFound      = errors.New("watchlist entry not found")
	ErrCatalogUnavailable = errors.New("movie catalog unavailable")
)
