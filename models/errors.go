package models

import "errors"

// Sentinel errors returned by services and repositories. Controllers map
// these to HTTP statuses; anything unrecognized becomes a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicatePhone     = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrAlreadyUpToDate    = errors.New("order is already up-to-date")

	ErrTokenExpired   = errors.New("token is expired")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenRevoked   = errors.New("token has been revoked")
	ErrAlreadyRevoked = errors.New("token already signed out")
)
