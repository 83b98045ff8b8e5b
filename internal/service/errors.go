package service

import "errors"

// Typed outcomes of the core decision points. Handlers translate these to
// HTTP responses; anything not in this list is treated as a storage failure
// and reported generically.
var (
	ErrInvalidPayload   = errors.New("invalid QR payload")
	ErrLocationNotFound = errors.New("location not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBlocked          = errors.New("account is blocked")
	ErrExpired          = errors.New("account has expired")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrBadCredentials   = errors.New("invalid email or password")
	ErrInviteInvalid    = errors.New("invite token invalid")
	ErrInviteExpired    = errors.New("invite token expired")
)
