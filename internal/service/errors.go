// Package service implements the application workflows on top of the
// repository, storage and mail layers: account registration and
// verification, catalog image orchestration, review aggregation and the
// booking submission sequence. Handlers translate the sentinel errors
// defined here into HTTP responses with errors.Is.
package service

import "errors"

// ErrDuplicateEmail is returned when registering with an e-mail address
// that is already taken.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

// ErrDuplicateUserName is returned when registering with a username that is
// already taken.
var ErrDuplicateUserName = errors.New("username is already taken")

// ErrInvalidCredentials is returned when the password comparison fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotVerified is returned when an unverified account attempts to log in
// or submit a booking.
var ErrNotVerified = errors.New("email address not verified")

// ErrInvalidToken is returned when a verification token does not resolve to
// a user.
var ErrInvalidToken = errors.New("invalid or expired token")

// ErrAlreadyVerified is returned when verifying an account whose flag is
// already set.
var ErrAlreadyVerified = errors.New("user already verified")

// ErrEmptyBooking is returned when a booking is submitted with no line
// items.
var ErrEmptyBooking = errors.New("booking has no line items")

// ErrValidation is returned for missing or malformed input detected before
// any side effect.
var ErrValidation = errors.New("validation failed")
