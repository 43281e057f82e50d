// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers and services to distinguish between different failure
// scenarios with errors.Is instead of inspecting driver error strings.
package repository

import "errors"

// ErrEmailExists is returned when inserting a user whose e-mail address is
// already taken. Handlers translate this into an HTTP 400 response.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNameExists is returned when inserting a user whose username is
// already taken.
var ErrUserNameExists = errors.New("username already exists")

// ErrRoomNumberExists is returned when creating or updating a room with a
// room number that another room already uses.
var ErrRoomNumberExists = errors.New("room number already exists")

// ErrRoomNotFound is returned when a referenced room does not exist.
var ErrRoomNotFound = errors.New("room not found")

// ErrReviewNotFound is returned when a referenced review does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ErrGalleryNotFound is returned when a referenced gallery entry does not
// exist.
var ErrGalleryNotFound = errors.New("gallery entry not found")

// ErrUserNotFound is returned when a referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrTokenNotFound is returned when a verification token does not resolve
// to a stored record.
var ErrTokenNotFound = errors.New("token not found")
