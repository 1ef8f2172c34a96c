package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailRegistered    = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrProfileNotFound    = errors.New("student profile not found")
	ErrContentNotFound    = errors.New("content not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrNoActiveActivity   = errors.New("no active learning activity found")
	ErrMentorNotFound     = errors.New("mentor not found")
	ErrMentorRequested    = errors.New("relationship with this mentor already exists")
)
