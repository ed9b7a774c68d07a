package service

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrNotAuthenticated   = errors.New("login required")
	ErrInvalidImage       = errors.New("could not process image")
)
