package utils

import "errors"

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrNoActiveSession    = errors.New("no active session")
	ErrQuotaExhausted     = errors.New("free request quota exhausted")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrChatBusy           = errors.New("a message is already being processed")
)
