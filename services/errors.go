package services

import "errors"

// Service-level sentinels. Controllers map these to status codes with
// errors.Is; anything else is a 500.
var (
	ErrInvalidPayload     = errors.New("invalid payload")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDailyLogNotFound   = errors.New("daily log does not exist")
)
