package services

import "errors"

var (
	ErrUnlockDenied     = errors.New("unlock denied")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrPasswordRequired = errors.New("password required to change sensitive profile data")
	ErrStorage          = errors.New("storage failure")
)
