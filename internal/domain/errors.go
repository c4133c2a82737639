package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrUserAlreadyExists = errors.New("user already exists with given email")
	ErrInvalidCredential = errors.New("invalid or expired credential")
)
