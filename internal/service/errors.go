package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrNoSuchAccount = errors.New("no such account")
	ErrWrongPassword = errors.New("wrong password")

	ErrTokenAudienceMismatch = errors.New("token audience mismatch")
	ErrTokenCreationFailed   = errors.New("token creation failed")
)
