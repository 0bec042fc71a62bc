package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidToken  = errors.New("invalid token")
	ErrWrongPassword = errors.New("wrong password")
)
