package domain

import "errors"

var (
	ErrInvalidEmail = errors.New("invalid email")
)
