package service

import "errors"

var (
	ErrUpstream = errors.New("mailing list provider failed")
)
