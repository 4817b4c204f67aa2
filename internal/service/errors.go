package service

import "errors"

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrInvalidScore  = errors.New("score must be a non-negative whole number")
	ErrPartialScore  = errors.New("both scores must be set or both cleared")
)
