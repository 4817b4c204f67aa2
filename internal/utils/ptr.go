package utils

import "strings"

func Ptr[T any](v T) *T {
	return &v
}

// Copy returns a new pointer holding the same value, or nil
func Copy[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Returns nil on an empty or all whitespace string
func StringOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
