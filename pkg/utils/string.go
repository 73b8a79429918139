// Package utils provides common utility functions.
package utils

import "strings"

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// NormalizeWhitespace replaces runs of whitespace with a single space and
// trims both ends.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// SplitTrim splits str on sep and returns the whitespace-normalized parts.
// Empty parts are kept so callers can report them.
func (s *StringHelper) SplitTrim(str, sep string) []string {
	parts := strings.Split(str, sep)
	for i, p := range parts {
		parts[i] = s.NormalizeWhitespace(p)
	}

	return parts
}
