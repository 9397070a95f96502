// Package validation provides raw-input checks applied before translation.
// It rejects strings no path syntax can mean (control characters, names the
// guest environment forbids) so the parser only ever sees plausible input.
package validation

import (
	"errors"
	"strings"
)

var (
	ErrEmptyInput       = errors.New("input is empty")
	ErrPathTooLong      = errors.New("path exceeds maximum length")
	ErrControlCharacter = errors.New("path contains control characters")
	ErrForbiddenChars   = errors.New("path contains characters forbidden in guest names")
)

// MaxPathLength bounds both syntaxes. Matches the host PATH_MAX convention.
const MaxPathLength = 4096

// forbiddenGuestChars are the characters Windows-style names may not
// contain. Separators and the drive colon are handled by the parser, not
// here, so ':' and the slashes are absent.
const forbiddenGuestChars = `<>"|?*`

// ValidateGuestPath checks a raw guest path string before parsing.
func ValidateGuestPath(path string) error {
	if path == "" {
		return ErrEmptyInput
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if err := checkControlChars(path); err != nil {
		return err
	}
	if strings.ContainsAny(path, forbiddenGuestChars) {
		return ErrForbiddenChars
	}
	return nil
}

// ValidateHostPath checks a raw host path string before parsing. POSIX
// forbids almost nothing, so only control characters are rejected.
func ValidateHostPath(path string) error {
	if path == "" {
		return ErrEmptyInput
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	return checkControlChars(path)
}

func checkControlChars(path string) error {
	for _, r := range path {
		if r < 32 || r == 127 {
			return ErrControlCharacter
		}
	}
	return nil
}

// SanitizeString strips control characters for safe display of untrusted
// input in error messages.
func SanitizeString(input string) string {
	var result strings.Builder
	for _, r := range input {
		if r >= 32 && r != 127 {
			result.WriteRune(r)
		}
	}
	return result.String()
}
