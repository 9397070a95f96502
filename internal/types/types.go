// Package types contains shared types and error definitions for winepath.
package types

import (
	"errors"
	"fmt"
)

// DriveLetter identifies a guest drive. Valid values are 'A' through 'Z'.
type DriveLetter byte

// ParseDriveLetter folds an ASCII letter to its canonical uppercase form.
func ParseDriveLetter(c byte) (DriveLetter, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return DriveLetter(c), true
	case c >= 'a' && c <= 'z':
		return DriveLetter(c - 'a' + 'A'), true
	default:
		return 0, false
	}
}

// Valid reports whether the letter is in 'A'..'Z'.
func (d DriveLetter) Valid() bool {
	return d >= 'A' && d <= 'Z'
}

// Index returns the zero-based position of the letter in the alphabet.
func (d DriveLetter) Index() int {
	return int(d - 'A')
}

// Lower returns the lowercase byte used by dosdevices entry names.
func (d DriveLetter) Lower() byte {
	return byte(d) - 'A' + 'a'
}

func (d DriveLetter) String() string {
	if !d.Valid() {
		return "?"
	}
	return string([]byte{byte(d)})
}

// Sentinel errors for path translation
var (
	ErrPrefixNotFound       = errors.New("could not determine wine prefix")
	ErrUnmappedDrive        = errors.New("drive letter is not mapped")
	ErrNoDriveCoversPath    = errors.New("host path is not under any mapped drive")
	ErrRelativePath         = errors.New("relative guest paths are not supported")
	ErrMappingDirUnreadable = errors.New("dosdevices directory is unreadable")
	ErrNotFound             = errors.New("no matching directory entry")
	ErrBadDriveSpec         = errors.New("malformed drive designator")
	ErrBadUNCPath           = errors.New("malformed UNC path")
	ErrEmptySegment         = errors.New("path contains an empty segment")
	ErrEmptyPath            = errors.New("path is empty")
)

// TranslateError represents a translation failure with context
type TranslateError struct {
	Op   string
	Path string
	Err  error
	Help string
}

func (e *TranslateError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TranslateError) Unwrap() error {
	return e.Err
}

// IsUnmappedDrive checks if the error indicates an unconfigured drive letter
func IsUnmappedDrive(err error) bool {
	return errors.Is(err, ErrUnmappedDrive)
}

// IsNoDriveCoversPath checks if the error indicates a host path outside all mappings
func IsNoDriveCoversPath(err error) bool {
	return errors.Is(err, ErrNoDriveCoversPath)
}

// IsParseError checks if the error indicates malformed path syntax
func IsParseError(err error) bool {
	return errors.Is(err, ErrBadDriveSpec) ||
		errors.Is(err, ErrBadUNCPath) ||
		errors.Is(err, ErrEmptySegment) ||
		errors.Is(err, ErrEmptyPath)
}

// NewTranslateError creates a new TranslateError
func NewTranslateError(op, path string, err error, help string) *TranslateError {
	return &TranslateError{Op: op, Path: path, Err: err, Help: help}
}
