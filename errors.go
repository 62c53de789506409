package keyfile

import (
	"errors"
	"fmt"
)

// Parse errors. A parse that hits one of these returns no document.
var (
	ErrMissingGroupHeader = errors.New("missing group header")
	ErrInvalidGroupHeader = errors.New("invalid group header")
	ErrInvalidEntry       = errors.New("invalid entry")
)

// Validation errors returned by setters and typed getters.
var (
	ErrInvalidGroupName     = errors.New("invalid group name")
	ErrInvalidKey           = errors.New("invalid key")
	ErrInvalidValue         = errors.New("invalid value")
	ErrInvalidListSeparator = errors.New("invalid list separator")
	ErrInvalidBoolean       = errors.New("invalid boolean value")
	ErrInvalidInteger       = errors.New("invalid integer value")
	ErrInvalidFloat         = errors.New("invalid float value")
	ErrInvalidLocale        = errors.New("invalid locale")

	ErrGroupNotFound = errors.New("group not found")
	ErrKeyNotFound   = errors.New("key not found")
)

// ParseError represents a parsing error with location information.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalid(kind error, value string) error {
	return fmt.Errorf("%w: %q", kind, value)
}
