package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFile matches any MissingFileError via errors.Is.
	ErrMissingFile = errors.New("file does not exist")
	// ErrParse matches any ParseError via errors.Is.
	ErrParse = errors.New("invalid json")
)

// MissingFileError is returned when a required JSON file does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file %q does not exist", e.Path)
}

func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile
}

// ParseError is returned when a JSON file exists but cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
