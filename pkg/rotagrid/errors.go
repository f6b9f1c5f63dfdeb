package rotagrid

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates an unknown output format name.
var ErrInvalidFormat = errors.New("invalid output format")

// ErrFileNotFound indicates the artifact to inspect does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnreadable indicates the artifact exists but is not a valid xlsx file or CSV directory.
var ErrUnreadable = errors.New("unreadable artifact")

// ErrMismatch indicates an artifact that does not match its taxonomy.
var ErrMismatch = errors.New("artifact does not match taxonomy")

// WriteError represents a failure while producing the artifact.
type WriteError struct {
	Path      string
	Component string // "open", "summary", "sheet", "commit"
	Err       error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error for %s (%s): %v", e.Path, e.Component, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError.
func NewWriteError(path, component string, err error) *WriteError {
	return &WriteError{
		Path:      path,
		Component: component,
		Err:       err,
	}
}
