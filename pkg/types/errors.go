// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error kinds. Every failure surfaced by the import stages wraps exactly one
// of these, so callers can branch with errors.Is.
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrMalformedInput = errors.New("malformed input")
	ErrWriteFailure   = errors.New("write failure")
	ErrVerification   = errors.New("verification failed")
)

// PathError records the error kind, the operation, and the file involved.
type PathError struct {
	Kind error
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	msg += ": " + e.Path
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
