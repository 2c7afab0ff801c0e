package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a package or version is not found.
var ErrNotFound = errors.New("not found")

// ErrDecode is matched by every DecodeError.
var ErrDecode = errors.New("decode failed")

// IOError wraps a filesystem failure while reading the index.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NotFoundError wraps ErrNotFound with additional context.
type NotFoundError struct {
	Ecosystem string
	Name      string
	Version   string
}

func (e *NotFoundError) Error() string {
	if e.Version != "" {
		return fmt.Sprintf("%s: package %s version %s not found", e.Ecosystem, e.Name, e.Version)
	}
	return fmt.Sprintf("%s: package %s not found", e.Ecosystem, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// DecodeError reports a metadata line that could not be decoded.
// Line is 1-based; zero means the failure is not tied to a line. Name is
// set when the failure is found after loading, before Path is known.
type DecodeError struct {
	Path string
	Name string
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	where := e.Path
	if where == "" {
		where = e.Name
	}
	if e.Line > 0 {
		return fmt.Sprintf("decode %s:%d: %v", where, e.Line, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", where, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
