package application

import (
	"errors"
	"fmt"

	"termnotes/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrParse           = errors.New("parse error")
	ErrNotFound        = errors.New("not found")
	ErrWrongKind       = errors.New("wrong kind")
	ErrInvalidCount    = errors.New("invalid count")
	ErrIO              = errors.New("i/o error")
	ErrCorruptData     = errors.New("corrupt data")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrNothingSelected = errors.New("nothing selected")
	ErrNothingMarked   = errors.New("nothing marked")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseError reports command text that does not fit the grammar
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// CountError reports a non-positive or excessive repeat count
type CountError struct {
	Count int
	Max   int
}

func (e *CountError) Error() string {
	if e.Count <= 0 {
		return fmt.Sprintf("count must be positive, got %d", e.Count)
	}
	return fmt.Sprintf("count %d exceeds limit of %d", e.Count, e.Max)
}

func (e *CountError) Is(target error) bool {
	return target == ErrInvalidCount
}

// EntityError reports an operation on a missing or incompatible entity
type EntityError struct {
	ID     domain.ID
	Op     string
	Reason error // ErrNotFound or ErrWrongKind
	Kind   domain.Kind
}

func (e *EntityError) Error() string {
	if errors.Is(e.Reason, ErrWrongKind) {
		return fmt.Sprintf("%s: %s %s is not a valid target", e.Op, e.Kind, e.ID)
	}
	return fmt.Sprintf("%s: no entity with id %s", e.Op, e.ID)
}

func (e *EntityError) Unwrap() error {
	return e.Reason
}

// IOError wraps a persistence failure
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// CorruptDataError reports a persisted snapshot that cannot be decoded
type CorruptDataError struct {
	Path string
	Err  error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data in %s: %v", e.Path, e.Err)
}

func (e *CorruptDataError) Unwrap() error {
	return e.Err
}

func (e *CorruptDataError) Is(target error) bool {
	return target == ErrCorruptData
}

// UnknownCommandError carries the offending command text
type UnknownCommandError struct {
	Input string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Input)
}

func (e *UnknownCommandError) Is(target error) bool {
	return target == ErrUnknownCommand
}
