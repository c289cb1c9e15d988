package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrShapeMismatch  = errors.New("shape mismatch")
	ErrFormatMismatch = errors.New("format mismatch")
	ErrUnknownEntity  = errors.New("unknown entity")
	ErrExecution      = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	// KindShapeMismatch: a domain field is missing or has the wrong semantic type.
	KindShapeMismatch ErrorKind = "shape_mismatch"
	// KindFormatMismatch: a formatted view field cannot be parsed back.
	KindFormatMismatch ErrorKind = "format_mismatch"
	KindUnknownEntity  ErrorKind = "unknown_entity"
	KindExecution      ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: file path, or record field path for mapping errors
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match an OpError against the sentinel of its kind,
// even when Err carries a lower-level cause.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == sentinelFor(e.Kind)
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// ShapeMismatch reports a domain field that is absent or not of the declared semantic type.
func ShapeMismatch(op, field string, err error) error {
	return &OpError{Op: op, Kind: KindShapeMismatch, Path: field, Err: err}
}

// FormatMismatch reports a view field that cannot be parsed back to its domain representation.
func FormatMismatch(op, field string, err error) error {
	return &OpError{Op: op, Kind: KindFormatMismatch, Path: field, Err: err}
}

func sentinelFor(kind ErrorKind) error {
	switch kind {
	case KindNotFound:
		return ErrNotFound
	case KindInvalidConfig:
		return ErrInvalidConfig
	case KindShapeMismatch:
		return ErrShapeMismatch
	case KindFormatMismatch:
		return ErrFormatMismatch
	case KindUnknownEntity:
		return ErrUnknownEntity
	case KindExecution:
		return ErrExecution
	default:
		return nil
	}
}
