// Package errors provides error handling for ontos.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints surfaced to CLI users
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownTerm) {
//	    // handle unresolved name
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll

	GetAllHints    = crdb.GetAllHints
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors for use across ontos.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnknownTerm indicates a surface name that the alias table could
	// not resolve to a canonical identifier.
	ErrUnknownTerm = New("unknown term")

	// ErrDuplicateInstance indicates an instance identifier that was
	// already assigned to a different class, or that collides with a
	// class identifier.
	ErrDuplicateInstance = New("duplicate instance")

	// ErrInvariant indicates a structural audit failure; the wrapped
	// message names the violated invariant and the offending values.
	ErrInvariant = New("ontology invariant violated")

	// ErrNotFound indicates the requested entity does not exist
	ErrNotFound = New("not found")
)

// IsUnknownTerm checks if an error is or wraps ErrUnknownTerm
func IsUnknownTerm(err error) bool {
	return err != nil && Is(err, ErrUnknownTerm)
}

// IsDuplicateInstance checks if an error is or wraps ErrDuplicateInstance
func IsDuplicateInstance(err error) bool {
	return err != nil && Is(err, ErrDuplicateInstance)
}

// IsInvariant checks if an error is or wraps ErrInvariant
func IsInvariant(err error) bool {
	return err != nil && Is(err, ErrInvariant)
}

// NewUnknownTermError creates an unknown-term error naming the term
func NewUnknownTermError(term string) error {
	return WithHint(Wrapf(ErrUnknownTerm, "%q", term),
		"check spelling, or list known names with: ontos instances")
}

// NewInvariantError creates an invariant error with a formatted message
func NewInvariantError(format string, args ...interface{}) error {
	return Wrap(ErrInvariant, Newf(format, args...).Error())
}
