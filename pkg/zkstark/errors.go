package zkstark

import (
	"errors"
	"fmt"

	"github.com/vybium/zk-stark-engine/internal/zkstark/core"
	"github.com/vybium/zk-stark-engine/internal/zkstark/stark"
)

// ErrorKind classifies why a proving or verification call failed.
type ErrorKind int

const (
	// ErrUnknown covers failures that don't map onto a more specific kind.
	ErrUnknown ErrorKind = iota

	// ErrInvalidInput means the statement, witness, or configuration was malformed.
	ErrInvalidInput

	// ErrDomainMismatch means a field, domain, or trace-shape mismatch was found.
	ErrDomainMismatch

	// ErrConstraintViolated means the execution trace fails its AIR constraints.
	ErrConstraintViolated

	// ErrCommitmentInvalid means a Merkle commitment or its proof is invalid.
	ErrCommitmentInvalid

	// ErrLowDegreeFailure means the FRI low-degree proximity check failed.
	ErrLowDegreeFailure

	// ErrBindingFailure means the proof does not bind to the given statement.
	ErrBindingFailure

	// ErrDivisionByZero means a field division by zero was attempted.
	ErrDivisionByZero
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidInput:
		return "invalid input"
	case ErrDomainMismatch:
		return "domain mismatch"
	case ErrConstraintViolated:
		return "constraint violated"
	case ErrCommitmentInvalid:
		return "commitment invalid"
	case ErrLowDegreeFailure:
		return "low-degree failure"
	case ErrBindingFailure:
		return "binding failure"
	case ErrDivisionByZero:
		return "division by zero"
	default:
		return "unknown"
	}
}

// StarkError is the error type every exported zkstark function returns.
type StarkError struct {
	Code    ErrorKind
	Message string
	Cause   error
}

// Error renders the error message.
func (e *StarkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("zkstark error [%s]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("zkstark error [%s]: %s", e.Code, e.Message)
}

// Unwrap returns the cause.
func (e *StarkError) Unwrap() error { return e.Cause }

// Is reports whether target is a StarkError with the same Code.
func (e *StarkError) Is(target error) bool {
	t, ok := target.(*StarkError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// wrapError classifies err against the internal package's sentinels and
// wraps it as a StarkError, so callers never see internal error types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	kind := ErrUnknown
	switch {
	case errors.Is(err, stark.ErrInvalidInput):
		kind = ErrInvalidInput
	case errors.Is(err, stark.ErrDomainMismatch):
		kind = ErrDomainMismatch
	case errors.Is(err, stark.ErrConstraintViolated):
		kind = ErrConstraintViolated
	case errors.Is(err, stark.ErrCommitmentInvalid):
		kind = ErrCommitmentInvalid
	case errors.Is(err, stark.ErrLowDegreeFailure):
		kind = ErrLowDegreeFailure
	case errors.Is(err, stark.ErrBindingFailure):
		kind = ErrBindingFailure
	case errors.Is(err, core.ErrDivisionByZero):
		kind = ErrDivisionByZero
	}
	return &StarkError{Code: kind, Message: err.Error(), Cause: err}
}
