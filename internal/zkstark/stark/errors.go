package stark

import "errors"

// Sentinel errors the public package maps onto its ErrorKind taxonomy via
// errors.Is. Internal code always wraps one of these with fmt.Errorf so
// callers keep the specific context.
var (
	ErrInvalidInput       = errors.New("stark: invalid input")
	ErrDomainMismatch     = errors.New("stark: domain mismatch")
	ErrConstraintViolated = errors.New("stark: AIR constraint violated")
	ErrCommitmentInvalid  = errors.New("stark: commitment invalid")
	ErrLowDegreeFailure   = errors.New("stark: low-degree proximity check failed")
	ErrBindingFailure     = errors.New("stark: statement binding failure")
)
