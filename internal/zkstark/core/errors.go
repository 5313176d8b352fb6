package core

import "errors"

// ErrDivisionByZero is returned by FieldElement.Inv and Div when the divisor
// is zero. The pkg/zkstark layer maps it to ErrorKind DivisionByZero.
var ErrDivisionByZero = errors.New("core: division by zero")

var errNotGoldilocks = errors.New("core: accelerator requires the Goldilocks modulus")
