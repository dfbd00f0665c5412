package arith

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero indicates that a division was attempted with a zero
// denominator. It is wrapped by the structured error Divide returns, so
// errors.Is(err, ErrDivisionByZero) matches.
var ErrDivisionByZero = errors.New("division by zero")

// InvalidArgumentError indicates that an operation received an argument
// outside its valid domain. It identifies the operation and the offending
// argument, and wraps a sentinel error for error-chain matching.
type InvalidArgumentError struct {
	// Op names the operation that rejected the argument.
	Op string
	// Argument names the rejected parameter.
	Argument string
	// Value is the rejected operand value.
	Value float64
	// Err is the underlying sentinel error.
	Err error
}

// Error formats the error as "<op>: invalid <argument> <value>: <cause>".
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid %s %v: %v", e.Op, e.Argument, e.Value, e.Err)
}

// Unwrap returns the wrapped sentinel error for errors.Is traversal.
func (e *InvalidArgumentError) Unwrap() error { return e.Err }
