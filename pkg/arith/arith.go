// Package arith provides the five elementary arithmetic operations as pure,
// stateless functions over float64 operands.
//
// Every operation is deterministic and side-effect-free: results depend only
// on the operands, and no state is carried between calls. Divide is the single
// fallible operation; it validates its denominator and returns a
// distinguishable invalid-argument error instead of letting platform
// floating-point semantics produce an infinity or NaN.
package arith

import "math"

// Add returns the sum of a and b.
func Add(a, b float64) float64 { return a + b }

// Subtract returns the difference a minus b.
func Subtract(a, b float64) float64 { return a - b }

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 { return a * b }

// Divide returns the quotient a divided by b.
//
// A zero denominator is rejected before the division is performed: Divide
// returns 0 and an *InvalidArgumentError wrapping ErrDivisionByZero, so
// callers can match with either errors.As or errors.Is. Divide never returns
// an infinity or NaN caused by a zero denominator.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &InvalidArgumentError{
			Op:       "divide",
			Argument: "denominator",
			Value:    b,
			Err:      ErrDivisionByZero,
		}
	}
	return a / b, nil
}

// Power returns a raised to the power b. The exponent may be fractional.
//
// Domain errors follow math.Pow: a negative base with a fractional exponent
// yields NaN rather than an error.
func Power(a, b float64) float64 { return math.Pow(a, b) }
