package poly

import (
	"errors"
	"fmt"

	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/mathsym/termr"
)

// Errors during evaluation. They are wrapped into an *EvalError.
var (
	ErrDivisionByZero            = errors.New("division by 0")
	ErrUnsupportedDivision       = errors.New("polynomial division is not supported")
	ErrUnsupportedEquationDegree = errors.New("equations of degree > 2 are not supported")
	ErrUnsupportedExponent       = errors.New("exponent must be a non-negative integer constant")
	ErrInvalidOperand            = errors.New("invalid operand")
)

// EvalError is returned for ASTs which cannot be evaluated. Op is the operator
// or operand where evaluation failed, if known, and Span the input covered by
// its sub-expression.
type EvalError struct {
	Op   string
	Span mathsym.Span
	Err  error
}

func (e *EvalError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (at '%s')", e.Err, e.Op)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func evalError(n *termr.Node, err error) error {
	if n == nil {
		return &EvalError{Err: err}
	}
	return &EvalError{Op: n.Label(), Span: n.Span(), Err: err}
}
