package poly

import (
	"strconv"

	"github.com/npillmayer/mathsym/ll1/ptree"
	"github.com/npillmayer/mathsym/termr"
)

// DefaultVariable is the name of the variable, if not configured otherwise.
const DefaultVariable = "x"

// EquationOperator is the token type separating the sides of an equation.
const EquationOperator = "="

// Result is the outcome of evaluating an input line: either a polynomial
// expression or the solution of an equation.
type Result struct {
	Variable   string
	IsEquation bool
	Polynomial Polynomial // the expression, or LHS - RHS for equations
	Solution   Solution   // for equations only
}

func (r Result) String() string {
	if r.IsEquation {
		return r.Solution.Format(r.Variable)
	}
	return "ans = " + r.Polynomial.Format(r.Variable)
}

// Evaluator evaluates ASTs. Evaluators are stateless and may be shared between
// goroutines.
type Evaluator struct {
	variable string
}

// NewEvaluator creates an evaluator for a variable name. Leaves whose token type
// or lexeme equals the variable name evaluate to x, all other operand leaves
// have to be numbers.
func NewEvaluator(variable string) *Evaluator {
	if variable == "" {
		variable = DefaultVariable
	}
	return &Evaluator{variable: variable}
}

// Eval evaluates an AST. If the root is an equation, Eval solves LHS - RHS = 0,
// otherwise it returns the expression's polynomial.
//
// Errors are of type *EvalError.
func (ev *Evaluator) Eval(ast *termr.Node) (Result, error) {
	r := Result{Variable: ev.variable}
	if ast == nil {
		return r, evalError(nil, ErrInvalidOperand)
	}
	if ast.Kind == ptree.BinaryOperator && ast.Type() == EquationOperator {
		if len(ast.Children) != 2 {
			return r, evalError(ast, ErrInvalidOperand)
		}
		lhs, err := ev.Polynomial(ast.Children[0])
		if err != nil {
			return r, err
		}
		rhs, err := ev.Polynomial(ast.Children[1])
		if err != nil {
			return r, err
		}
		r.IsEquation = true
		r.Polynomial = Sub(lhs, rhs)
		if r.Solution, err = Solve(r.Polynomial); err != nil {
			return r, evalError(ast, err)
		}
		tracer().Debugf("%s = 0 ⇒ %s", r.Polynomial.Format(ev.variable), r)
		return r, nil
	}
	p, err := ev.Polynomial(ast)
	if err != nil {
		return r, err
	}
	r.Polynomial = p
	return r, nil
}

// Polynomial evaluates an expression AST to a polynomial.
func (ev *Evaluator) Polynomial(n *termr.Node) (Polynomial, error) {
	if n.IsLeaf() {
		return ev.operand(n)
	}
	switch n.Kind {
	case ptree.UnaryLeftOperator:
		if len(n.Children) != 1 {
			return nil, evalError(n, ErrInvalidOperand)
		}
		arg, err := ev.Polynomial(n.Children[0])
		if err != nil {
			return nil, err
		}
		switch n.Type() {
		case "-":
			return Neg(arg), nil
		case "+":
			return arg, nil
		}
	case ptree.BinaryOperator:
		if len(n.Children) != 2 {
			return nil, evalError(n, ErrInvalidOperand)
		}
		lhs, err := ev.Polynomial(n.Children[0])
		if err != nil {
			return nil, err
		}
		rhs, err := ev.Polynomial(n.Children[1])
		if err != nil {
			return nil, err
		}
		return ev.binary(n, lhs, rhs)
	}
	return nil, evalError(n, ErrInvalidOperand)
}

func (ev *Evaluator) binary(n *termr.Node, lhs, rhs Polynomial) (Polynomial, error) {
	var (
		p   Polynomial
		err error
	)
	switch n.Type() {
	case "+":
		p = Add(lhs, rhs)
	case "-":
		p = Sub(lhs, rhs)
	case "*":
		p = Mul(lhs, rhs)
	case "/":
		p, err = Div(lhs, rhs)
	case "^":
		p, err = Pow(lhs, rhs)
	default: // includes a nested '='
		err = ErrInvalidOperand
	}
	if err != nil {
		return nil, evalError(n, err)
	}
	return p, nil
}

func (ev *Evaluator) operand(n *termr.Node) (Polynomial, error) {
	if n.Kind != ptree.Operand || n.Token == nil {
		return nil, evalError(n, ErrInvalidOperand)
	}
	if n.Token.Type == ev.variable || n.Token.Value == ev.variable {
		return Variable(), nil
	}
	c, err := strconv.ParseFloat(n.Token.Value, 64)
	if err != nil {
		return nil, evalError(n, ErrInvalidOperand)
	}
	return Constant(c), nil
}
