package poly

import (
	"math"
	"strings"
)

// SolutionKind classifies the solutions of an equation.
type SolutionKind int8

// Kinds of solutions.
const (
	NoSolution SolutionKind = iota
	InfinitelyMany
	Roots
)

// Solution is the set of real solutions of an equation p = 0.
type Solution struct {
	Kind  SolutionKind
	Roots []float64 // one or two roots, for Kind == Roots
}

// Format renders a solution, e.g. "x = 1 or x = -1".
func (s Solution) Format(variable string) string {
	switch s.Kind {
	case NoSolution:
		return "No solutions"
	case InfinitelyMany:
		return "Infinitely many solutions"
	}
	parts := make([]string, len(s.Roots))
	for i, r := range s.Roots {
		parts[i] = variable + " = " + FormatNumber(r)
	}
	return strings.Join(parts, " or ")
}

func (s Solution) String() string {
	return s.Format("x")
}

// Solve finds the real solutions of p = 0 for polynomials of degree ≤ 2.
// For degree 2 and a positive discriminant the root using +√D comes first.
func Solve(p Polynomial) (Solution, error) {
	if p.Degree() > 2 {
		return Solution{}, ErrUnsupportedEquationDegree
	}
	if p.IsZero() {
		return Solution{Kind: InfinitelyMany}, nil
	}
	degree := p.Degree()
	var a [3]float64 // a[0] is the leading coefficient
	for _, m := range p {
		a[degree-m.Exponent] = m.Coefficient
	}
	tracer().Debugf("solving degree %d equation with coefficients %v", degree, a[:degree+1])
	switch degree {
	case 0:
		return Solution{Kind: NoSolution}, nil
	case 1:
		return Solution{Kind: Roots, Roots: []float64{-a[1] / a[0]}}, nil
	}
	D := a[1]*a[1] - 4*a[0]*a[2]
	switch {
	case D > 0:
		sqrtD := math.Sqrt(D)
		return Solution{Kind: Roots, Roots: []float64{
			(-a[1] + sqrtD) / (2 * a[0]),
			(-a[1] - sqrtD) / (2 * a[0]),
		}}, nil
	case D == 0:
		return Solution{Kind: Roots, Roots: []float64{-a[1] / (2 * a[0])}}, nil
	}
	return Solution{Kind: NoSolution}, nil
}
