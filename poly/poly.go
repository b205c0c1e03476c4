package poly

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// MaxExponent is the largest exponent accepted by Pow.
const MaxExponent = 1024

// Monomial is a single term c·xⁿ.
type Monomial struct {
	Coefficient float64
	Exponent    int
}

// Polynomial is a sum of monomials in canonical form.
type Polynomial []Monomial

// Constant creates a constant polynomial.
func Constant(c float64) Polynomial {
	return Canonical(Monomial{Coefficient: c})
}

// Variable creates the polynomial x.
func Variable() Polynomial {
	return Polynomial{{Coefficient: 1, Exponent: 1}}
}

// Canonical creates a polynomial from arbitrary terms: terms are sorted by
// descending exponent, terms of equal exponent are summed, and terms with a zero
// coefficient are dropped.
func Canonical(terms ...Monomial) Polynomial {
	t := make([]Monomial, len(terms))
	copy(t, terms)
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Exponent > t[j].Exponent
	})
	var p Polynomial
	for i := 0; i < len(t); {
		m := t[i]
		j := i + 1
		for ; j < len(t) && t[j].Exponent == m.Exponent; j++ {
			m.Coefficient += t[j].Coefficient
		}
		if m.Coefficient != 0 {
			p = append(p, m)
		}
		i = j
	}
	return p
}

// IsZero is true for the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p) == 0
}

// IsConstant is true for polynomials of degree 0 and for zero.
func (p Polynomial) IsConstant() bool {
	return len(p) == 0 || len(p) == 1 && p[0].Exponent == 0
}

// Degree returns the highest exponent of p, or -1 for zero.
func (p Polynomial) Degree() int {
	if len(p) == 0 {
		return -1
	}
	return p[0].Exponent
}

// Coefficient returns the coefficient of xⁿ.
func (p Polynomial) Coefficient(n int) float64 {
	for _, m := range p {
		if m.Exponent == n {
			return m.Coefficient
		}
	}
	return 0
}

// --- Arithmetic ------------------------------------------------------------

// Add returns p + q.
func Add(p, q Polynomial) Polynomial {
	terms := make([]Monomial, 0, len(p)+len(q))
	terms = append(terms, p...)
	terms = append(terms, q...)
	return Canonical(terms...)
}

// Neg returns -p.
func Neg(p Polynomial) Polynomial {
	r := make(Polynomial, len(p))
	for i, m := range p {
		r[i] = Monomial{Coefficient: -m.Coefficient, Exponent: m.Exponent}
	}
	return Canonical(r...)
}

// Sub returns p - q.
func Sub(p, q Polynomial) Polynomial {
	return Add(p, Neg(q))
}

// Mul returns p · q, distributing every term of p over every term of q.
func Mul(p, q Polynomial) Polynomial {
	terms := make([]Monomial, 0, len(p)*len(q))
	for _, a := range p {
		for _, b := range q {
			terms = append(terms, Monomial{
				Coefficient: a.Coefficient * b.Coefficient,
				Exponent:    a.Exponent + b.Exponent,
			})
		}
	}
	return Canonical(terms...)
}

// Div returns p / q. Only division by non-zero constants is supported.
func Div(p, q Polynomial) (Polynomial, error) {
	if q.IsZero() {
		return nil, ErrDivisionByZero
	}
	if !q.IsConstant() {
		return nil, ErrUnsupportedDivision
	}
	d := q[0].Coefficient
	r := make(Polynomial, len(p))
	for i, m := range p {
		r[i] = Monomial{Coefficient: m.Coefficient / d, Exponent: m.Exponent}
	}
	return Canonical(r...), nil
}

// Pow returns pᵠ. The exponent q has to be a non-negative integer constant not
// greater than MaxExponent. p⁰ is 1 for every p.
func Pow(p, q Polynomial) (Polynomial, error) {
	if !q.IsConstant() {
		return nil, ErrUnsupportedExponent
	}
	e := q.Coefficient(0)
	if e < 0 || e != math.Trunc(e) || e > MaxExponent {
		return nil, ErrUnsupportedExponent
	}
	n := int(e)
	result := Constant(1)
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = Mul(result, base)
		}
		n >>= 1
		if n > 0 {
			base = Mul(base, base)
		}
	}
	return result, nil
}

// --- Formatting ------------------------------------------------------------

// Format renders p in descending powers of a variable, e.g. "3x^2 - x + 0.5".
// Coefficients ±1 are omitted for non-constant terms.
func (p Polynomial) Format(variable string) string {
	if len(p) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, m := range p {
		c := m.Coefficient
		switch {
		case i == 0 && c < 0:
			b.WriteString("-")
		case i > 0 && c < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		c = math.Abs(c)
		if c != 1 || m.Exponent == 0 {
			b.WriteString(FormatNumber(c))
		}
		if m.Exponent != 0 {
			b.WriteString(variable)
		}
		if m.Exponent != 0 && m.Exponent != 1 {
			b.WriteString("^")
			b.WriteString(strconv.Itoa(m.Exponent))
		}
	}
	return b.String()
}

func (p Polynomial) String() string {
	return p.Format("x")
}

// FormatNumber formats a number with 6 significant digits, dropping trailing
// zeros. Negative zero is printed as 0.
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0 // -0
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
