package poly

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func x() Polynomial { return Variable() }

func c(v float64) Polynomial { return Constant(v) }

func TestCanonical(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.poly")
	defer teardown()
	//
	p := Canonical(
		Monomial{Coefficient: 1, Exponent: 0},
		Monomial{Coefficient: 2, Exponent: 2},
		Monomial{Coefficient: 0, Exponent: 5},
		Monomial{Coefficient: 3, Exponent: 0},
		Monomial{Coefficient: -1, Exponent: 1},
		Monomial{Coefficient: 1, Exponent: 1},
	)
	assert.Equal(t, Polynomial{{2, 2}, {4, 0}}, p)
	assert.True(t, Canonical().IsZero())
	assert.Equal(t, -1, Canonical().Degree())
}

func TestAddCancels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.poly")
	defer teardown()
	//
	p := Add(Add(x(), c(1)), Add(Neg(x()), c(1)))
	assert.Equal(t, Polynomial{{2, 0}}, p)
	assert.Equal(t, "2", p.String())
	assert.True(t, Sub(x(), x()).IsZero())
}

func TestMul(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.poly")
	defer teardown()
	//
	p := Mul(Add(x(), c(1)), Sub(x(), c(1)))
	assert.Equal(t, "x^2 - 1", p.String())
	assert.True(t, Mul(x(), c(0)).IsZero())
}

func TestDiv(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.poly")
	defer teardown()
	//
	p, err := Div(c(6), c(3))
	require.NoError(t, err)
	assert.Equal(t, "2", p.String())
	p, err = Div(Add(Mul(c(4), x()), c(2)), c(2))
	require.NoError(t, err)
	assert.Equal(t, "2x + 1", p.String())
	_, err = Div(x(), c(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = Div(c(1), Add(x(), c(1)))
	assert.ErrorIs(t, err, ErrUnsupportedDivision)
}

func TestPow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.poly")
	defer teardown()
	//
	p, err := Pow(Add(x(), c(1)), c(2))
	require.NoError(t, err)
	assert.Equal(t, "x^2 + 2x + 1", p.String())
	p, err = Pow(x(), c(0))
	require.NoError(t, err)
	assert.Equal(t, "1", p.String())
	p, err = Pow(c(2), c(10))
	require.NoError(t, err)
	assert.Equal(t, "1024", p.String())
	for _, e := range []Polynomial{x(), c(0.5), c(-1), c(MaxExponent + 1)} {
		_, err = Pow(x(), e)
		assert.ErrorIs(t, err, ErrUnsupportedExponent, "exponent %v", e)
	}
}

func TestFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.poly")
	defer teardown()
	//
	cases := []struct {
		p        Polynomial
		expected string
	}{
		{nil, "0"},
		{Polynomial{{1, 0}}, "1"},
		{Polynomial{{-2, 0}}, "-2"},
		{Polynomial{{-1, 1}}, "-x"},
		{Polynomial{{1, 1}, {-1, 0}}, "x - 1"},
		{Polynomial{{3, 2}, {-1, 1}, {0.5, 0}}, "3x^2 - x + 0.5"},
		{Polynomial{{-1, 3}, {1, 1}}, "-x^3 + x"},
		{Polynomial{{1.0 / 3.0, 0}}, "0.333333"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, tc.p.String())
	}
	assert.Equal(t, "2y^2", Polynomial{{2, 2}}.Format("y"))
}

func TestFormatNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.poly")
	defer teardown()
	//
	assert.Equal(t, "0", FormatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "2", FormatNumber(2))
	assert.Equal(t, "-0.5", FormatNumber(-0.5))
	assert.Equal(t, "1e+06", FormatNumber(1e6))
	assert.Equal(t, "3.14159", FormatNumber(math.Pi))
}

func TestSolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.poly")
	defer teardown()
	//
	cases := []struct {
		p        Polynomial
		expected string
	}{
		{Sub(Mul(c(2), x()), c(4)), "x = 2"},
		{Sub(Mul(x(), x()), c(1)), "x = 1 or x = -1"},
		{Add(Mul(x(), x()), c(1)), "No solutions"},
		{Canonical(Monomial{1, 2}, Monomial{-2, 1}, Monomial{1, 0}), "x = 1"},
		{c(-1), "No solutions"},
		{nil, "Infinitely many solutions"},
		{Mul(c(3), x()), "x = 0"},
	}
	for _, tc := range cases {
		s, err := Solve(tc.p)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, s.String(), "solving %s = 0", tc.p)
	}
	_, err := Solve(Mul(x(), Mul(x(), x())))
	assert.ErrorIs(t, err, ErrUnsupportedEquationDegree)
}
