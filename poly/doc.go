/*
Package poly implements polynomials in a single variable, a solver for
equations of degree ≤ 2, and an evaluator turning ASTs into polynomials.

Polynomials are kept in canonical form: monomials sorted by strictly descending
exponent, without zero coefficients. The empty polynomial is zero. Every
operation of this package returns canonical polynomials.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package poly

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathsym.poly'.
func tracer() tracing.Trace {
	return tracing.Select("mathsym.poly")
}
