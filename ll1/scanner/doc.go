/*
Package scanner implements configurable tokenizers on top of lexmachine.

A tokenizer is defined by a list of rules, each pairing a token type with a
regular expression. Rule files contain one rule per line:

    # numbers and the variable
    num : [0-9]+(\.[0-9]+)?
    x   : x

All whitespace within a rule line is ignored; the line is split at its first
colon. Input is tokenized by longest match, with earlier rules winning ties.
Whitespace between tokens is skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathsym.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("mathsym.scanner")
}
