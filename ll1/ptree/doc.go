/*
Package ptree holds raw parse trees, as produced by the predictive parser.

Parse tree nodes live in an arena and address each other by index. Parsing
an input line allocates all of its nodes from a single arena, and releasing
the tree hands the arena back to a pool for the next parse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ptree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathsym.ptree'.
func tracer() tracing.Trace {
	return tracing.Select("mathsym.ptree")
}
