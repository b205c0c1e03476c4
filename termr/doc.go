/*
Package termr implements the construction of abstract syntax trees from raw
parse trees.

Parse trees produced by package ll1 contain a placeholder node for every
non-terminal, with operators sitting at the leaves. An ASTBuilder rewrites them
in three steps:

▪︎ pruning removes empty placeholders and unused terminals (e.g. parentheses),
and collapses placeholders with a single child

▪︎ operator promotion moves every operator up the tree until the node it
occupies has operands on the required sides

▪︎ re-association rotates chains of left-associative operators of equal level,
which a right-recursive grammar leaves grouped to the right

The result is a tree of Node values without parent links, independent of the
parse tree's arena.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package termr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathsym.termr'.
func tracer() tracing.Trace {
	return tracing.Select("mathsym.termr")
}
