/*
Package ll1 implements grammars and table-driven predictive parsing.

Building a Grammar

Grammars are specified using a grammar builder object or read from a grammar file.
Clients add rules, consisting of non-terminal symbols and terminals. Terminals are
identified by name; a terminal matches every token whose type equals its name.
Grammars may contain epsilon-productions.

Example:

    b := ll1.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()     // S  ->  A a
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b").End()            // B  ->  b
    b.LHS("B").Epsilon()               // B  ->  ε
    b.LHS("D").T("d").End()            // D  ->  d
    b.LHS("D").Epsilon()               // D  ->  ε

The grammar file format reads one production per line:

    # comment
    S -> A a
    B -> ^e$

where the first production's left-hand side is the start symbol and "^e$" denotes
epsilon.

Static Grammar Analysis

After the grammar is complete, it has to be analysed. Analyse computes FIRST and
FOLLOW sets for all non-terminals and FIRST+ sets for all productions, iterating
each of them to a fixpoint.

    ga := ll1.Analyse(g)
    fmt.Println(ga.First("A"))             // { b d ε }
    fmt.Println(ga.Follow("A"))            // { a }

Parser Construction

From the analysis a table generator creates the LL(1) prediction table. Conflicting
entries are resolved by letting the later production win; every overwrite is recorded
and may be queried to reject ambiguous grammars.

    gen := ll1.NewTableGenerator(ga)
    table := gen.CreateTable()
    if gen.HasConflicts() { … }

Together with semantic annotations the table drives a Parser, which produces a raw
parse tree (see package ptree) for a stream of tokens.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathsym.ll1'.
func tracer() tracing.Trace {
	return tracing.Select("mathsym.ll1")
}
