/*
Package mathsym is a configurable engine for symbolic single-variable polynomial
expressions.

MathSym reads a grammar, semantic annotations for it and a set of tokenizer rules
from plain text files. Input lines are tokenized, parsed by a table-driven LL(1)
parser, rewritten into an operator-centric abstract syntax tree and finally
evaluated as a polynomial. Equations of degree ≤ 2 are solved. Package structure is
as follows:

■ ll1: Package ll1 implements grammars, FIRST/FOLLOW analysis, LL(1) table
construction and a predictive parser driven entirely by these tables.

■ termr: Package termr rewrites raw parse trees into ASTs.

■ poly: Package poly implements polynomial algebra and the AST evaluator.

■ engine: Package engine wires all of the above into a line evaluator.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mathsym
