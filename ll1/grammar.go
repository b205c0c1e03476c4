package ll1

import (
	"errors"
	"fmt"
	"strings"
)

// --- Symbols ---------------------------------------------------------------

// SymbolKind tags grammar symbols.
type SymbolKind int8

// Kinds of grammar symbols. Epsilon and EndOfInput are pseudo-terminals which
// appear in FIRST and FOLLOW sets, but never as token types.
const (
	Terminal SymbolKind = iota
	NonTerminal
	Epsilon
	EndOfInput
)

func (k SymbolKind) String() string {
	switch k {
	case Terminal:
		return "T"
	case NonTerminal:
		return "N"
	case Epsilon:
		return "ε"
	case EndOfInput:
		return "#eof"
	}
	return "?"
}

// Symbol is a grammar symbol. Symbols are values and immutable.
type Symbol struct {
	Kind SymbolKind
	Name string // empty for Epsilon and EndOfInput
}

// EpsilonSymbol and EOFSymbol are the two pseudo-terminals.
var (
	EpsilonSymbol = Symbol{Kind: Epsilon}
	EOFSymbol     = Symbol{Kind: EndOfInput}
)

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{Kind: Terminal, Name: name}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Kind: NonTerminal, Name: name}
}

// IsTerminal is true for terminals, but not for the pseudo-terminals.
func (sym Symbol) IsTerminal() bool {
	return sym.Kind == Terminal
}

func (sym Symbol) String() string {
	switch sym.Kind {
	case Epsilon, EndOfInput:
		return sym.Kind.String()
	}
	return sym.Name
}

// --- Productions -----------------------------------------------------------

// Production is a grammar rule
//
//     LHS ➞ RHS₀ RHS₁ …
//
// Serial is the position of the production in the grammar. Epsilon productions
// have a RHS consisting of the single epsilon symbol.
type Production struct {
	Serial int
	LHS    string
	RHS    []Symbol
}

func (p *Production) String() string {
	var b strings.Builder
	b.WriteString(p.LHS)
	b.WriteString(" ➞")
	for _, sym := range p.RHS {
		b.WriteByte(' ')
		b.WriteString(sym.String())
	}
	return b.String()
}

// IsEpsilon is true for productions A ➞ ε.
func (p *Production) IsEpsilon() bool {
	for _, sym := range p.RHS {
		if sym.Kind != Epsilon {
			return false
		}
	}
	return true
}

// --- Grammars --------------------------------------------------------------

// Grammar is an ordered list of productions. The LHS of the first production is the
// start symbol. Grammars are immutable once built.
type Grammar struct {
	Name         string
	productions  []*Production
	nonterminals []string // in order of first appearance as LHS
	terminals    []string // in order of first appearance
	ntIndex      map[string]int
	tIndex       map[string]int
}

// Start returns the name of the start symbol.
func (g *Grammar) Start() string {
	return g.productions[0].LHS
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.productions)
}

// Production returns the production with serial number i.
func (g *Grammar) Production(i int) *Production {
	if i < 0 || i >= len(g.productions) {
		return nil
	}
	return g.productions[i]
}

// Productions returns all productions in grammar order. Clients must not modify them.
func (g *Grammar) Productions() []*Production {
	return g.productions
}

// NonTerminals returns the names of all non-terminals in order of appearance.
func (g *Grammar) NonTerminals() []string {
	return g.nonterminals
}

// Terminals returns the names of all terminals in order of appearance.
func (g *Grammar) Terminals() []string {
	return g.terminals
}

// IsNonTerminal checks if a name denotes a non-terminal of g.
func (g *Grammar) IsNonTerminal(name string) bool {
	_, ok := g.ntIndex[name]
	return ok
}

// IsTerminal checks if a name denotes a terminal of g.
func (g *Grammar) IsTerminal(name string) bool {
	_, ok := g.tIndex[name]
	return ok
}

// Dump is a debugging helper, tracing all productions.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ---------------------------", g.Name)
	for _, p := range g.productions {
		tracer().Debugf("%3d: %s", p.Serial, p)
	}
	tracer().Debugf("-------------------------------------------")
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is a builder type for grammars. Create one with
// NewGrammarBuilder, add rules with LHS(…) and get the grammar with Grammar().
type GrammarBuilder struct {
	name  string
	rules []*Production
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{name: name}
}

// RuleBuilder collects the RHS of a single production.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs []Symbol
}

// LHS starts a new production for non-terminal name.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: name}
}

// N appends a non-terminal to the RHS.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, N(name))
	return rb
}

// T appends a terminal to the RHS.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, T(name))
	return rb
}

// Symbol appends an arbitrary symbol to the RHS.
func (rb *RuleBuilder) Symbol(sym Symbol) *RuleBuilder {
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// Epsilon appends ε to the RHS and ends the production.
func (rb *RuleBuilder) Epsilon() *Production {
	rb.rhs = append(rb.rhs, EpsilonSymbol)
	return rb.End()
}

// End ends the production. A production without RHS symbols is an ε-production.
func (rb *RuleBuilder) End() *Production {
	if len(rb.rhs) == 0 {
		rb.rhs = []Symbol{EpsilonSymbol}
	}
	p := &Production{
		Serial: len(rb.gb.rules),
		LHS:    rb.lhs,
		RHS:    rb.rhs,
	}
	rb.gb.rules = append(rb.gb.rules, p)
	return p
}

// Grammar returns the grammar built so far, after checking it for consistency:
// every non-terminal used on a RHS must have at least one production, and no
// symbol may be used as both a terminal and a non-terminal.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.rules) == 0 {
		return nil, errors.New("grammar has no productions")
	}
	g := &Grammar{
		Name:        gb.name,
		productions: gb.rules,
		ntIndex:     make(map[string]int),
		tIndex:      make(map[string]int),
	}
	for _, p := range gb.rules {
		if p.LHS == "" {
			return nil, fmt.Errorf("production %d has an empty left-hand side", p.Serial)
		}
		if _, ok := g.ntIndex[p.LHS]; !ok {
			g.ntIndex[p.LHS] = len(g.nonterminals)
			g.nonterminals = append(g.nonterminals, p.LHS)
		}
	}
	for _, p := range gb.rules {
		for _, sym := range p.RHS {
			switch sym.Kind {
			case NonTerminal:
				if _, ok := g.ntIndex[sym.Name]; !ok {
					return nil, fmt.Errorf("non-terminal %s in production %d has no productions",
						sym.Name, p.Serial)
				}
			case Terminal:
				if _, ok := g.ntIndex[sym.Name]; ok {
					return nil, fmt.Errorf("symbol %s in production %d is used as terminal, but has productions",
						sym.Name, p.Serial)
				}
				if _, ok := g.tIndex[sym.Name]; !ok {
					g.tIndex[sym.Name] = len(g.terminals)
					g.terminals = append(g.terminals, sym.Name)
				}
			}
		}
	}
	return g, nil
}
