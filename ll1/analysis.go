package ll1

// SetTable maps non-terminal names to FIRST or FOLLOW sets.
type SetTable map[string]*SymbolSet

// Analysis holds the results of the static analysis of a grammar.
type Analysis struct {
	g         *Grammar
	first     SetTable
	follow    SetTable
	firstPlus []*SymbolSet // indexed by production serial
}

// Analyse computes FIRST, FOLLOW and FIRST+ sets for a grammar.
func Analyse(g *Grammar) *Analysis {
	ga := &Analysis{g: g}
	ga.first = ComputeFIRST(g)
	ga.follow = ComputeFOLLOW(g, ga.first)
	ga.firstPlus = ComputeFIRSTPlus(g, ga.first, ga.follow)
	return ga
}

// Grammar returns the analysed grammar.
func (ga *Analysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(A) for a non-terminal A, or nil if A is unknown.
func (ga *Analysis) First(nonterm string) *SymbolSet {
	return ga.first[nonterm]
}

// Follow returns FOLLOW(A) for a non-terminal A, or nil if A is unknown.
func (ga *Analysis) Follow(nonterm string) *SymbolSet {
	return ga.follow[nonterm]
}

// FirstPlus returns FIRST+ for the production with serial number i.
func (ga *Analysis) FirstPlus(i int) *SymbolSet {
	if i < 0 || i >= len(ga.firstPlus) {
		return nil
	}
	return ga.firstPlus[i]
}

// Dump traces all sets.
func (ga *Analysis) Dump() {
	for _, A := range ga.g.NonTerminals() {
		tracer().Debugf("FIRST(%s)  = %v", A, ga.first[A])
		tracer().Debugf("FOLLOW(%s) = %v", A, ga.follow[A])
	}
	for _, p := range ga.g.Productions() {
		tracer().Debugf("FIRST+(%s) = %v", p, ga.firstPlus[p.Serial])
	}
}

// --- FIRST -----------------------------------------------------------------

// ComputeFIRST computes FIRST(A) for every non-terminal A of g. A set contains
// ε if and only if A derives ε.
func ComputeFIRST(g *Grammar) SetTable {
	first := make(SetTable, len(g.NonTerminals()))
	for _, A := range g.NonTerminals() {
		first[A] = NewSymbolSet()
	}
	passes := 1
	for updateFIRST(g, first) {
		passes++
	}
	tracer().Debugf("FIRST sets stable after %d passes", passes)
	return first
}

// updateFIRST runs a single pass over all productions and reports whether any
// set changed.
func updateFIRST(g *Grammar, first SetTable) bool {
	changed := false
	for _, p := range g.Productions() {
		rhs := firstOfSequence(p.RHS, first)
		if first[p.LHS].AddAll(rhs, false) {
			changed = true
		}
	}
	return changed
}

// firstOfSequence computes FIRST of a sequence of symbols. The result contains ε
// if every symbol of the sequence may derive ε.
func firstOfSequence(seq []Symbol, first SetTable) *SymbolSet {
	set := NewSymbolSet()
	for _, sym := range seq {
		set.Remove(EpsilonSymbol)
		switch sym.Kind {
		case Epsilon:
			set.Add(EpsilonSymbol)
			continue
		case Terminal, EndOfInput:
			set.Add(sym)
			return set
		case NonTerminal:
			set.AddAll(first[sym.Name], false)
			if !first[sym.Name].HasEpsilon() {
				return set
			}
		}
	}
	if len(seq) == 0 {
		set.Add(EpsilonSymbol)
	}
	return set
}

// --- FOLLOW ----------------------------------------------------------------

// ComputeFOLLOW computes FOLLOW(A) for every non-terminal A of g. FOLLOW sets never
// contain ε; FOLLOW of the start symbol contains #eof.
func ComputeFOLLOW(g *Grammar, first SetTable) SetTable {
	follow := make(SetTable, len(g.NonTerminals()))
	for _, A := range g.NonTerminals() {
		follow[A] = NewSymbolSet()
	}
	follow[g.Start()].Add(EOFSymbol)
	passes := 1
	for updateFOLLOW(g, first, follow) {
		passes++
	}
	tracer().Debugf("FOLLOW sets stable after %d passes", passes)
	return follow
}

// updateFOLLOW runs a single pass over all productions, walking each RHS from right
// to left while maintaining the set of terminals which may follow the current
// position (the trailer).
func updateFOLLOW(g *Grammar, first, follow SetTable) bool {
	changed := false
	for _, p := range g.Productions() {
		trailer := follow[p.LHS].Copy()
		for i := len(p.RHS) - 1; i >= 0; i-- {
			sym := p.RHS[i]
			switch sym.Kind {
			case Epsilon:
				// transparent
			case NonTerminal:
				if follow[sym.Name].AddAll(trailer, true) {
					changed = true
				}
				if first[sym.Name].HasEpsilon() {
					trailer.AddAll(first[sym.Name], true)
				} else {
					trailer = first[sym.Name].Copy()
				}
			default:
				trailer = NewSymbolSet(sym)
			}
		}
	}
	return changed
}

// --- FIRST+ ----------------------------------------------------------------

// ComputeFIRSTPlus computes FIRST+ for every production A ➞ β:
// FIRST(β) if β cannot derive ε, FIRST(β) ∪ FOLLOW(A) otherwise.
func ComputeFIRSTPlus(g *Grammar, first, follow SetTable) []*SymbolSet {
	fplus := make([]*SymbolSet, g.Size())
	for _, p := range g.Productions() {
		set := firstOfSequence(p.RHS, first)
		if set.HasEpsilon() {
			set.AddAll(follow[p.LHS], false)
		}
		fplus[p.Serial] = set
	}
	return fplus
}
