package ll1

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolSet is an ordered set of terminals and pseudo-terminals, as used for
// FIRST, FOLLOW and FIRST+ sets. Terminals sort by name, ε and #eof after them.
type SymbolSet struct {
	set *treeset.Set
}

func symbolComparator(a, b interface{}) int {
	s1, s2 := a.(Symbol), b.(Symbol)
	if s1.Kind != s2.Kind {
		return utils.IntComparator(rank(s1.Kind), rank(s2.Kind))
	}
	return utils.StringComparator(s1.Name, s2.Name)
}

func rank(k SymbolKind) int {
	switch k {
	case Epsilon:
		return 2
	case EndOfInput:
		return 3
	case NonTerminal:
		return 1
	}
	return 0
}

// NewSymbolSet creates a set containing syms.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	s := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	for _, sym := range syms {
		s.set.Add(sym)
	}
	return s
}

// Add adds a symbol and reports whether the set changed.
func (s *SymbolSet) Add(sym Symbol) bool {
	if s.set.Contains(sym) {
		return false
	}
	s.set.Add(sym)
	return true
}

// AddAll adds all symbols of other, except ε if withoutEpsilon is set. It
// reports whether s changed.
func (s *SymbolSet) AddAll(other *SymbolSet, withoutEpsilon bool) bool {
	changed := false
	it := other.set.Iterator()
	for it.Next() {
		sym := it.Value().(Symbol)
		if withoutEpsilon && sym.Kind == Epsilon {
			continue
		}
		if s.Add(sym) {
			changed = true
		}
	}
	return changed
}

// Remove removes a symbol from the set.
func (s *SymbolSet) Remove(sym Symbol) {
	s.set.Remove(sym)
}

// Contains checks for set membership.
func (s *SymbolSet) Contains(sym Symbol) bool {
	return s.set.Contains(sym)
}

// HasEpsilon is a shortcut for Contains(EpsilonSymbol).
func (s *SymbolSet) HasEpsilon() bool {
	return s.set.Contains(EpsilonSymbol)
}

// Size returns the number of symbols in the set.
func (s *SymbolSet) Size() int {
	return s.set.Size()
}

// Symbols returns the set members in order.
func (s *SymbolSet) Symbols() []Symbol {
	syms := make([]Symbol, 0, s.set.Size())
	for _, v := range s.set.Values() {
		syms = append(syms, v.(Symbol))
	}
	return syms
}

// Copy returns an independent copy of s.
func (s *SymbolSet) Copy() *SymbolSet {
	c := NewSymbolSet()
	c.AddAll(s, false)
	return c
}

func (s *SymbolSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for _, sym := range s.Symbols() {
		b.WriteByte(' ')
		b.WriteString(sym.String())
	}
	b.WriteString(" }")
	return b.String()
}
