package ll1

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/dekarrin/rosed"
	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/mathsym/ll1/sparse"
)

// === Prediction Table ======================================================

// Table is an LL(1) prediction table. Rows are non-terminals, columns are
// terminals plus the end-of-input marker. An entry holds the serial number of the
// production to expand.
type Table struct {
	g      *Grammar
	matrix *sparse.IntMatrix
	rows   map[string]int
	cols   map[string]int
	eofcol int
}

func newTable(g *Grammar) *Table {
	t := &Table{
		g:    g,
		rows: make(map[string]int, len(g.NonTerminals())),
		cols: make(map[string]int, len(g.Terminals())),
	}
	for i, A := range g.NonTerminals() {
		t.rows[A] = i
	}
	for j, a := range g.Terminals() {
		t.cols[a] = j
	}
	t.eofcol = len(g.Terminals())
	t.matrix = sparse.NewIntMatrix(len(g.NonTerminals()), t.eofcol+1, sparse.DefaultNullValue)
	return t
}

// Grammar returns the grammar this table has been built for.
func (t *Table) Grammar() *Grammar {
	return t.g
}

// Predict returns the production to expand for non-terminal A, given a lookahead
// of token type tokType. Token type mathsym.EOFType selects the end-of-input
// column. If there is no entry, Predict returns (nil, false).
func (t *Table) Predict(A string, tokType string) (*Production, bool) {
	row, ok := t.rows[A]
	if !ok {
		return nil, false
	}
	col, ok := t.column(tokType)
	if !ok {
		return nil, false
	}
	v := t.matrix.Value(row, col)
	if v == t.matrix.NullValue() {
		return nil, false
	}
	return t.g.Production(int(v)), true
}

// Expected returns the lookaheads with a table entry for non-terminal A.
func (t *Table) Expected(A string) []string {
	row, ok := t.rows[A]
	if !ok {
		return nil
	}
	var la []string
	for _, a := range t.g.Terminals() {
		if t.matrix.Value(row, t.cols[a]) != t.matrix.NullValue() {
			la = append(la, a)
		}
	}
	if t.matrix.Value(row, t.eofcol) != t.matrix.NullValue() {
		la = append(la, "end of input")
	}
	return la
}

// Size returns the number of entries in the table.
func (t *Table) Size() int {
	return t.matrix.ValueCount()
}

func (t *Table) column(tokType string) (int, bool) {
	if tokType == mathsym.EOFType {
		return t.eofcol, true
	}
	col, ok := t.cols[tokType]
	return col, ok
}

func (t *Table) columnOf(sym Symbol) (int, bool) {
	switch sym.Kind {
	case EndOfInput:
		return t.eofcol, true
	case Terminal:
		col, ok := t.cols[sym.Name]
		return col, ok
	}
	return 0, false
}

// String renders the table as a text grid, one row per non-terminal.
func (t *Table) String() string {
	data := [][]string{}
	topRow := []string{""}
	topRow = append(topRow, t.g.Terminals()...)
	topRow = append(topRow, EOFSymbol.String())
	data = append(data, topRow)
	for i, A := range t.g.NonTerminals() {
		row := []string{A}
		for j := 0; j <= t.eofcol; j++ {
			v := t.matrix.Value(i, j)
			if v == t.matrix.NullValue() {
				row = append(row, "")
			} else {
				row = append(row, fmt.Sprintf("%d", v))
			}
		}
		data = append(data, row)
	}
	return rosed.Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{
			TableBorders: true,
		}).
		String()
}

// tableFingerprint is the hashable content of a table.
type tableFingerprint struct {
	Grammar []string
	Entries []tableEntry
}

type tableEntry struct {
	Row, Col   int
	Production int32
}

// Fingerprint returns a hash over the grammar's productions and the table's
// entries. Tables built from equal grammars have equal fingerprints.
func (t *Table) Fingerprint() string {
	fp := tableFingerprint{}
	for _, p := range t.g.Productions() {
		fp.Grammar = append(fp.Grammar, p.String())
	}
	t.matrix.Each(func(i, j int, v int32) {
		fp.Entries = append(fp.Entries, tableEntry{Row: i, Col: j, Production: v})
	})
	h, err := structhash.Hash(fp, 1)
	if err != nil {
		tracer().Errorf("cannot hash prediction table: %v", err)
		return ""
	}
	return h
}

// === Table Generator =======================================================

// Conflict records an overwritten table entry: for non-terminal NonTerminal and
// lookahead Lookahead, production Winner replaced production Loser.
type Conflict struct {
	NonTerminal string
	Lookahead   Symbol
	Loser       int
	Winner      int
}

func (c Conflict) String() string {
	return fmt.Sprintf("conflict at [%s, %s]: production %d overwrites %d",
		c.NonTerminal, c.Lookahead, c.Winner, c.Loser)
}

// TableGenerator is an object type to create the LL(1) prediction table for a
// grammar.
type TableGenerator struct {
	ga        *Analysis
	table     *Table
	conflicts []Conflict
}

// NewTableGenerator creates a table generator for an analysed grammar.
func NewTableGenerator(ga *Analysis) *TableGenerator {
	return &TableGenerator{ga: ga}
}

// CreateTable builds the prediction table. For every production A ➞ β and every
// terminal or #eof a in FIRST+(A ➞ β) the entry [A, a] predicts the production.
// Productions are processed in grammar order; if an entry is already occupied the
// later production wins and a conflict is recorded.
func (gen *TableGenerator) CreateTable() *Table {
	g := gen.ga.Grammar()
	table := newTable(g)
	gen.conflicts = nil
	for _, p := range g.Productions() {
		row := table.rows[p.LHS]
		for _, a := range gen.ga.FirstPlus(p.Serial).Symbols() {
			col, ok := table.columnOf(a)
			if !ok { // ε
				continue
			}
			prev := table.matrix.Set(row, col, int32(p.Serial))
			if prev != table.matrix.NullValue() && prev != int32(p.Serial) {
				c := Conflict{NonTerminal: p.LHS, Lookahead: a, Loser: int(prev), Winner: p.Serial}
				tracer().Infof("grammar %s is not LL(1): %s", g.Name, c)
				gen.conflicts = append(gen.conflicts, c)
			}
		}
	}
	tracer().Debugf("prediction table has %d entries", table.Size())
	gen.table = table
	return table
}

// Table returns the table created by CreateTable, or nil.
func (gen *TableGenerator) Table() *Table {
	return gen.table
}

// HasConflicts is true if CreateTable had to overwrite entries.
func (gen *TableGenerator) HasConflicts() bool {
	return len(gen.conflicts) > 0
}

// Conflicts returns the conflicts recorded by CreateTable.
func (gen *TableGenerator) Conflicts() []Conflict {
	return gen.conflicts
}
