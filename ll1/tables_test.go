package ll1

import (
	"strings"
	"testing"

	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPredictionTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.ll1")
	defer teardown()
	//
	gen := NewTableGenerator(Analyse(readExprGrammar(t)))
	table := gen.CreateTable()
	t.Logf("\n%s", table)
	if gen.HasConflicts() {
		t.Errorf("expression grammar should be LL(1), has conflicts: %v", gen.Conflicts())
	}
	predictions := []struct {
		A, a string
		prod int
	}{
		{"E", "(", 0}, {"E", "id", 0},
		{"E'", "+", 1}, {"E'", ")", 2}, {"E'", mathsym.EOFType, 2},
		{"T", "(", 3}, {"T", "id", 3},
		{"T'", "*", 4}, {"T'", "+", 5}, {"T'", ")", 5}, {"T'", mathsym.EOFType, 5},
		{"F", "(", 6}, {"F", "id", 7},
	}
	for _, pred := range predictions {
		p, ok := table.Predict(pred.A, pred.a)
		if !ok {
			t.Errorf("expected entry for [%s, %s]", pred.A, pred.a)
			continue
		}
		if p.Serial != pred.prod {
			t.Errorf("expected [%s, %s] to predict %d, predicts %d", pred.A, pred.a, pred.prod, p.Serial)
		}
	}
	if table.Size() != len(predictions) {
		t.Errorf("expected table to have %d entries, has %d", len(predictions), table.Size())
	}
	if _, ok := table.Predict("E", "+"); ok {
		t.Errorf("expected no entry for [E, +]")
	}
	if _, ok := table.Predict("E", "unknown"); ok {
		t.Errorf("expected no entry for unknown lookahead")
	}
}

func TestTableConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.ll1")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a").End()
	b.LHS("S").T("a").T("b").End()
	g, _ := b.Grammar()
	gen := NewTableGenerator(Analyse(g))
	table := gen.CreateTable()
	if !gen.HasConflicts() {
		t.Fatalf("expected conflict for common prefix")
	}
	c := gen.Conflicts()[0]
	if c.NonTerminal != "S" || c.Lookahead != T("a") || c.Loser != 0 || c.Winner != 1 {
		t.Errorf("unexpected conflict: %v", c)
	}
	if p, _ := table.Predict("S", "a"); p.Serial != 1 {
		t.Errorf("expected later production to win, got %d", p.Serial)
	}
}

func TestTableFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.ll1")
	defer teardown()
	//
	t1 := NewTableGenerator(Analyse(readExprGrammar(t))).CreateTable()
	t2 := NewTableGenerator(Analyse(readExprGrammar(t))).CreateTable()
	if t1.Fingerprint() == "" || t1.Fingerprint() != t2.Fingerprint() {
		t.Errorf("expected equal fingerprints for equal grammars")
	}
	other, _ := ReadGrammar("other", strings.NewReader("S -> a S\nS -> ^e$"))
	t3 := NewTableGenerator(Analyse(other)).CreateTable()
	if t3.Fingerprint() == t1.Fingerprint() {
		t.Errorf("expected different fingerprints for different grammars")
	}
}

func TestTableString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.ll1")
	defer teardown()
	//
	table := NewTableGenerator(Analyse(readExprGrammar(t))).CreateTable()
	s := table.String()
	for _, col := range []string{"id", "#eof", "E'"} {
		if !strings.Contains(s, col) {
			t.Errorf("expected table dump to contain %q", col)
		}
	}
}
