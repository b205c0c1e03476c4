package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/mathsym/config"
	"github.com/npillmayer/mathsym/poly"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultEngine(t *testing.T) *Engine {
	e, err := New(config.Default())
	require.NoError(t, err)
	t.Cleanup(e.Close)
	return e
}

func TestEvalDefaultConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.engine")
	defer teardown()
	//
	e := defaultEngine(t)
	for _, c := range []struct{ input, result string }{
		{"2*x+3=7", "x = 2"},
		{"(x+1)*(x-1)", "ans = x^2 - 1"},
		{"6/3", "ans = 2"},
		{"1-2-3", "ans = -4"},
		{"8/4/2", "ans = 1"},
		{"x^2-1=0", "x = 1 or x = -1"},
		{"x^2+1=0", "No solutions"},
		{"0=1", "No solutions"},
		{"0=0", "Infinitely many solutions"},
		{"x = x", "Infinitely many solutions"},
		{"-x", "ans = -x"},
		{"- x ^ 2", "ans = -x^2"},
		{"(x+1)^2", "ans = x^2 + 2x + 1"},
	} {
		r, err := e.Eval(context.Background(), c.input)
		if assert.NoError(t, err, c.input) {
			assert.Equal(t, c.result, r.String(), c.input)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.engine")
	defer teardown()
	//
	e := defaultEngine(t)
	for _, c := range []struct {
		input string
		err   error
	}{
		{"x/0", poly.ErrDivisionByZero},
		{"1/(x+1)", poly.ErrUnsupportedDivision},
		{"x^3=0", poly.ErrUnsupportedEquationDegree},
	} {
		_, err := e.Eval(context.Background(), c.input)
		assert.True(t, errors.Is(err, c.err), "%s: expected %v, got %v", c.input, c.err, err)
		var evalErr *poly.EvalError
		assert.True(t, errors.As(err, &evalErr), c.input)
	}
}

func TestEvalErrorLocation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.engine")
	defer teardown()
	//
	e := defaultEngine(t)
	_, err := e.Eval(context.Background(), "1 + x/0")
	var evalErr *poly.EvalError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "/", evalErr.Op)
	assert.Equal(t, mathsym.Span{4, 7}, evalErr.Span)
}

func TestSyntaxError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.engine")
	defer teardown()
	//
	e := defaultEngine(t)
	_, err := e.Eval(context.Background(), "2+*3")
	var syntaxErr *mathsym.SyntaxError
	require.True(t, errors.As(err, &syntaxErr), "expected syntax error, got %v", err)
	assert.Equal(t, 2, syntaxErr.Offset)
	assert.Equal(t, "2+*3\n  ^", syntaxErr.Caret())
	//
	_, err = e.Eval(context.Background(), "2 $ 3")
	require.True(t, errors.As(err, &syntaxErr), "expected syntax error, got %v", err)
	assert.Equal(t, 2, syntaxErr.Offset)
}

func TestAST(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.engine")
	defer teardown()
	//
	e := defaultEngine(t)
	ast, err := e.AST(context.Background(), "2*x+3=7")
	require.NoError(t, err)
	assert.Equal(t, "(= (+ (* 2 x) 3) 7)", ast.String())
	assert.False(t, e.Table().Grammar() == nil)
	assert.Empty(t, e.Conflicts())
	assert.NotNil(t, e.Analysis().First("S"))
}

func TestEvalLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.engine")
	defer teardown()
	//
	conf := config.Default()
	conf.Workers = 3
	e, err := New(conf)
	require.NoError(t, err)
	defer e.Close()
	lines := []string{"1+1", "", "x/0", "2*x=4", "(x", "x*x", "  ", "3"}
	results := e.EvalLines(context.Background(), lines)
	require.Len(t, results, len(lines))
	for i, r := range results {
		assert.Equal(t, i+1, r.Line)
		assert.Equal(t, lines[i], r.Input)
	}
	assert.Equal(t, "ans = 2", results[0].Result.String())
	assert.True(t, results[1].Skipped())
	assert.NoError(t, results[1].Err)
	assert.ErrorIs(t, results[2].Err, poly.ErrDivisionByZero)
	assert.Equal(t, "x = 2", results[3].Result.String())
	var syntaxErr *mathsym.SyntaxError
	assert.ErrorAs(t, results[4].Err, &syntaxErr)
	assert.Equal(t, "ans = x^2", results[5].Result.String())
	assert.True(t, results[6].Skipped())
	assert.Equal(t, "ans = 3", results[7].Result.String())
}

func TestEvalLinesCanceled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.engine")
	defer teardown()
	//
	e := defaultEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := e.EvalLines(ctx, []string{"1", "2"})
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestStrictRejectsConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.engine")
	defer teardown()
	//
	dir := t.TempDir()
	conf := config.Default()
	conf.Grammar = filepath.Join(dir, "grammar.txt")
	conf.Semantics = filepath.Join(dir, "semantics.txt")
	require.NoError(t, os.WriteFile(conf.Grammar, []byte("S -> x\nS -> x + x\n"), 0644))
	require.NoError(t, os.WriteFile(conf.Semantics, []byte("# none\n"), 0644))
	//
	e, err := New(conf)
	require.NoError(t, err)
	assert.Len(t, e.Conflicts(), 1)
	e.Close()
	//
	conf.Strict = true
	_, err = New(conf)
	var confErr *mathsym.ConfigError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, conf.Grammar, confErr.File)
}

func TestSemanticsMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.engine")
	defer teardown()
	//
	dir := t.TempDir()
	conf := config.Default()
	conf.Semantics = filepath.Join(dir, "semantics.txt")
	require.NoError(t, os.WriteFile(conf.Semantics, []byte("0 42 0\n"), 0644))
	_, err := New(conf)
	var confErr *mathsym.ConfigError
	require.ErrorAs(t, err, &confErr)
}

func TestConfiguredFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mathsym.engine")
	defer teardown()
	//
	dir := t.TempDir()
	conf := config.Default()
	conf.Tokenizer = filepath.Join(dir, "tokenizer.txt")
	conf.Grammar = filepath.Join(dir, "grammar.txt")
	conf.Semantics = filepath.Join(dir, "semantics.txt")
	require.NoError(t, os.WriteFile(conf.Tokenizer, []byte("num:[0-9]+\n+:\\+\n"), 0644))
	require.NoError(t, os.WriteFile(conf.Grammar, []byte("S->num T\nT->+ num T\nT->^e$\n"), 0644))
	require.NoError(t, os.WriteFile(conf.Semantics, []byte("2 + 1\n"), 0644))
	e, err := New(conf)
	require.NoError(t, err)
	defer e.Close()
	assert.Len(t, e.Rules(), 2)
	r, err := e.Eval(context.Background(), "1 + 2 + 3")
	require.NoError(t, err)
	assert.Equal(t, "ans = 6", r.String())
	//
	conf.Grammar = filepath.Join(dir, "missing.txt")
	_, err = New(conf)
	var confErr *mathsym.ConfigError
	require.ErrorAs(t, err, &confErr)
	assert.Equal(t, conf.Grammar, confErr.File)
}
