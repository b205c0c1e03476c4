/*
Package engine wires tokenizer, parser, AST builder and evaluator into a
pipeline evaluating input lines.

An engine is built once from a configuration. All of its parts are read-only
after construction, so a single engine may evaluate lines concurrently. Parse
trees are allocated from pooled arenas and released as soon as their AST has
been built.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/mathsym/config"
	"github.com/npillmayer/mathsym/ll1"
	"github.com/npillmayer/mathsym/ll1/ptree"
	"github.com/npillmayer/mathsym/ll1/scanner"
	"github.com/npillmayer/mathsym/poly"
	"github.com/npillmayer/mathsym/termr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathsym.engine'.
func tracer() tracing.Trace {
	return tracing.Select("mathsym.engine")
}

// Engine evaluates input lines.
type Engine struct {
	conf      *config.Config
	tokenizer *scanner.Tokenizer
	analysis  *ll1.Analysis
	table     *ll1.Table
	conflicts []ll1.Conflict
	parser    *ll1.Parser
	builder   *termr.ASTBuilder
	evaluator *poly.Evaluator
	arenas    *ptree.Pool
}

// New creates an engine from a configuration. It reads tokenizer rules, grammar
// and semantics, analyses the grammar and builds the prediction table. With
// conf.Strict set, grammars which are not LL(1) are rejected.
//
// Errors are of type *mathsym.ConfigError.
func New(conf *config.Config) (*Engine, error) {
	if conf == nil {
		conf = config.Default()
	}
	if err := conf.Validate(); err != nil {
		return nil, &mathsym.ConfigError{Err: err}
	}
	e := &Engine{conf: conf}
	rules, err := readConfig(conf.Tokenizer, config.DefaultTokenizer, scanner.ReadRulesFile, scanner.ReadRules)
	if err != nil {
		return nil, err
	}
	if e.tokenizer, err = scanner.NewTokenizer(rules); err != nil {
		return nil, err
	}
	g, err := readConfig(conf.Grammar, config.DefaultGrammar, ll1.ReadGrammarFile, ll1.ReadGrammar)
	if err != nil {
		return nil, err
	}
	sem, err := readConfig(conf.Semantics, config.DefaultSemantics, ll1.ReadSemanticsFile, ll1.ReadSemantics)
	if err != nil {
		return nil, err
	}
	if err := sem.Validate(g); err != nil {
		return nil, &mathsym.ConfigError{File: fileName(conf.Semantics, config.DefaultSemantics), Err: err}
	}
	e.analysis = ll1.Analyse(g)
	gen := ll1.NewTableGenerator(e.analysis)
	e.table = gen.CreateTable()
	e.conflicts = gen.Conflicts()
	if gen.HasConflicts() {
		if conf.Strict {
			return nil, &mathsym.ConfigError{File: fileName(conf.Grammar, config.DefaultGrammar),
				Err: fmt.Errorf("grammar is not LL(1): %v", gen.Conflicts()[0])}
		}
		tracer().Infof("grammar %s has %d LL(1) conflicts, later productions win",
			g.Name, len(gen.Conflicts()))
	}
	e.arenas = ptree.NewPool(context.Background(), ptree.DefaultArenaCapacity)
	e.parser = ll1.NewParser(e.table, sem, ll1.WithArenaPool(e.arenas))
	e.builder = termr.NewASTBuilder(sem)
	e.evaluator = poly.NewEvaluator(conf.Variable)
	tracer().Infof("engine ready, table fingerprint %s", e.table.Fingerprint())
	return e, nil
}

// readConfig reads a configuration file with readFile, or the embedded default
// file with read if no path is configured.
func readConfig[T any](path, deflt string, readFile func(string) (T, error),
	read func(string, io.Reader) (T, error)) (T, error) {
	//
	if path != "" {
		return readFile(path)
	}
	var zero T
	name, r, err := config.OpenDefault(deflt)
	if err != nil {
		return zero, err
	}
	defer r.Close()
	return read(name, r)
}

func fileName(path, deflt string) string {
	if path == "" {
		return "(embedded) " + deflt
	}
	return path
}

// Config returns the engine's configuration.
func (e *Engine) Config() *config.Config {
	return e.conf
}

// Rules returns the tokenizer rules in effect.
func (e *Engine) Rules() []scanner.Rule {
	return e.tokenizer.Rules()
}

// Analysis returns the grammar analysis.
func (e *Engine) Analysis() *ll1.Analysis {
	return e.analysis
}

// Table returns the prediction table.
func (e *Engine) Table() *ll1.Table {
	return e.table
}

// Conflicts returns the LL(1) conflicts found while building the table.
func (e *Engine) Conflicts() []ll1.Conflict {
	return e.conflicts
}

// AST tokenizes and parses a line and returns its AST.
//
// Errors are of type *mathsym.SyntaxError or *mathsym.StructuralError.
func (e *Engine) AST(ctx context.Context, line string) (*termr.Node, error) {
	tokens, err := e.tokenizer.Tokenize(line)
	if err != nil {
		return nil, err
	}
	tree, err := e.parser.Parse(ctx, line, tokens)
	if err != nil {
		return nil, err
	}
	defer tree.Release()
	return e.builder.AST(tree)
}

// Eval evaluates a line.
//
// Errors are of type *mathsym.SyntaxError, *mathsym.StructuralError or
// *poly.EvalError.
func (e *Engine) Eval(ctx context.Context, line string) (poly.Result, error) {
	ast, err := e.AST(ctx, line)
	if err != nil {
		return poly.Result{}, err
	}
	return e.evaluator.Eval(ast)
}

// IsBlank is true for lines without input. Blank lines are not evaluated.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Close releases the engine's arena pool.
func (e *Engine) Close() {
	e.arenas.Close(context.Background())
}
