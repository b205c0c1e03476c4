/*
Mathsym starts an interactive session for evaluating polynomial expressions
and solving equations in one variable.

Usage:

	mathsym [flags] [expression]

Without an expression argument mathsym reads input lines from the terminal. Each
line is either an expression, which is simplified to a polynomial, or an equation
of degree 2 at most, which is solved. Lines starting with a colon are commands:

	:ast <expression>   print the syntax tree of an expression
	:table              print the LL(1) prediction table
	exit                quit (as does <ctrl>D)

The flags are:

	-c, --config     TOML configuration file
	-t, --tokenizer  tokenizer rules file (overrides configuration)
	-g, --grammar    grammar file (overrides configuration)
	-s, --semantics  semantics file (overrides configuration)
	    --strict     reject grammars which are not LL(1)
	    --trace      trace level [Debug|Info|Error]
	    --dump       print grammar analysis and prediction table, then exit
	    --direct     read input from stdin without line editing
	-f, --file       evaluate every line of a file and exit

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/mathsym/config"
	"github.com/npillmayer/mathsym/engine"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
)

// Exit codes. ExitBatchError is returned if an expression given as argument, or
// any line of a file given with --file, fails to evaluate.
const (
	ExitSuccess = iota
	ExitInitError
	ExitBatchError
)

var (
	flagConfig    = pflag.StringP("config", "c", "", "TOML configuration file.")
	flagTokenizer = pflag.StringP("tokenizer", "t", "", "Tokenizer rules file.")
	flagGrammar   = pflag.StringP("grammar", "g", "", "Grammar file.")
	flagSemantics = pflag.StringP("semantics", "s", "", "Semantics file.")
	flagStrict    = pflag.Bool("strict", false, "Reject grammars which are not LL(1).")
	flagTrace     = pflag.String("trace", "Error", "Trace level [Debug|Info|Error].")
	flagDump      = pflag.Bool("dump", false, "Print grammar analysis and prediction table, then exit.")
	flagDirect    = pflag.Bool("direct", false, "Read input from stdin without line editing.")
	flagFile      = pflag.StringP("file", "f", "", "Evaluate every line of a file and exit.")
)

func tracer() tracing.Trace {
	return tracing.Select("mathsym.cli")
}

func main() {
	initDisplay()
	pflag.Parse()
	conf, err := loadConfig()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(ExitInitError)
	}
	initTracing(conf.Trace)
	e, err := engine.New(conf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(ExitInitError)
	}
	for _, c := range e.Conflicts() {
		pterm.Warning.Println(c.String())
	}
	if *flagDump {
		dump(e)
		e.Close()
		os.Exit(ExitSuccess)
	}
	defer e.Close()
	ctx := context.Background()
	if *flagFile != "" {
		code := runFile(ctx, e, *flagFile)
		e.Close()
		os.Exit(code)
	}
	intp := &Intp{engine: e}
	if input := strings.TrimSpace(strings.Join(pflag.Args(), " ")); input != "" {
		if _, err := intp.Eval(ctx, input); err != nil {
			e.Close()
			os.Exit(ExitBatchError)
		}
		return
	}
	if *flagDirect {
		intp.Direct(ctx, os.Stdin)
		return
	}
	if err := intp.REPL(ctx, conf.Prompt); err != nil {
		pterm.Error.Println(err.Error())
		e.Close()
		os.Exit(ExitInitError)
	}
}

// loadConfig reads the configuration file, if any, and applies the command
// line flags on top of it.
func loadConfig() (*config.Config, error) {
	conf := config.Default()
	if *flagConfig != "" {
		var err error
		if conf, err = config.Load(*flagConfig); err != nil {
			return nil, err
		}
	}
	if pflag.Lookup("tokenizer").Changed {
		conf.Tokenizer = *flagTokenizer
	}
	if pflag.Lookup("grammar").Changed {
		conf.Grammar = *flagGrammar
	}
	if pflag.Lookup("semantics").Changed {
		conf.Semantics = *flagSemantics
	}
	if pflag.Lookup("strict").Changed {
		conf.Strict = *flagStrict
	}
	if pflag.Lookup("trace").Changed {
		conf.Trace = *flagTrace
	}
	return conf, conf.Validate()
}

// All packages share a single Go logger based tracer.
func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(level))
	tracer().Infof("trace level is %s", level)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func dump(e *engine.Engine) {
	ga := e.Analysis()
	g := ga.Grammar()
	pterm.Info.Println(fmt.Sprintf("grammar %s, start symbol %s", g.Name, g.Start()))
	for _, p := range g.Productions() {
		fmt.Printf("%3d: %-20s FIRST+ = %s\n", p.Serial, p, ga.FirstPlus(p.Serial))
	}
	for _, A := range g.NonTerminals() {
		fmt.Printf("FIRST(%s) = %s   FOLLOW(%s) = %s\n", A, ga.First(A), A, ga.Follow(A))
	}
	for _, r := range e.Rules() {
		fmt.Printf("token %s\n", r)
	}
	fmt.Println(e.Table().String())
}
