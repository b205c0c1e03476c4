package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/mathsym/engine"
	"github.com/npillmayer/mathsym/poly"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object.
type Intp struct {
	engine *engine.Engine
}

// REPL starts interactive mode.
func (intp *Intp) REPL(ctx context.Context, prompt string) error {
	repl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer repl.Close()
	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if quit, _ := intp.Eval(ctx, line); quit {
			break
		}
	}
	println("Good bye!")
	return nil
}

// Direct reads input lines from r without line editing, until end of input.
func (intp *Intp) Direct(ctx context.Context, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if quit, _ := intp.Eval(ctx, scanner.Text()); quit {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		pterm.Error.Println(err.Error())
	}
}

// Eval executes a single input line, which may be a command. It returns true if
// the session should end. Errors have already been printed and are returned
// for the caller to decide on an exit code.
func (intp *Intp) Eval(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false, nil
	case line == "exit":
		return true, nil
	case line == ":table":
		pterm.Println(intp.engine.Table().String())
		return false, nil
	case strings.HasPrefix(line, ":ast"):
		return false, intp.printAST(ctx, strings.TrimSpace(strings.TrimPrefix(line, ":ast")))
	case strings.HasPrefix(line, ":"):
		err := fmt.Errorf("unknown command %s", strings.Fields(line)[0])
		pterm.Error.Println(err.Error())
		return false, err
	}
	result, err := intp.engine.Eval(ctx, line)
	if err != nil {
		printError(line, err)
		return false, err
	}
	pterm.Info.Println(result.String())
	return false, nil
}

func (intp *Intp) printAST(ctx context.Context, input string) error {
	ast, err := intp.engine.AST(ctx, input)
	if err != nil {
		printError(input, err)
		return err
	}
	pterm.DefaultTree.WithRoot(ast.TreeNode()).Render()
	return nil
}

// printError prints an error. Syntax errors show the input with a caret
// marking the error position, evaluation errors underline the failing
// sub-expression.
func printError(input string, err error) {
	pterm.Error.Println(err.Error())
	var syntaxErr *mathsym.SyntaxError
	var evalErr *poly.EvalError
	switch {
	case errors.As(err, &syntaxErr):
		pterm.Println(syntaxErr.Caret())
	case errors.As(err, &evalErr) && !evalErr.Span.IsNull():
		pterm.Println(underline(input, evalErr.Span))
	}
}

// underline returns the input line followed by a line marking span.
func underline(input string, span mathsym.Span) string {
	from, to := int(span.From()), int(span.To())
	if to > len(input) {
		to = len(input)
	}
	if from >= to {
		return input
	}
	return input + "\n" + strings.Repeat(" ", from) + strings.Repeat("^", to-from)
}

// runFile evaluates every line of a file as an independent input.
func runFile(ctx context.Context, e *engine.Engine, path string) int {
	f, err := os.Open(path)
	if err != nil {
		pterm.Error.Println(err.Error())
		return ExitInitError
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		pterm.Error.Println(err.Error())
		return ExitInitError
	}
	code := ExitSuccess
	for _, r := range e.EvalLines(ctx, lines) {
		switch {
		case r.Skipped():
		case r.Err != nil:
			pterm.Error.Println(fmt.Sprintf("line %d: %v", r.Line, r.Err))
			code = ExitBatchError
		default:
			pterm.Info.Println(fmt.Sprintf("line %d: %s", r.Line, r.Result))
		}
	}
	return code
}
