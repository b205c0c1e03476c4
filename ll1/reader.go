package ll1

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/mathsym"
)

// EpsilonMarker denotes ε in grammar files.
const EpsilonMarker = "^e$"

const arrow = "->"

type rawRule struct {
	line int
	lhs  string
	rhs  []string
}

// ReadGrammar reads a grammar from r, one production per line. Blank lines and
// lines starting with '#' are ignored. A production is written as
//
//     LHS -> sym₁ sym₂ …
//
// with whitespace separated symbols. Blanks around the arrow are optional. A symbol is a non-terminal if it appears as
// the LHS of some production, a terminal otherwise. name is used for error
// messages only.
//
// Errors are of type *mathsym.ConfigError.
func ReadGrammar(name string, r io.Reader) (*Grammar, error) {
	var rules []rawRule
	lhsNames := make(map[string]bool)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k := strings.Index(line, arrow)
		if k < 0 {
			return nil, configError(name, lineno, "expected production of form 'LHS -> RHS'")
		}
		lhs := strings.TrimSpace(line[:k])
		if lhs == "" || strings.ContainsAny(lhs, " \t") {
			return nil, configError(name, lineno, "left-hand side must be a single symbol")
		}
		if lhs == EpsilonMarker {
			return nil, configError(name, lineno, "epsilon cannot be a left-hand side")
		}
		rhs := strings.Fields(line[k+len(arrow):])
		if len(rhs) == 0 {
			return nil, configError(name, lineno, "empty right-hand side, use "+EpsilonMarker+" for epsilon")
		}
		for _, f := range rhs {
			if strings.Contains(f, arrow) {
				return nil, configError(name, lineno, "more than one '->' in production")
			}
		}
		rules = append(rules, rawRule{line: lineno, lhs: lhs, rhs: rhs})
		lhsNames[lhs] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, &mathsym.ConfigError{File: name, Err: err}
	}
	if len(rules) == 0 {
		return nil, configError(name, lineno, "grammar has no productions")
	}
	b := NewGrammarBuilder(name)
	for _, rule := range rules {
		rb := b.LHS(rule.lhs)
		for _, sym := range rule.rhs {
			switch {
			case sym == EpsilonMarker:
				rb.Symbol(EpsilonSymbol)
			case lhsNames[sym]:
				rb.N(sym)
			default:
				rb.T(sym)
			}
		}
		rb.End()
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, &mathsym.ConfigError{File: name, Err: err}
	}
	tracer().Infof("read grammar %s with %d productions", name, g.Size())
	return g, nil
}

// ReadGrammarFile reads a grammar from a file. See ReadGrammar.
func ReadGrammarFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &mathsym.ConfigError{File: path, Err: err}
	}
	defer f.Close()
	return ReadGrammar(path, f)
}

func configError(name string, line int, msg string, args ...interface{}) error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &mathsym.ConfigError{File: name, Line: line, Err: errors.New(msg)}
}
