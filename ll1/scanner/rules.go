package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/mathsym"
	"github.com/timtadh/lexmachine"
)

// Rule pairs a token type with a regular expression in lexmachine syntax.
type Rule struct {
	Type    string
	Pattern string
}

func (r Rule) String() string {
	return r.Type + ":" + r.Pattern
}

// ReadRules reads tokenizer rules from r. name is used for error messages only.
//
// Errors are of type *mathsym.ConfigError.
func ReadRules(name string, r io.Reader) ([]Rule, error) {
	var rules []Rule
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.Join(strings.Fields(scanner.Text()), "")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			return nil, ruleError(name, lineno, "missing ':' between token type and pattern")
		}
		rule := Rule{Type: line[:colon], Pattern: line[colon+1:]}
		if rule.Type == "" || rule.Pattern == "" {
			return nil, ruleError(name, lineno, "token type and pattern must not be empty")
		}
		if err := rule.check(); err != nil {
			return nil, &mathsym.ConfigError{File: name, Line: lineno,
				Err: fmt.Errorf("invalid pattern for %s: %w", rule.Type, err)}
		}
		rules = append(rules, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, &mathsym.ConfigError{File: name, Err: err}
	}
	if len(rules) == 0 {
		return nil, ruleError(name, lineno, "no tokenizer rules")
	}
	tracer().Debugf("read %d tokenizer rules from %s", len(rules), name)
	return rules, nil
}

// ReadRulesFile reads tokenizer rules from a file. See ReadRules.
func ReadRulesFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &mathsym.ConfigError{File: path, Err: err}
	}
	defer f.Close()
	return ReadRules(path, f)
}

// check compiles the rule's pattern in isolation, to be able to report
// malformed patterns together with their line.
func (r Rule) check() error {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(r.Pattern), Skip)
	return compile(lexer)
}

// compile compiles a lexer's DFA. lexmachine panics on some malformed patterns,
// e.g. unbalanced '(' or '['; these are reported as errors.
func compile(lexer *lexmachine.Lexer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pattern: %v", r)
		}
	}()
	return lexer.Compile()
}

func ruleError(name string, line int, msg string) error {
	return &mathsym.ConfigError{File: name, Line: line, Err: errors.New(msg)}
}
