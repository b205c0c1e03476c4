package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/mathsym"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// whitespace is skipped between tokens.
const whitespace = `( |\t|\r|\n)+`

// Tokenizer splits input lines into tokens. A tokenizer is immutable after
// construction and may be shared between goroutines.
type Tokenizer struct {
	rules []Rule
	lexer *lexmachine.Lexer
}

// NewTokenizer compiles a list of rules into a tokenizer.
func NewTokenizer(rules []Rule) (*Tokenizer, error) {
	t := &Tokenizer{rules: rules, lexer: lexmachine.NewLexer()}
	for id, rule := range rules {
		t.lexer.Add([]byte(rule.Pattern), MakeToken(rule.Type, id))
	}
	t.lexer.Add([]byte(whitespace), Skip)
	if err := compile(t.lexer); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, &mathsym.ConfigError{Err: fmt.Errorf("cannot compile tokenizer: %w", err)}
	}
	return t, nil
}

// Rules returns the tokenizer's rules.
func (t *Tokenizer) Rules() []Rule {
	return t.rules
}

// Tokenize splits a line into tokens. The result does not include an EOF token.
//
// If the line contains input no rule matches, Tokenize returns a
// *mathsym.SyntaxError positioned at the offending byte.
func (t *Tokenizer) Tokenize(line string) ([]mathsym.Token, error) {
	s, err := t.lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []mathsym.Token
	for tok, err, eos := s.Next(); !eos; tok, err, eos = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				r, _ := utf8.DecodeRuneInString(line[ui.StartTC:])
				return nil, &mathsym.SyntaxError{
					Input:  line,
					Offset: ui.StartTC,
					Msg:    fmt.Sprintf("invalid character %q", r),
				}
			}
			return nil, &mathsym.SyntaxError{Input: line, Offset: s.TC, Msg: err.Error()}
		}
		token := tok.(*lexmachine.Token)
		tokens = append(tokens, mathsym.Token{
			Type:  t.rules[token.Type].Type,
			Value: string(token.Lexeme),
			Span:  mathsym.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		})
	}
	tracer().Debugf("tokens = %v", tokens)
	return tokens, nil
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
// The token's type is the rule's index.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
