package mathsym

import "fmt"

// --- Tokens ----------------------------------------------------------------

// EOFType is the token type of the end-of-input token. Tokenizers never produce it,
// parsers append it to the token stream themselves.
const EOFType = "#eof"

// Token represents an input token. Tokens are usually produced by a scanner and
// reflect terminals in a grammar. Token types are plain strings and have to match the
// terminal names of the grammar in use.
//
// An example would be a token for a floating point number:
//
//    Type  = "num"        // name of the terminal this token matches
//    Value = "3.1416"     // lexeme how it appeared in the input
//    Span  = 67…73        // occured from position 67 in the input
//
type Token struct {
	Type  string
	Value string
	Span  Span
}

// EOFToken returns an end-of-input token positioned at pos.
func EOFToken(pos uint64) Token {
	return Token{Type: EOFType, Span: Span{pos, pos}}
}

// IsEOF is true for end-of-input tokens.
func (t Token) IsEOF() bool {
	return t.Type == EOFType
}

func (t Token) String() string {
	if t.IsEOF() {
		return "<EOF>"
	}
	return fmt.Sprintf("(%s,%q)", t.Type, t.Value)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a start
// position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span, e.g. for tokens not taken from an input line.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. Null spans are
// ignored.
func (s Span) Extend(other Span) Span {
	switch {
	case other.IsNull():
		return s
	case s.IsNull():
		return other
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
