package mathsym

import (
	"fmt"
	"strings"
)

// ConfigError is returned for configuration files which cannot be opened or
// are malformed. Configuration errors are fatal to initialization.
type ConfigError struct {
	File string // name of the configuration file, may be empty
	Line int    // 1-based line number, 0 if not applicable
	Err  error
}

func (e *ConfigError) Error() string {
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	case e.File != "":
		return fmt.Sprintf("%s: %v", e.File, e.Err)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SyntaxError is returned for input lines which cannot be tokenized or parsed.
// It carries the offending line and the byte offset of the failure.
type SyntaxError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Msg, e.Offset)
}

// Caret returns the input line followed by a second line marking the offset of
// the failure.
func (e *SyntaxError) Caret() string {
	offset := e.Offset
	if offset < 0 {
		offset = 0
	}
	return e.Input + "\n" + strings.Repeat(" ", offset) + "^"
}

// StructuralError signals an inconsistent pairing of grammar and semantic
// annotations, detected while converting a parse tree to an AST. It is not caused
// by user input.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return "invalid parse tree construction: " + e.Msg
}
