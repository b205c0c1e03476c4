package ll1

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/mathsym"
)

// Codes of semantics file entries.
const (
	SemUnaryLeftOperator = 0 // 0 <production> <rhs-position>
	SemUnusedTerminal    = 1 // 1 <terminal>
	SemLeftAssociative   = 2 // 2 <terminal> <level>
)

type rhsPosition struct {
	production, position int
}

// Semantics holds annotations which guide the conversion of parse trees to ASTs:
//
// ▪︎ unary left operators: a terminal at a given RHS position of a production is a
// prefix operator applying to the symbols to its right
//
// ▪︎ unused terminals: terminals dropped from the tree, e.g. parentheses
//
// ▪︎ left-associative operators: binary operators which group to the left; operators
// of equal level re-associate among each other
type Semantics struct {
	unary     map[rhsPosition]bool
	unused    map[string]bool
	leftAssoc map[string]int
}

// NewSemantics creates an empty set of annotations.
func NewSemantics() *Semantics {
	return &Semantics{
		unary:     make(map[rhsPosition]bool),
		unused:    make(map[string]bool),
		leftAssoc: make(map[string]int),
	}
}

// SetUnaryLeft marks position pos of production prod as a unary left operator.
func (sem *Semantics) SetUnaryLeft(prod, pos int) *Semantics {
	sem.unary[rhsPosition{prod, pos}] = true
	return sem
}

// SetUnused marks a terminal as unused.
func (sem *Semantics) SetUnused(terminal string) *Semantics {
	sem.unused[terminal] = true
	return sem
}

// SetLeftAssociative marks a binary operator as left-associative at a precedence level.
func (sem *Semantics) SetLeftAssociative(op string, level int) *Semantics {
	sem.leftAssoc[op] = level
	return sem
}

// IsUnaryLeft checks if the symbol at position pos of production prod is a unary
// left operator.
func (sem *Semantics) IsUnaryLeft(prod, pos int) bool {
	return sem.unary[rhsPosition{prod, pos}]
}

// IsUnused checks if a terminal is dropped from ASTs.
func (sem *Semantics) IsUnused(terminal string) bool {
	return sem.unused[terminal]
}

// LeftAssociative returns the precedence level of a left-associative operator.
func (sem *Semantics) LeftAssociative(op string) (int, bool) {
	level, ok := sem.leftAssoc[op]
	return level, ok
}

// HasUnused is true if p contains an unused terminal.
func (sem *Semantics) HasUnused(p *Production) bool {
	for _, sym := range p.RHS {
		if sym.IsTerminal() && sem.unused[sym.Name] {
			return true
		}
	}
	return false
}

// Validate checks the annotations against a grammar.
func (sem *Semantics) Validate(g *Grammar) error {
	for k := range sem.unary {
		p := g.Production(k.production)
		if p == nil {
			return fmt.Errorf("unary operator annotation refers to unknown production %d", k.production)
		}
		if k.position < 0 || k.position >= len(p.RHS) || !p.RHS[k.position].IsTerminal() {
			return fmt.Errorf("unary operator annotation: position %d of production %d is not a terminal",
				k.position, k.production)
		}
	}
	for t := range sem.unused {
		if !g.IsTerminal(t) {
			return fmt.Errorf("unused terminal %s is not a terminal of the grammar", t)
		}
	}
	for t := range sem.leftAssoc {
		if !g.IsTerminal(t) {
			return fmt.Errorf("left-associative operator %s is not a terminal of the grammar", t)
		}
	}
	return nil
}

// ReadSemantics reads annotations from r. Every non-comment line starts with a code
// (see SemUnaryLeftOperator etc.) followed by whitespace separated arguments.
// name is used for error messages only.
//
// Errors are of type *mathsym.ConfigError.
func ReadSemantics(name string, r io.Reader) (*Semantics, error) {
	sem := NewSemantics()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		code, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, configError(name, lineno, "semantics code %q is not a number", fields[0])
		}
		args := fields[1:]
		switch code {
		case SemUnaryLeftOperator:
			if len(args) != 2 {
				return nil, configError(name, lineno, "unary operator entry needs production and position")
			}
			prod, err1 := strconv.Atoi(args[0])
			pos, err2 := strconv.Atoi(args[1])
			if err1 != nil || err2 != nil {
				return nil, configError(name, lineno, "unary operator entry needs numeric arguments")
			}
			sem.SetUnaryLeft(prod, pos)
		case SemUnusedTerminal:
			if len(args) != 1 {
				return nil, configError(name, lineno, "unused terminal entry needs exactly one terminal")
			}
			sem.SetUnused(args[0])
		case SemLeftAssociative:
			if len(args) != 2 {
				return nil, configError(name, lineno, "left-associative entry needs operator and level")
			}
			level, err := strconv.Atoi(args[1])
			if err != nil {
				return nil, configError(name, lineno, "level %q is not a number", args[1])
			}
			sem.SetLeftAssociative(args[0], level)
		default:
			return nil, configError(name, lineno, "unknown semantics code %d", code)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &mathsym.ConfigError{File: name, Err: err}
	}
	return sem, nil
}

// ReadSemanticsFile reads annotations from a file. See ReadSemantics.
func ReadSemanticsFile(path string) (*Semantics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &mathsym.ConfigError{File: path, Err: err}
	}
	defer f.Close()
	return ReadSemantics(path, f)
}
