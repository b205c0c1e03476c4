package ll1

import (
	"context"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/mathsym/ll1/ptree"
)

// DefaultBinaryOperators are the token types classified as binary operators, if
// not configured otherwise.
var DefaultBinaryOperators = []string{"+", "-", "*", "/", "=", "^"}

// Parser is a table-driven predictive parser. A parser is immutable after
// construction and may be shared between goroutines.
type Parser struct {
	g      *Grammar
	table  *Table
	sem    *Semantics
	binops map[string]bool
	arenas *ptree.Pool
}

// Option configures a parser.
type Option func(p *Parser)

// WithBinaryOperators sets the token types to classify as binary operators.
func WithBinaryOperators(ops ...string) Option {
	return func(p *Parser) {
		p.binops = make(map[string]bool, len(ops))
		for _, op := range ops {
			p.binops[op] = true
		}
	}
}

// WithArenaPool lets the parser allocate parse trees from pooled arenas.
func WithArenaPool(arenas *ptree.Pool) Option {
	return func(p *Parser) {
		p.arenas = arenas
	}
}

// NewParser creates a parser from a prediction table and semantic annotations.
// sem may be nil.
func NewParser(table *Table, sem *Semantics, opts ...Option) *Parser {
	if sem == nil {
		sem = NewSemantics()
	}
	p := &Parser{
		g:     table.Grammar(),
		table: table,
		sem:   sem,
	}
	WithBinaryOperators(DefaultBinaryOperators...)(p)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Semantics returns the parser's semantic annotations.
func (p *Parser) Semantics() *Semantics {
	return p.sem
}

// stackItem is a grammar symbol waiting to be matched or expanded. parent is the
// tree node to attach the symbol's node to, production and position locate the
// symbol within the production which pushed it.
type stackItem struct {
	sym        Symbol
	parent     int
	production int
	position   int
}

// Parse parses the tokens of an input line and returns the raw parse tree. The
// tree's root is a placeholder node whose single child is the node for the start
// symbol. Nodes for non-terminals are placeholders, nodes for terminals carry
// their token. If tokens do not end with an EOF token, one is appended.
//
// Clients must call Release on the tree when done with it.
//
// Errors are of type *mathsym.SyntaxError, except for context errors.
func (p *Parser) Parse(ctx context.Context, input string, tokens []mathsym.Token) (*ptree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	toks := make([]mathsym.Token, len(tokens), len(tokens)+1)
	copy(toks, tokens)
	if len(toks) == 0 || !toks[len(toks)-1].IsEOF() {
		toks = append(toks, mathsym.EOFToken(uint64(len(input))))
	}
	tree, err := p.newTree(ctx, input, toks)
	if err != nil {
		return nil, err
	}
	arena := tree.Arena
	tree.Root = arena.NewNode(ptree.Empty, "")
	stack := arraystack.New()
	stack.Push(stackItem{sym: EOFSymbol, parent: tree.Root, production: -1})
	stack.Push(stackItem{sym: N(p.g.Start()), parent: tree.Root, production: -1})
	cursor := 0
	for !stack.Empty() {
		x, _ := stack.Pop()
		top := x.(stackItem)
		la := &tree.Tokens[cursor]
		switch top.sym.Kind {
		case EndOfInput:
			if !la.IsEOF() {
				tree.Release()
				return nil, p.syntaxError(input, la, "end of input")
			}
			tracer().Debugf("accept")
		case Terminal:
			if la.Type != top.sym.Name {
				tree.Release()
				return nil, p.syntaxError(input, la, quote(top.sym.Name))
			}
			n := arena.NewNode(p.classify(top), top.sym.Name)
			arena.Node(n).Token = la
			arena.AddChild(top.parent, n)
			tracer().Debugf("match %s", la)
			cursor++
		case NonTerminal:
			prod, ok := p.table.Predict(top.sym.Name, la.Type)
			if !ok {
				tree.Release()
				return nil, p.syntaxError(input, la, p.expected(top.sym.Name))
			}
			tracer().Debugf("expand %s on %s", prod, la)
			n := arena.NewNode(ptree.Empty, top.sym.Name)
			arena.Node(n).Grouped = p.sem.HasUnused(prod)
			arena.AddChild(top.parent, n)
			for i := len(prod.RHS) - 1; i >= 0; i-- {
				if prod.RHS[i].Kind == Epsilon {
					continue
				}
				stack.Push(stackItem{
					sym:        prod.RHS[i],
					parent:     n,
					production: prod.Serial,
					position:   i,
				})
			}
		}
	}
	return tree, nil
}

// classify determines the node kind for a terminal.
func (p *Parser) classify(item stackItem) ptree.Kind {
	if p.sem.IsUnaryLeft(item.production, item.position) {
		return ptree.UnaryLeftOperator
	}
	if p.binops[item.sym.Name] {
		return ptree.BinaryOperator
	}
	return ptree.Operand
}

func (p *Parser) newTree(ctx context.Context, input string, toks []mathsym.Token) (*ptree.Tree, error) {
	if p.arenas == nil {
		return ptree.NewTree(ptree.NewArena(4*len(toks)), input, toks, nil), nil
	}
	arena, err := p.arenas.Borrow(ctx)
	if err != nil {
		return nil, err
	}
	release := func(a *ptree.Arena) {
		p.arenas.Return(context.Background(), a)
	}
	return ptree.NewTree(arena, input, toks, release), nil
}

func (p *Parser) expected(A string) string {
	la := p.table.Expected(A)
	for i := range la {
		if la[i] != "end of input" {
			la[i] = quote(la[i])
		}
	}
	return strings.Join(la, ", ")
}

func (p *Parser) syntaxError(input string, la *mathsym.Token, expected string) error {
	found := "end of input"
	if !la.IsEOF() {
		found = quote(la.Value)
	}
	msg := fmt.Sprintf("unexpected %s", found)
	if expected != "" {
		msg += ", expected " + expected
	}
	return &mathsym.SyntaxError{
		Input:  input,
		Offset: int(la.Span.From()),
		Msg:    msg,
	}
}

func quote(s string) string {
	return "'" + s + "'"
}
