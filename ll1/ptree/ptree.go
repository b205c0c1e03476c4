package ptree

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/mathsym"
)

// Kind is the kind of a tree node.
type Kind int8

// Node kinds. Nodes for non-terminals are placeholders of kind Empty.
const (
	Empty Kind = iota
	BinaryOperator
	UnaryLeftOperator
	Operand
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case BinaryOperator:
		return "binop"
	case UnaryLeftOperator:
		return "unop"
	case Operand:
		return "operand"
	}
	return "?"
}

// NoNode is the index of a missing node, e.g. the parent of a root.
const NoNode = -1

// Node is a parse tree node. Children and Parent are arena indices.
type Node struct {
	Kind     Kind
	Token    *mathsym.Token // nil for placeholders
	Symbol   string         // grammar symbol the node was created for
	Children []int
	Parent   int
	Grouped  bool // expanded by a production with unused terminals
}

// IsLeaf is true for nodes without children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// --- Arena -----------------------------------------------------------------

// Arena allocates tree nodes. A node pointer returned by Node is valid until the
// next call to NewNode.
type Arena struct {
	nodes []Node
}

// NewArena creates an arena with room for capacity nodes.
func NewArena(capacity int) *Arena {
	return &Arena{nodes: make([]Node, 0, capacity)}
}

// NewNode allocates a node and returns its index. Child slices of earlier
// generations are re-used.
func (a *Arena) NewNode(kind Kind, symbol string) int {
	i := len(a.nodes)
	if i < cap(a.nodes) {
		a.nodes = a.nodes[:i+1]
		children := a.nodes[i].Children[:0]
		a.nodes[i] = Node{Kind: kind, Symbol: symbol, Children: children, Parent: NoNode}
	} else {
		a.nodes = append(a.nodes, Node{Kind: kind, Symbol: symbol, Parent: NoNode})
	}
	return i
}

// Node returns the node at index i.
func (a *Arena) Node(i int) *Node {
	return &a.nodes[i]
}

// Len returns the number of allocated nodes.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// AddChild appends child to the children of parent.
func (a *Arena) AddChild(parent, child int) {
	a.nodes[parent].Children = append(a.nodes[parent].Children, child)
	a.nodes[child].Parent = parent
}

// Reset releases all nodes.
func (a *Arena) Reset() {
	a.nodes = a.nodes[:0]
}

// --- Trees -----------------------------------------------------------------

// Tree is a parse tree for an input line. Its nodes are owned by an arena.
type Tree struct {
	Arena   *Arena
	Root    int
	Input   string
	Tokens  []mathsym.Token
	release func(*Arena)
}

// NewTree creates a tree for an input line on top of an arena. If release is
// non-nil, it will be called with the arena on Release.
func NewTree(arena *Arena, input string, tokens []mathsym.Token, release func(*Arena)) *Tree {
	return &Tree{
		Arena:   arena,
		Root:    NoNode,
		Input:   input,
		Tokens:  tokens,
		release: release,
	}
}

// Node returns the node at index i.
func (t *Tree) Node(i int) *Node {
	return t.Arena.Node(i)
}

// Release hands the tree's arena back. The tree must not be used afterwards.
func (t *Tree) Release() {
	if t.Arena == nil {
		return
	}
	if t.release != nil {
		t.release(t.Arena)
	}
	t.Arena = nil
	t.Root = NoNode
}

// ListString returns the tree as an S-expression. Placeholders are printed with
// their grammar symbol.
func (t *Tree) ListString() string {
	if t.Arena == nil || t.Root == NoNode {
		return "()"
	}
	var b bytes.Buffer
	t.list(&b, t.Root)
	return b.String()
}

func (t *Tree) list(b *bytes.Buffer, i int) {
	n := t.Node(i)
	label := n.Symbol
	if n.Token != nil {
		label = n.Token.Value
	}
	if n.IsLeaf() {
		b.WriteString(label)
		return
	}
	b.WriteString(fmt.Sprintf("(%s", label))
	for _, ch := range n.Children {
		b.WriteByte(' ')
		t.list(b, ch)
	}
	b.WriteByte(')')
}
