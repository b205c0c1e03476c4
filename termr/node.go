package termr

import (
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/mathsym/ll1/ptree"
	"github.com/pterm/pterm"
)

// Node is a node of an AST. Operators are inner nodes, operands are leaves.
type Node struct {
	Kind     ptree.Kind
	Token    *mathsym.Token
	Children []*Node
	grouped  bool
}

// freeze copies the tree rooted at arena node i.
func freeze(a *ptree.Arena, i int) *Node {
	n := a.Node(i)
	node := &Node{Kind: n.Kind, grouped: n.Grouped}
	if n.Token != nil {
		tok := *n.Token
		node.Token = &tok
	}
	if len(n.Children) > 0 {
		node.Children = make([]*Node, len(n.Children))
		for k, ch := range n.Children {
			node.Children[k] = freeze(a, ch)
		}
	}
	return node
}

// IsLeaf is true for nodes without children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Type returns the token type of n, or "" for placeholders.
func (n *Node) Type() string {
	if n.Token == nil {
		return ""
	}
	return n.Token.Type
}

// Label returns the token's lexeme, or "·" for placeholders.
func (n *Node) Label() string {
	if n.Token == nil {
		return "·"
	}
	return n.Token.Value
}

// Span returns the run of input covered by the subtree rooted at n.
func (n *Node) Span() mathsym.Span {
	var span mathsym.Span
	if n == nil {
		return span
	}
	if n.Token != nil {
		span = n.Token.Span
	}
	for _, ch := range n.Children {
		span = span.Extend(ch.Span())
	}
	return span
}

// String returns the tree as an S-expression, e.g. "(+ (* 2 x) 3)".
func (n *Node) String() string {
	if n == nil {
		return "()"
	}
	var b strings.Builder
	n.list(&b)
	return b.String()
}

func (n *Node) list(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(n.Label())
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Label())
	for _, ch := range n.Children {
		b.WriteByte(' ')
		ch.list(b)
	}
	b.WriteByte(')')
}

// Fingerprint returns a hash over the structure and tokens of the tree.
func (n *Node) Fingerprint() string {
	h, err := structhash.Hash(n, 1)
	if err != nil {
		tracer().Errorf("cannot hash AST: %v", err)
		return ""
	}
	return h
}

// TreeNode converts the AST to a pterm tree, ready to be rendered with
// pterm.DefaultTree.
func (n *Node) TreeNode() pterm.TreeNode {
	ll := n.leveled(pterm.LeveledList{}, 0)
	return pterm.NewTreeFromLeveledList(ll)
}

func (n *Node) leveled(ll pterm.LeveledList, level int) pterm.LeveledList {
	text := n.Label()
	if !n.IsLeaf() {
		text += "  [" + n.Kind.String() + "]"
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	for _, ch := range n.Children {
		ll = ch.leveled(ll, level+1)
	}
	return ll
}
