package termr

import (
	"fmt"

	"github.com/npillmayer/mathsym"
	"github.com/npillmayer/mathsym/ll1"
	"github.com/npillmayer/mathsym/ll1/ptree"
)

// ASTBuilder converts parse trees to ASTs, guided by semantic annotations.
// An ASTBuilder holds no per-tree state and may be shared between goroutines.
type ASTBuilder struct {
	sem *ll1.Semantics
}

// NewASTBuilder creates an AST builder. sem may be nil.
func NewASTBuilder(sem *ll1.Semantics) *ASTBuilder {
	if sem == nil {
		sem = ll1.NewSemantics()
	}
	return &ASTBuilder{sem: sem}
}

// AST converts a parse tree into an AST. The parse tree is modified in the
// process; clients still have to release it afterwards.
//
// If an operator cannot be supplied with operands, AST returns a
// *mathsym.StructuralError.
func (ab *ASTBuilder) AST(tree *ptree.Tree) (*Node, error) {
	tracer().Debugf("parse tree = %s", tree.ListString())
	ab.Prune(tree)
	if err := ab.MoveUpOperators(tree); err != nil {
		return nil, err
	}
	ab.Prune(tree)
	ast := freeze(tree.Arena, tree.Root)
	ast = ab.Reassociate(ast)
	tracer().Debugf("AST = %s", ast)
	return ast, nil
}

// --- Pruning ---------------------------------------------------------------

// Prune removes unused terminals and placeholders without children, then replaces
// every placeholder with a single child by that child. Pruning is done
// bottom-up. If the root ends up as a placeholder with a single child, the child
// becomes the new root.
func (ab *ASTBuilder) Prune(tree *ptree.Tree) {
	ab.prune(tree.Arena, tree.Root)
	root := tree.Node(tree.Root)
	if root.Kind == ptree.Empty && len(root.Children) == 1 {
		child := root.Children[0]
		if root.Grouped {
			tree.Node(child).Grouped = true
		}
		tree.Root = child
	}
	tree.Node(tree.Root).Parent = ptree.NoNode
}

func (ab *ASTBuilder) prune(a *ptree.Arena, i int) {
	n := a.Node(i)
	if n.IsLeaf() {
		return
	}
	for _, ch := range n.Children {
		ab.prune(a, ch)
	}
	kept := n.Children[:0]
	for _, ch := range n.Children {
		if !ab.droppable(a.Node(ch)) {
			kept = append(kept, ch)
		}
	}
	n.Children = kept
	for k, ch := range n.Children {
		c := a.Node(ch)
		if c.Kind == ptree.Empty && len(c.Children) == 1 {
			grandchild := c.Children[0]
			if c.Grouped {
				a.Node(grandchild).Grouped = true
			}
			n.Children[k] = grandchild
		}
		a.Node(n.Children[k]).Parent = i
	}
}

func (ab *ASTBuilder) droppable(n *ptree.Node) bool {
	if n.Kind == ptree.Empty {
		return n.IsLeaf()
	}
	return n.Token != nil && ab.sem.IsUnused(n.Token.Type)
}

// --- Operator promotion ----------------------------------------------------

// MoveUpOperators moves operators from the leaves to the nodes where they have
// their operands as children. Binary operators need a left and a right operand,
// unary left operators need a right operand. An operator travels upwards by
// swapping kind and token with its parent, collecting operands from the siblings
// it passes on its way.
func (ab *ASTBuilder) MoveUpOperators(tree *ptree.Tree) error {
	return moveUp(tree.Arena, tree.Root)
}

func moveUp(a *ptree.Arena, i int) error {
	for _, ch := range a.Node(i).Children {
		if err := moveUp(a, ch); err != nil {
			return err
		}
	}
	n := a.Node(i)
	hasLeft := len(n.Children) >= 1
	hasRight := len(n.Children) >= 2
	current := i
	for underSupplied(a.Node(current), hasLeft, hasRight) {
		c := a.Node(current)
		if c.Parent == ptree.NoNode {
			return &mathsym.StructuralError{
				Msg: fmt.Sprintf("operator %s lacks operands", operatorName(c)),
			}
		}
		p := a.Node(c.Parent)
		at := childIndex(p, current)
		if at > 0 {
			hasLeft = true
		}
		if at < len(p.Children)-1 {
			hasRight = true
		}
		c.Kind, p.Kind = p.Kind, c.Kind
		c.Token, p.Token = p.Token, c.Token
		current = c.Parent
	}
	return nil
}

func underSupplied(n *ptree.Node, hasLeft, hasRight bool) bool {
	switch n.Kind {
	case ptree.BinaryOperator:
		return !hasLeft || !hasRight
	case ptree.UnaryLeftOperator:
		return !hasRight
	}
	return false
}

func childIndex(parent *ptree.Node, child int) int {
	for k, ch := range parent.Children {
		if ch == child {
			return k
		}
	}
	return -1
}

func operatorName(n *ptree.Node) string {
	if n.Token == nil {
		return n.Kind.String()
	}
	return "'" + n.Token.Value + "'"
}

// --- Re-association --------------------------------------------------------

// Reassociate rotates chains of left-associative binary operators. Whenever a
// binary node and its right child carry operators of the same level, and the
// right child is not a group of its own, the tree is rotated left:
//
//     a ∘ (b ∘ c)   ⟹   (a ∘ b) ∘ c
//
// Operators without a level are never rotated.
func (ab *ASTBuilder) Reassociate(n *Node) *Node {
	if n == nil {
		return nil
	}
	for {
		level, ok := ab.level(n)
		if !ok || len(n.Children) != 2 {
			break
		}
		r := n.Children[1]
		rlevel, rok := ab.level(r)
		if !rok || rlevel != level || r.grouped || len(r.Children) != 2 {
			break
		}
		n.Children[1] = r.Children[0]
		r.Children[0] = n
		r.grouped, n.grouped = n.grouped, false
		n = r
	}
	for k, ch := range n.Children {
		n.Children[k] = ab.Reassociate(ch)
	}
	return n
}

func (ab *ASTBuilder) level(n *Node) (int, bool) {
	if n.Kind != ptree.BinaryOperator || n.Token == nil {
		return 0, false
	}
	return ab.sem.LeftAssociative(n.Token.Type)
}
