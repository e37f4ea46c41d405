// Package ast parses indentation-structured AST dump files into an explicit
// tree of nodes.
//
// A dump file contains one node per line. Nesting is encoded purely by
// leading whitespace; there are no braces, parent pointers, or line numbers:
//
//	Program
//	 Function: main
//	  Block
//	   ReturnStmt
//
// Each line holds a node kind and an optional value separated by the first
// colon ("Function: main"). [Parse] reconstructs the parent/child structure
// from the relative depth ordering alone, so the indentation unit does not
// need to be uniform.
package ast

// Node is a single element of a parsed AST dump.
//
// Nodes form a strict hierarchy: every node is owned by exactly one parent
// (or by the caller, for the root) and there are no back references. Once
// returned by [Parse] a tree is never mutated.
type Node struct {
	// Kind is the syntax-node category label (e.g. "VarDecl", "IfStmt").
	Kind string `json:"kind"`

	// Value is the optional payload after the first colon, such as a
	// literal or identifier text. Empty means no payload.
	Value string `json:"value,omitempty"`

	// Depth is the leading-whitespace count of the source line. It is the
	// structural signal during parsing and kept afterwards only for
	// debugging; siblings may have different depths in irregular dumps.
	Depth int `json:"-"`

	// Children holds the node's subtrees in source order, top to bottom.
	Children []*Node `json:"children,omitempty"`
}

// NewNode creates a node with no children. An empty kind is accepted but
// produces an unlabeled node in the rendered output.
func NewNode(kind, value string, depth int) *Node {
	return &Node{Kind: kind, Value: value, Depth: depth}
}

// AppendChild adds c as the last child of n. Only the parser calls this;
// trees are structurally frozen after Parse returns.
func (n *Node) AppendChild(c *Node) {
	n.Children = append(n.Children, c)
}

// Count returns the number of nodes in the tree rooted at n, including n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Height returns the number of nodes on the longest root-to-leaf path.
// A single node has height 1.
func (n *Node) Height() int {
	max := 0
	for _, c := range n.Children {
		if h := c.Height(); h > max {
			max = h
		}
	}
	return max + 1
}
