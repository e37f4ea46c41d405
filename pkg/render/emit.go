// Package render turns a parsed AST tree into a Graphviz diagram.
//
// The package is split along the emission boundary: [Emit] walks the tree in
// pre-order and streams declare-node/declare-edge events into a [Graph]
// sink, [ToDOT] is the sink that assembles Graphviz DOT source, and
// [Render] hands the DOT to Graphviz for the final image.
package render

import (
	"fmt"

	"github.com/matzehuels/treeviz/pkg/ast"
)

// Graph receives the node and edge stream produced by [Emit]. It is the
// boundary to the rendering backend; the DOT builder is the only
// implementation shipped, tests provide recording sinks.
type Graph interface {
	// AddNode declares a node with a display label and fill color.
	AddNode(id, label, fill string)
	// AddEdge declares a parent→child edge between two declared nodes.
	AddEdge(from, to string)
}

// task is one pending visit on the emission work stack.
type task struct {
	node     *ast.Node
	parentID string
}

// Emit walks the tree rooted at root in pre-order and declares every node
// and parent edge on g. Node ids are "node_N" with N assigned in visitation
// order starting at 0. Labels are the kind alone, or kind and value on two
// lines. Fill colors come from p.
//
// The traversal uses an explicit work stack rather than recursion so that
// degenerate deeply-nested dumps cannot exhaust the goroutine stack.
// Children are pushed in reverse so they pop in source order.
func Emit(root *ast.Node, g Graph, p Palette) {
	if root == nil {
		return
	}

	counter := 0
	stack := []task{{node: root}}

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := fmt.Sprintf("node_%d", counter)
		counter++

		g.AddNode(id, nodeLabel(t.node), p.Color(t.node.Kind))
		if t.parentID != "" {
			g.AddEdge(t.parentID, id)
		}

		for i := len(t.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, task{node: t.node.Children[i], parentID: id})
		}
	}
}

// nodeLabel builds the display label: the kind alone, or kind and value
// separated by a line break.
func nodeLabel(n *ast.Node) string {
	if n.Value == "" {
		return n.Kind
	}
	return n.Kind + "\n" + n.Value
}
