package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/treeviz/pkg/ast"
)

// Options configures DOT generation.
type Options struct {
	// Direction is the Graphviz rankdir attribute. Empty means "TB"
	// (root at the top, leaves at the bottom).
	Direction string

	// Palette overrides the default kind→color table. Nil means
	// [DefaultPalette].
	Palette Palette
}

// dotBuilder assembles DOT source from the emitted node/edge stream. Nodes
// and edges are buffered separately so all node declarations precede the
// edges, keeping the output diffable.
type dotBuilder struct {
	nodes bytes.Buffer
	edges bytes.Buffer
}

func (b *dotBuilder) AddNode(id, label, fill string) {
	fmt.Fprintf(&b.nodes, "  %s [label=%q, fillcolor=%q];\n", id, label, fill)
}

func (b *dotBuilder) AddEdge(from, to string) {
	fmt.Fprintf(&b.edges, "  %s -> %s;\n", from, to)
}

func (b *dotBuilder) source(direction string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph AST {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", direction)
	buf.WriteString("  node [shape=box, style=\"rounded,filled\"];\n")
	buf.WriteString("\n")
	buf.Write(b.nodes.Bytes())
	buf.WriteString("\n")
	buf.Write(b.edges.Bytes())
	buf.WriteString("}\n")
	return buf.String()
}

// ToDOT converts a parsed tree to Graphviz DOT source. The resulting string
// can be rendered with [Render] or fed to external Graphviz tooling.
func ToDOT(root *ast.Node, opts Options) string {
	direction := opts.Direction
	if direction == "" {
		direction = "TB"
	}
	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette()
	}

	var b dotBuilder
	Emit(root, &b, palette)
	return b.source(direction)
}
