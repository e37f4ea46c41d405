package render

// DefaultFill is the fill color for kinds not present in a palette.
const DefaultFill = "#e0e0e0"

// Palette maps syntax-node kinds to Graphviz fill colors. The zero value is
// usable: every kind resolves to [DefaultFill]. Palettes are treated as
// immutable once built; the emitter only reads them.
type Palette map[string]string

// Color returns the fill color for kind, or [DefaultFill] when the kind is
// not in the palette.
func (p Palette) Color(kind string) string {
	if c, ok := p[kind]; ok {
		return c
	}
	return DefaultFill
}

// Merge returns a copy of p with overrides applied on top. Neither input is
// modified.
func (p Palette) Merge(overrides map[string]string) Palette {
	merged := make(Palette, len(p)+len(overrides))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// DefaultPalette returns the built-in colors for the syntax-node categories
// the compiler emits. The assignment groups related kinds: literals share
// green, operators orange, declarations teal, control-flow statements
// purple.
func DefaultPalette() Palette {
	return Palette{
		"Program":       "#e1f5ff",
		"Function":      "#fff9c4",
		"Block":         "#f3e5f5",
		"IntLiteral":    "#c8e6c9",
		"DoubleLiteral": "#c8e6c9",
		"StringLiteral": "#c8e6c9",
		"BoolLiteral":   "#c8e6c9",
		"Identifier":    "#ffccbc",
		"BinaryOp":      "#ffe0b2",
		"UnaryOp":       "#ffe0b2",
		"VarDecl":       "#b2dfdb",
		"Assignment":    "#b2dfdb",
		"IfStmt":        "#d1c4e9",
		"WhileStmt":     "#d1c4e9",
		"ForStmt":       "#d1c4e9",
		"ReturnStmt":    "#d1c4e9",
		"Type":          "#cfd8dc",
	}
}
