package render

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Format is a supported output format.
type Format string

// Output formats accepted by [Render].
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	FormatDOT Format = "dot"
)

// DefaultFormat is used when neither an explicit format nor an output
// extension selects one.
const DefaultFormat = FormatPNG

// Formats lists all supported formats in display order.
func Formats() []Format {
	return []Format{FormatPNG, FormatSVG, FormatPDF, FormatDOT}
}

// ParseFormat validates a format token such as "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatSVG, FormatPDF, FormatDOT:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format: %s (must be 'png', 'svg', 'pdf', or 'dot')", s)
	}
}

// FormatFromPath derives a format from a file extension, e.g. "tree.svg" →
// [FormatSVG]. Paths without a recognized extension fall back to
// [DefaultFormat].
func FormatFromPath(path string) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return DefaultFormat
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return DefaultFormat
	}
	return f
}

// Render renders DOT source to the requested format.
//
// SVG and PNG are produced in-process by Graphviz. PDF goes through SVG and
// rsvg-convert (see [ToPDF]). DOT returns the source bytes unchanged.
func Render(ctx context.Context, dot string, format Format) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return renderGraphviz(ctx, dot, graphviz.SVG)
	case FormatPNG:
		return renderGraphviz(ctx, dot, graphviz.PNG)
	case FormatPDF:
		svg, err := renderGraphviz(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return ToPDF(svg)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// renderGraphviz runs the Graphviz layout engine over the DOT source.
func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
