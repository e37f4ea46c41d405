package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/treeviz/pkg/config"
	"github.com/matzehuels/treeviz/pkg/errors"
	"github.com/matzehuels/treeviz/pkg/render"
)

func TestResolveOutput(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		positional string
		opts       renderOpts
		cfg        config.Config
		wantPath   string
		wantFormat render.Format
	}{
		{
			name:       "input only defaults to png",
			input:      "prog.ast",
			wantPath:   "prog.png",
			wantFormat: render.FormatPNG,
		},
		{
			name:       "format token",
			input:      "prog.ast",
			positional: "svg",
			wantPath:   "prog.svg",
			wantFormat: render.FormatSVG,
		},
		{
			name:       "explicit output path",
			input:      "prog.ast",
			positional: "out.pdf",
			wantPath:   "out.pdf",
			wantFormat: render.FormatPDF,
		},
		{
			name:       "output path with unknown extension falls back to png",
			input:      "prog.ast",
			positional: "out.image",
			wantPath:   "out.image",
			wantFormat: render.FormatPNG,
		},
		{
			name:       "output flag",
			input:      "prog.ast",
			opts:       renderOpts{output: "tree.dot"},
			wantPath:   "tree.dot",
			wantFormat: render.FormatDOT,
		},
		{
			name:       "format flag wins over output extension",
			input:      "prog.ast",
			opts:       renderOpts{output: "tree.out", format: "svg"},
			wantPath:   "tree.out",
			wantFormat: render.FormatSVG,
		},
		{
			name:       "config default format",
			input:      "prog.ast",
			cfg:        config.Config{Format: "svg"},
			wantPath:   "prog.svg",
			wantFormat: render.FormatSVG,
		},
		{
			name:       "format token beats config default",
			input:      "prog.ast",
			positional: "pdf",
			cfg:        config.Config{Format: "svg"},
			wantPath:   "prog.pdf",
			wantFormat: render.FormatPDF,
		},
		{
			name:       "input path keeps directory",
			input:      filepath.Join("out", "prog.ast"),
			wantPath:   filepath.Join("out", "prog.png"),
			wantFormat: render.FormatPNG,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, format, err := resolveOutput(tt.input, tt.positional, &tt.opts, tt.cfg)
			if err != nil {
				t.Fatalf("resolveOutput() error = %v", err)
			}
			if path != tt.wantPath {
				t.Errorf("path = %q, want %q", path, tt.wantPath)
			}
			if format != tt.wantFormat {
				t.Errorf("format = %q, want %q", format, tt.wantFormat)
			}
		})
	}
}

func TestResolveOutputInvalidFormatFlag(t *testing.T) {
	opts := renderOpts{format: "gif"}
	_, _, err := resolveOutput("prog.ast", "", &opts, config.Config{})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("resolveOutput() error = %v, want INVALID_FORMAT", err)
	}
}

func TestLooksLikePath(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want bool
	}{
		{"bare format token", "png", false},
		{"file with extension", "tree.png", true},
		{"path with separator", filepath.Join("out", "png"), true},
		{"dotted name", "a.b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikePath(tt.arg); got != tt.want {
				t.Errorf("looksLikePath(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		name string
		path string
		ext  string
		want string
	}{
		{"swap extension", "prog.ast", "png", "prog.png"},
		{"no extension", "prog", "svg", "prog.svg"},
		{"nested path", filepath.Join("a", "b.ast"), "pdf", filepath.Join("a", "b.pdf")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := replaceExt(tt.path, tt.ext); got != tt.want {
				t.Errorf("replaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
			}
		})
	}
}

func TestLoadTreeFileNotFound(t *testing.T) {
	_, err := loadTree(filepath.Join(t.TempDir(), "missing.ast"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("loadTree() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadTreeEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.ast")
	if err := os.WriteFile(path, []byte("=== AST ===\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadTree(path)
	if !errors.Is(err, errors.ErrCodeEmptyInput) {
		t.Errorf("loadTree() error = %v, want EMPTY_INPUT", err)
	}
}

func TestLoadTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.ast")
	if err := os.WriteFile(path, []byte("Program\n Block\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := loadTree(path)
	if err != nil {
		t.Fatalf("loadTree() error = %v", err)
	}
	if root.Kind != "Program" || len(root.Children) != 1 {
		t.Errorf("unexpected tree: %+v", root)
	}
}
