package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeviz/pkg/ast"
	"github.com/matzehuels/treeviz/pkg/config"
	"github.com/matzehuels/treeviz/pkg/errors"
	"github.com/matzehuels/treeviz/pkg/render"
)

// renderOpts holds the command-line flags for rendering.
type renderOpts struct {
	output    string // output file path (derived from input if empty)
	format    string // explicit output format token
	direction string // graphviz rankdir override
	noConfig  bool   // skip the user config file
}

// defaultRenderOpts returns the zero options shared by the root command and
// the render subcommand.
func defaultRenderOpts() *renderOpts {
	return &renderOpts{}
}

// addRenderFlags registers the rendering flags on cmd.
func addRenderFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), svg, pdf, dot")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "graph direction (rankdir): TB (default), LR, BT, RL")
	cmd.Flags().BoolVar(&opts.noConfig, "no-config", false, "ignore the user config file")
}

// newRenderCmd creates the render command, the explicit form of the root
// command's default behavior.
func newRenderCmd() *cobra.Command {
	opts := defaultRenderOpts()

	cmd := &cobra.Command{
		Use:   "render [ast-file] [format|output-path]",
		Short: "Render an AST dump file to an image",
		Long: `Render an AST dump file to an image.

The optional second argument is either a format token (png, svg, pdf, dot)
or an output file path whose extension selects the format. Without it the
output path is the input path with its extension replaced.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args, opts)
		},
	}

	addRenderFlags(cmd, opts)
	return cmd
}

// runRender converts one dump file to one output file.
func runRender(ctx context.Context, args []string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.noConfig)
	if err != nil {
		return err
	}

	input := args[0]
	positional := ""
	if len(args) > 1 {
		positional = args[1]
	}

	outputPath, format, err := resolveOutput(input, positional, opts, cfg)
	if err != nil {
		return err
	}

	logger.Infof("Parsing %s", input)
	root, err := loadTree(input)
	if err != nil {
		return err
	}
	logger.Debugf("Parsed tree: %d nodes, depth %d", root.Count(), root.Height())

	direction := opts.direction
	if direction == "" {
		direction = cfg.Direction
	}
	dot := render.ToDOT(root, render.Options{
		Direction: direction,
		Palette:   cfg.Palette(),
	})

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()

	prog := newProgress(logger)
	data, err := render.Render(ctx, dot, format)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return errors.Wrap(errors.ErrCodeRender, err, "render %s", input)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d nodes", root.Count()))

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "write %s", outputPath)
	}

	printSuccess("Generated %s diagram", format)
	printFile(outputPath)
	printStats(root.Count(), root.Height())
	return nil
}

// resolveOutput determines the output path and format.
//
// Precedence: explicit --output/--format flags, then the positional second
// argument (a bare format token, or a path whose extension picks the
// format), then the config default format with the output path derived from
// the input file name.
func resolveOutput(input, positional string, opts *renderOpts, cfg config.Config) (string, render.Format, error) {
	format := cfg.DefaultFormat()

	if opts.format != "" {
		f, err := render.ParseFormat(opts.format)
		if err != nil {
			return "", "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "--format")
		}
		format = f
	}

	output := opts.output
	if positional != "" {
		if f, err := render.ParseFormat(positional); err == nil && !looksLikePath(positional) {
			format = f
		} else if output == "" {
			output = positional
			if opts.format == "" {
				format = render.FormatFromPath(positional)
			}
		}
	}

	if output == "" {
		output = replaceExt(input, string(format))
	} else if opts.format == "" && positional == "" {
		format = render.FormatFromPath(output)
	}

	return output, format, nil
}

// looksLikePath reports whether arg is a file path rather than a bare
// format token ("png" is a token, "out/png" and "tree.png" are paths).
func looksLikePath(arg string) bool {
	return strings.ContainsRune(arg, os.PathSeparator) || strings.Contains(arg, ".")
}

// replaceExt swaps the extension of path for ext (without a dot).
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

// loadConfig loads the user config unless disabled.
func loadConfig(skip bool) (config.Config, error) {
	if skip {
		return config.Config{}, nil
	}
	return config.Load()
}

// loadTree parses the dump at input, mapping failures to the coded errors
// reported to the user.
func loadTree(input string) (*ast.Node, error) {
	if _, err := os.Stat(input); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "file not found: %s", input)
	}

	root, err := ast.ParseFile(input)
	if err != nil {
		if stderrors.Is(err, ast.ErrEmptyTree) {
			return nil, errors.Wrap(errors.ErrCodeEmptyInput, err, "%s contains no nodes", input)
		}
		return nil, err
	}
	return root, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
