package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeviz/pkg/buildinfo"
)

// Execute runs the treeviz CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The root command keeps the classic surface of the original tool:
//
//	treeviz program.ast          # render program.png
//	treeviz program.ast svg      # render program.svg
//	treeviz program.ast out.pdf  # render to an explicit path
//
// plus explicit subcommands (render, dot, parse, serve, completion).
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	renderOpts := defaultRenderOpts()

	root := &cobra.Command{
		Use:   "treeviz [ast-file] [format|output-path]",
		Short: "treeviz renders AST dump files as graph diagrams",
		Long: `treeviz converts indentation-structured AST dump files into graph
diagrams. Nesting is recovered purely from line indentation; the result is
rendered with Graphviz to PNG, SVG, PDF, or DOT source.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.RangeArgs(1, 2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args, renderOpts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	addRenderFlags(root, renderOpts)

	root.AddCommand(newRenderCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
