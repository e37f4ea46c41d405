package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeviz/pkg/render"
)

// newDotCmd creates the dot command for emitting raw DOT source.
func newDotCmd() *cobra.Command {
	var (
		output    string
		direction string
		noConfig  bool
	)

	cmd := &cobra.Command{
		Use:   "dot [ast-file]",
		Short: "Print the generated Graphviz DOT source",
		Long: `Print the generated Graphviz DOT source.

Useful for feeding external Graphviz tooling or inspecting the node and
edge stream before rendering. Writes to stdout unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDot(cmd.Context(), args[0], output, direction, noConfig)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&direction, "direction", "", "graph direction (rankdir): TB (default), LR, BT, RL")
	cmd.Flags().BoolVar(&noConfig, "no-config", false, "ignore the user config file")

	return cmd
}

// runDot parses the dump and writes the DOT source.
func runDot(ctx context.Context, input, output, direction string, noConfig bool) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(noConfig)
	if err != nil {
		return err
	}
	if direction == "" {
		direction = cfg.Direction
	}

	root, err := loadTree(input)
	if err != nil {
		return err
	}
	logger.Debugf("Parsed tree: %d nodes, depth %d", root.Count(), root.Height())

	dot := render.ToDOT(root, render.Options{
		Direction: direction,
		Palette:   cfg.Palette(),
	})

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write([]byte(dot)); err != nil {
		return err
	}
	if output != "" {
		logger.Infof("Wrote DOT source to %s", output)
	}
	return nil
}
