package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newParseCmd creates the parse command for exporting the reconstructed
// tree as JSON.
func newParseCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse [ast-file]",
		Short: "Parse an AST dump file and export the tree as JSON",
		Long: `Parse an AST dump file and export the reconstructed tree as JSON.

The output is the nested node structure (kind, value, children) with the
parent/child relationships recovered from indentation. Writes to stdout
unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runParse parses the dump and writes the tree as indented JSON.
func runParse(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Parsing %s", input)

	prog := newProgress(logger)
	root, err := loadTree(input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d nodes", root.Count()))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return err
	}
	if output != "" {
		logger.Infof("Wrote tree to %s", output)
	}
	return nil
}
