package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagesaw/pagesaw/merge"
	"github.com/pagesaw/pagesaw/types"
)

func newMergeCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "merge [-o output.pdf] <input.pdf> <input.pdf> ...",
		Short: "Merge multiple PDFs into one document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output
			if out == "" {
				out = filepath.Join(filepath.Dir(args[0]), "merged.pdf")
			}
			engine := merge.NewEngine(merge.WithLogger(a.log), merge.WithReporter(a.reporter))
			req := types.MergeRequest{Inputs: strings.Join(args, ";"), Output: out}
			if err := engine.Merge(cmd.Context(), req); err != nil {
				return a.fail(err)
			}
			a.finish(out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: merged.pdf beside the first input)")
	return cmd
}
