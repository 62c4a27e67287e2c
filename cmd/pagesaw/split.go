package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagesaw/pagesaw/split"
	"github.com/pagesaw/pagesaw/types"
)

func newSplitCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "split <input.pdf> [output-dir]",
		Short: "Split a PDF into one file per page",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			outDir := defaultOutputDir(input)
			if len(args) == 2 {
				outDir = args[1]
			}
			engine := split.NewEngine(split.WithLogger(a.log), split.WithReporter(a.reporter))
			req := types.SplitRequest{Input: input, OutputDir: outDir}
			if err := engine.Split(cmd.Context(), req); err != nil {
				return a.fail(err)
			}
			a.finish(outDir)
			return nil
		},
	}
}

func newSplitPagesCommand(a *app) *cobra.Command {
	var pagesSpec string
	cmd := &cobra.Command{
		Use:   "split-pages --pages \"1-3;7;2\" <input.pdf> [output-dir]",
		Short: "Split a PDF into one file per selection group",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			outDir := defaultOutputDir(input)
			if len(args) == 2 {
				outDir = args[1]
			}
			engine := split.NewEngine(split.WithLogger(a.log), split.WithReporter(a.reporter))
			req := types.SplitPagesRequest{Input: input, OutputDir: outDir, PagesSpec: pagesSpec}
			if err := engine.SplitChosenPages(cmd.Context(), req); err != nil {
				return a.fail(err)
			}
			a.finish(outDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&pagesSpec, "pages", "", "semicolon-separated selection groups, e.g. \"1-3;7;2,5\"")
	return cmd
}

// defaultOutputDir mirrors the directory the desktop tool prefilled:
// a "{basename}_pages" folder next to the input.
func defaultOutputDir(input string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), base+"_pages")
}
