package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pagesaw/pagesaw/observability"
	"github.com/pagesaw/pagesaw/types"
)

// app carries everything the subcommands share: the logger, the console
// reporter and the post-success flags.
type app struct {
	lr        *logrus.Logger
	log       observability.Logger
	reporter  observability.Reporter
	verbose   bool
	openAfter bool
}

func newRootCommand() *cobra.Command {
	a := &app{lr: logrus.New()}
	a.lr.SetOutput(os.Stderr)
	a.lr.SetLevel(logrus.InfoLevel)
	a.log = newLogrusLogger(a.lr)
	a.reporter = &consoleReporter{out: os.Stdout}

	cmd := &cobra.Command{
		Use:          "pagesaw",
		Short:        "pagesaw splits PDFs into per-page or per-range files and merges PDFs into one",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if a.verbose {
				a.lr.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug diagnostics on stderr")
	cmd.PersistentFlags().BoolVar(&a.openAfter, "open", false, "reveal the output in the file manager after success")

	cmd.AddCommand(newSplitCommand(a))
	cmd.AddCommand(newSplitPagesCommand(a))
	cmd.AddCommand(newMergeCommand(a))
	return cmd
}

// fail logs the full diagnostic (cause included) and hands cobra the
// one-line user message only.
func (a *app) fail(err error) error {
	a.lr.WithError(err).Debug("operation failed")
	return errors.New(types.UserMessage(err))
}

// finish runs the optional post-success hook on the output location.
func (a *app) finish(target string) {
	if !a.openAfter {
		return
	}
	if err := reveal(target); err != nil {
		a.lr.WithError(err).Warn("could not reveal output")
	}
}
