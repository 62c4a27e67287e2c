// Package merge concatenates the pages of multiple PDFs into one output
// document.
package merge

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pagesaw/pagesaw/document"
	"github.com/pagesaw/pagesaw/observability"
	"github.com/pagesaw/pagesaw/types"
)

// Engine performs merge operations. Construct with NewEngine; the zero
// value is not usable.
type Engine struct {
	log observability.Logger
	rep observability.Reporter
}

type Option func(*Engine)

func WithLogger(l observability.Logger) Option {
	return func(e *Engine) { e.log = l }
}

func WithReporter(r observability.Reporter) Option {
	return func(e *Engine) { e.rep = r }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: observability.NopLogger{}, rep: observability.NopReporter{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Merge appends every page of every source, in source order and original
// page order, into one document written to the request output path. Each
// source is validated and consumed in turn with a progress report; the
// output is written once, after all sources are processed. If the final
// write itself dies a partial output file may remain on disk.
func (e *Engine) Merge(ctx context.Context, req types.MergeRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sources := req.SourcePaths()
	if len(sources) == 0 {
		return types.NewError(types.ErrCodeMissingInput, "Please select PDF files to merge.")
	}
	if req.Output == "" {
		return types.NewError(types.ErrCodeMissingOutput, "Please choose an output file.")
	}

	start := time.Now()
	total := len(sources)
	pages := 0
	for idx, path := range sources {
		if _, err := os.Stat(path); err != nil {
			return e.fail(types.Errorf(types.ErrCodeFileNotFound, "File not found: %s", path))
		}
		doc, err := document.Open(path)
		if err != nil {
			if coded, ok := err.(*types.Error); ok && coded.Code == types.ErrCodeDecryptionFailed {
				return e.fail(types.WrapError(types.ErrCodeDecryptionFailed,
					"One of the PDFs is password-protected. Decryption failed.", err))
			}
			return e.fail(err)
		}
		pages += doc.PageCount()
		doc.Close()
		e.rep.Status(fmt.Sprintf("Processed %d/%d files...", idx+1, total))
		e.rep.Progress(idx+1, total)
	}

	if err := api.MergeCreateFile(sources, req.Output, false, model.NewDefaultConfiguration()); err != nil {
		return e.fail(err)
	}

	e.rep.Status(fmt.Sprintf("Done. Wrote merged PDF to: %s", req.Output))
	e.log.Info("merge complete",
		observability.String("output", req.Output),
		observability.Int(observability.MetricMergeSources, total),
		observability.Int(observability.MetricPageCount, pages),
		observability.Int64(observability.MetricMergeTime, time.Since(start).Milliseconds()))
	return nil
}

// fail clears any in-progress status and converts unexpected pdfcpu or
// I/O failures into the MergeFailed catch-all. Errors that already carry
// a code pass through untouched.
func (e *Engine) fail(err error) error {
	e.rep.Status("")
	e.log.Error("merge failed", observability.Error("cause", err))
	if coded, ok := err.(*types.Error); ok {
		return coded
	}
	return types.WrapError(types.ErrCodeMergeFailed, "An unexpected error occurred while merging.", err)
}
