// Package types holds the immutable request values passed from the
// presentation layer into the split/merge pipeline, and the coded error
// taxonomy the pipeline reports back.
package types

import "strings"

// SplitRequest asks for one output file per page of Input, written into
// OutputDir.
type SplitRequest struct {
	Input     string
	OutputDir string
}

// SplitPagesRequest asks for one output file per selection group of
// PagesSpec. Groups are separated by ";", each group is a page selection
// like "1-3,7".
type SplitPagesRequest struct {
	Input     string
	OutputDir string
	PagesSpec string
}

// Groups returns the non-empty, whitespace-trimmed selection groups of
// PagesSpec in listed order.
func (r SplitPagesRequest) Groups() []string {
	return splitList(r.PagesSpec)
}

// MergeRequest asks for the pages of all Inputs, concatenated in listed
// order, to be written to Output. Inputs is a ";"-separated path list as
// supplied by the presentation layer.
type MergeRequest struct {
	Inputs string
	Output string
}

// SourcePaths returns the non-empty, whitespace-trimmed source paths of
// Inputs in listed order.
func (r MergeRequest) SourcePaths() []string {
	return splitList(r.Inputs)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
