// Package document opens PDF files through the pdfcpu object model and
// copies pages out of them into new documents. It is the only package
// that touches the PDF format; everything above it deals in page numbers
// and file paths.
package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pagesaw/pagesaw/types"
)

// Document is an opened PDF. It is owned by the engine call that opened
// it and must be closed before that call returns.
type Document struct {
	path string
	file *os.File
	ctx  *model.Context
}

// Open reads and validates the PDF at path. Encrypted documents get a
// single empty-password decryption attempt (performed by pdfcpu during
// read); if the document needs a real password or the attempt fails for
// any reason, Open reports DecryptionFailed without distinguishing the
// two cases.
func Open(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, types.Errorf(types.ErrCodeFileNotFound, "File not found: %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, types.WrapError(types.ErrCodeFileNotFound, "File not found: "+path, err)
	}
	ctx, err := api.ReadValidateAndOptimize(f, model.NewDefaultConfiguration())
	if err != nil {
		f.Close()
		if isDecryptionError(err) {
			return nil, types.WrapError(types.ErrCodeDecryptionFailed,
				"This PDF appears to be password-protected. Decryption failed.", err)
		}
		return nil, err
	}
	return &Document{path: path, file: f, ctx: ctx}, nil
}

// isDecryptionError reports whether a pdfcpu read failure was caused by
// document encryption rather than a malformed file.
func isDecryptionError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "password") || strings.Contains(msg, "decrypt")
}

// Path returns the source path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// BaseName returns the source file name without directory or extension,
// used to derive output file names.
func (d *Document) BaseName() string {
	base := filepath.Base(d.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PageCount returns the number of pages. Zero is a valid count; callers
// that require at least one page report EmptyDocument themselves.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// Encrypted reports whether the source document carries an encryption
// dictionary. If it does, Open already succeeded with the empty password.
func (d *Document) Encrypted() bool {
	return d.ctx.Encrypt != nil
}

// ExtractPages copies the named 1-based pages into a new document, in the
// given order, duplicates included. Page numbers must already be
// validated against PageCount.
func (d *Document) ExtractPages(pages []int) (*Extract, error) {
	ctx, err := pdfcpu.ExtractPages(d.ctx, pages, false)
	if err != nil {
		return nil, err
	}
	return &Extract{ctx: ctx}, nil
}

// Page copies the single 1-based page n into a new document.
func (d *Document) Page(n int) (*Extract, error) {
	return d.ExtractPages([]int{n})
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}
	f := d.file
	d.file = nil
	return f.Close()
}

// Extract is a new document holding page copies, ready to be written out
// exactly once.
type Extract struct {
	ctx *model.Context
}

// WriteFile writes the extracted document to path, truncating any
// existing file.
func (e *Extract) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := api.WriteContext(e.ctx, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
