package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pagesaw/pagesaw/types"
)

// buildPDF produces a minimal classic-xref PDF with the given number of
// pages. All pages share one trivial content stream.
func buildPDF(pages int) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("%PDF-1.7\n")

	// Objects: 1 catalog, 2 page tree, 3 content stream, 4.. pages.
	total := 3 + pages
	offsets := make(map[int]int)

	offsets[1] = buf.Len()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = buf.Len()
	kids := &strings.Builder{}
	for i := 0; i < pages; i++ {
		if i > 0 {
			kids.WriteString(" ")
		}
		fmt.Fprintf(kids, "%d 0 R", 4+i)
	}
	fmt.Fprintf(buf, "2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 595 842] >>\nendobj\n",
		kids.String(), pages)

	offsets[3] = buf.Len()
	content := "q Q"
	fmt.Fprintf(buf, "3 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(content), content)

	for i := 0; i < pages; i++ {
		num := 4 + i
		offsets[num] = buf.Len()
		fmt.Fprintf(buf, "%d 0 obj\n<< /Type /Page /Parent 2 0 R /Contents 3 0 R /Resources << >> >>\nendobj\n", num)
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n", total+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= total; i++ {
		fmt.Fprintf(buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total+1, xrefOffset)

	return buf.Bytes()
}

func writePDF(t *testing.T, path string, pages int) {
	t.Helper()
	if err := os.WriteFile(path, buildPDF(pages), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.pdf"))
	if !errors.Is(err, types.ErrFileNotFound) {
		t.Fatalf("error = %v, want FileNotFound", err)
	}
}

func TestOpenDirectory(t *testing.T) {
	_, err := Open(t.TempDir())
	if !errors.Is(err, types.ErrFileNotFound) {
		t.Fatalf("error = %v, want FileNotFound", err)
	}
}

func TestOpenAndPageCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.pdf")
	writePDF(t, path, 3)

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	if got := doc.PageCount(); got != 3 {
		t.Fatalf("PageCount = %d, want 3", got)
	}
	if doc.Encrypted() {
		t.Fatalf("fixture must not report encryption")
	}
	if got := doc.BaseName(); got != "sample" {
		t.Fatalf("BaseName = %q, want %q", got, "sample")
	}
	if got := doc.Path(); got != path {
		t.Fatalf("Path = %q, want %q", got, path)
	}
}

func TestExtractSinglePageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	writePDF(t, src, 4)

	doc, err := Open(src)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	ext, err := doc.ExtractPages([]int{2})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	out := filepath.Join(dir, "out.pdf")
	if err := ext.WriteFile(out); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Open(out)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer got.Close()
	if got.PageCount() != 1 {
		t.Fatalf("extracted PageCount = %d, want 1", got.PageCount())
	}
}

func TestExtractPreservesOrderAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.pdf")
	writePDF(t, src, 5)

	doc, err := Open(src)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	ext, err := doc.ExtractPages([]int{3, 3, 1})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	out := filepath.Join(dir, "out.pdf")
	if err := ext.WriteFile(out); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Open(out)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer got.Close()
	if got.PageCount() != 3 {
		t.Fatalf("extracted PageCount = %d, want 3", got.PageCount())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.pdf")
	writePDF(t, path, 1)

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := doc.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
