// Package pdfmeta optionally sniffs a source PDF for a default document
// identifier and its page count, without doing any page extraction or
// rendering.
package pdfmeta

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Info is what a PDF can opportunistically contribute to a run: its Info
// dictionary title (used as a default identifier when the caller supplies
// none) and its page count. The infer command uses only Title; PageCount
// is not compared against the OCR page count and never drives extraction.
type Info struct {
	Title     string
	PageCount int
}

// Sniff opens path, a PDF believed to correspond to the OCR input, and
// returns whatever Info it can read. A PDF that can't be opened or parsed
// is not fatal to a run: callers treat a non-nil error as "no PDF metadata
// available" and fall back to their own identifier and page count.
func Sniff(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("pdfmeta: open %s: %w", path, err)
	}
	defer f.Close()

	pageCount, err := api.PageCount(f, nil)
	if err != nil {
		return Info{}, fmt.Errorf("pdfmeta: page count %s: %w", path, err)
	}

	if _, err := f.Seek(0, 0); err != nil {
		return Info{}, fmt.Errorf("pdfmeta: rewind %s: %w", path, err)
	}

	pdfInfo, err := api.PDFInfo(f, path, nil, false, nil)
	if err != nil {
		// Page count alone is still useful; a missing or malformed Info
		// dictionary just means no title to offer as an identifier.
		return Info{PageCount: pageCount}, nil
	}

	return Info{
		Title:     pdfInfo.Title,
		PageCount: pageCount,
	}, nil
}
