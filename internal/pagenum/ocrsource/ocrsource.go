// Package ocrsource defines the OCR input collaborator contract: the
// document hierarchy (Document -> Page -> Paragraph -> Line -> Word) that
// candidate extraction consumes, and the optional scandata skip-set
// collaborator that maps physical leaves to effective page indices.
//
// Parsing an actual hOCR/ABBYY/etc. document into this shape is out of
// scope here; only the interface and a JSON-backed adapter for tests and
// simple pipelines are provided.
package ocrsource

import (
	"context"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
)

// Word is a single OCR word, the leaf of the hierarchy.
type Word struct {
	BBox       model.BBox
	Text       string
	FontSize   int
	Confidence int // 0-100
}

// Line is an ordered run of words.
type Line struct {
	Words []Word
}

// Paragraph groups lines, mirroring the ocr_par level of the hOCR
// hierarchy.
type Paragraph struct {
	Lines []Line
}

// Page is one physical leaf of the source document.
type Page struct {
	Width, Height int
	Paragraphs    []Paragraph
}

// Words flattens the paragraph/line hierarchy into a single ordered slice,
// the shape candidate extraction actually iterates over.
func (p Page) Words() []Word {
	var out []Word
	for _, para := range p.Paragraphs {
		for _, line := range para.Lines {
			out = append(out, line.Words...)
		}
	}
	return out
}

// Source is the OCR input collaborator: an ordered iterator over a
// document's pages.
type Source interface {
	// Pages returns every page of the document in physical (leaf) order.
	Pages(ctx context.Context) ([]Page, error)
}

// ScandataSource is the optional scandata collaborator: pages absent from
// access formats (cover boards, color calibration targets, etc.) that must
// be subtracted from the stream and cause downstream page indices to be
// renumbered densely.
type ScandataSource interface {
	// SkipLeaves returns the set of physical leaf indices to omit.
	SkipLeaves(ctx context.Context) (map[int]bool, error)
}
