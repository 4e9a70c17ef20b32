// Package output assembles the final JSON document and validates it
// against the embedded output schema before it leaves the process.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
	"github.com/iarchive/hocr-pagenumber/internal/schema"
)

// FormatVersion is the schema's fixed "format-version" value.
const FormatVersion = "2"

// PageEntry is one page's final outcome as reported in the output document.
type PageEntry struct {
	LeafNum    int
	Candidate  *model.PageNumberCandidate
	WordConf   *int // OCR word confidence, nil for synthetic/unassigned pages
	PageProb   *int // p_true * 100, nil when no probability was ever computed
	Confidence *int // min(p_true+0.10, 1) * 100, nil when no probability was ever computed
}

// Document mirrors the schema's top-level object.
type Document struct {
	Identifier              *string   `json:"identifier"`
	FormatVersion           string    `json:"format-version"`
	ArchiveHocrToolsVersion string    `json:"archive-hocr-tools-version"`
	Confidence              int       `json:"confidence"`
	Pages                   []docPage `json:"pages"`
}

type docPage struct {
	LeafNum    int    `json:"leafNum"`
	Confidence *int   `json:"confidence"`
	PageNumber string `json:"pageNumber"`
	PageProb   *int   `json:"pageProb"`
	WordConf   *int   `json:"wordConf"`
}

// Build assembles a Document from per-page entries and the document-level
// confidence percentage. A nil identifier is written as JSON null.
func Build(identifier *string, archiveHocrToolsVersion string, docConfidence int, entries []PageEntry) *Document {
	pages := make([]docPage, len(entries))
	for i, e := range entries {
		pageNumber := ""
		if e.Candidate != nil {
			pageNumber = e.Candidate.Value
		}
		pages[i] = docPage{
			LeafNum:    e.LeafNum,
			Confidence: e.Confidence,
			PageNumber: pageNumber,
			PageProb:   e.PageProb,
			WordConf:   e.WordConf,
		}
	}
	return &Document{
		Identifier:              identifier,
		FormatVersion:           FormatVersion,
		ArchiveHocrToolsVersion: archiveHocrToolsVersion,
		Confidence:              docConfidence,
		Pages:                   pages,
	}
}

// PerPageConfidence computes the "confidence" field for a single page from
// its classifier probability: min(p_true+0.10, 1) * 100, rounded.
func PerPageConfidence(pTrue float64) int {
	c := pTrue + 0.10
	if c > 1 {
		c = 1
	}
	return int(c*100 + 0.5)
}

// Marshal renders doc as 4-space-indented JSON and validates it against the
// embedded output schema before returning it.
func Marshal(doc *Document) ([]byte, error) {
	raw, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("output: marshal document: %w", err)
	}

	if err := schema.Validate(schema.Output, raw); err != nil {
		return nil, fmt.Errorf("output: assembled document failed validation: %w", err)
	}
	return raw, nil
}
