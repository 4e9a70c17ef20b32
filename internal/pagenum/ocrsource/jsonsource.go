package ocrsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/pnerrors"
)

// jsonWord/jsonLine/jsonParagraph/jsonPage mirror Word/Line/Paragraph/Page
// with JSON tags, kept separate from the domain types so ocrsource.Page
// stays free of serialization concerns.
type jsonWord struct {
	BBox       [4]int `json:"bbox"`
	Text       string `json:"text"`
	FontSize   int    `json:"fontsize"`
	Confidence int    `json:"confidence"`
}

type jsonLine struct {
	Words []jsonWord `json:"words"`
}

type jsonParagraph struct {
	Lines []jsonLine `json:"lines"`
}

type jsonPage struct {
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Paragraphs []jsonParagraph `json:"paragraphs"`
}

type jsonDocument struct {
	Pages []jsonPage `json:"pages"`
}

// JSONSource is a Source backed by a simple JSON document, used for tests
// and pipelines that already have OCR output as JSON rather than hOCR/XML.
type JSONSource struct {
	pages []Page
}

// NewJSONSource decodes r into a JSONSource.
func NewJSONSource(r io.Reader) (*JSONSource, error) {
	var doc jsonDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ocrsource: decoding json document: %w: %v", pnerrors.ErrExternalIO, err)
	}
	pages := make([]Page, len(doc.Pages))
	for i, jp := range doc.Pages {
		paragraphs := make([]Paragraph, len(jp.Paragraphs))
		for pi, jpara := range jp.Paragraphs {
			lines := make([]Line, len(jpara.Lines))
			for li, jline := range jpara.Lines {
				words := make([]Word, len(jline.Words))
				for wi, jw := range jline.Words {
					words[wi] = Word{
						BBox:       model.BBox{X1: jw.BBox[0], Y1: jw.BBox[1], X2: jw.BBox[2], Y2: jw.BBox[3]},
						Text:       jw.Text,
						FontSize:   jw.FontSize,
						Confidence: jw.Confidence,
					}
				}
				lines[li] = Line{Words: words}
			}
			paragraphs[pi] = Paragraph{Lines: lines}
		}
		pages[i] = Page{Width: jp.Width, Height: jp.Height, Paragraphs: paragraphs}
	}
	return &JSONSource{pages: pages}, nil
}

func (s *JSONSource) Pages(ctx context.Context) ([]Page, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return s.pages, nil
}

// JSONScandata is a ScandataSource backed by the internal/schema "scandata"
// document shape: {"skip_leaves": [...]}.
type JSONScandata struct {
	SkipLeavesList []int `json:"skip_leaves"`
}

// NewJSONScandata decodes r into a JSONScandata.
func NewJSONScandata(r io.Reader) (*JSONScandata, error) {
	var s JSONScandata
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("ocrsource: decoding json scandata: %w: %v", pnerrors.ErrExternalIO, err)
	}
	return &s, nil
}

func (s *JSONScandata) SkipLeaves(ctx context.Context) (map[int]bool, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	out := make(map[int]bool, len(s.SkipLeavesList))
	for _, leaf := range s.SkipLeavesList {
		out[leaf] = true
	}
	return out, nil
}
