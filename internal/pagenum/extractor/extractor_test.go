package extractor

import (
	"math/rand"
	"testing"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/ocrsource"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/scheme"
)

func word(text string, x1, y1, x2, y2 int) ocrsource.Word {
	return ocrsource.Word{BBox: model.BBox{X1: x1, Y1: y1, X2: x2, Y2: y2}, Text: text, FontSize: 10, Confidence: 90}
}

func leaves(pages ...ocrsource.Page) []ocrsource.LeafRecord {
	out := make([]ocrsource.LeafRecord, len(pages))
	for i, p := range pages {
		out[i] = ocrsource.LeafRecord{Leaf: i, Effective: i, Page: p}
	}
	return out
}

func TestExtract_ArabicMatch(t *testing.T) {
	page := ocrsource.Page{
		Width: 1000, Height: 1000,
		Paragraphs: []ocrsource.Paragraph{{Lines: []ocrsource.Line{{Words: []ocrsource.Word{
			word("1", 480, 950, 520, 980),
		}}}}},
	}
	registry := scheme.NewRegistry(2500)
	res := Extract(leaves(page), registry, Options{NegativesPerPage: 10, Rand: rand.New(rand.NewSource(42))})
	if len(res.PageMatches[0]) != 1 {
		t.Fatalf("PageMatches[0] = %d candidates, want 1", len(res.PageMatches[0]))
	}
	c := res.PageMatches[0][0]
	if c.Value != "1" || c.Synthetic {
		t.Errorf("candidate = %+v, want value=1 synthetic=false", c)
	}
}

func TestExtract_CompositeDiscovery(t *testing.T) {
	page := ocrsource.Page{
		Width: 1000, Height: 1000,
		Paragraphs: []ocrsource.Paragraph{{Lines: []ocrsource.Line{{Words: []ocrsource.Word{
			word("A-1", 480, 950, 520, 980),
		}}}}},
	}
	registry := scheme.NewRegistry(2500)
	res := Extract(leaves(page), registry, Options{NegativesPerPage: 10, Rand: rand.New(rand.NewSource(42))})
	if len(res.PageMatches[0]) != 1 {
		t.Fatalf("PageMatches[0] = %d candidates, want 1", len(res.PageMatches[0]))
	}
	if registry.Len() != 4 {
		t.Errorf("registry.Len() = %d, want 4 after discovering one composite", registry.Len())
	}
}

func TestExtract_NonMatchIsNegative(t *testing.T) {
	page := ocrsource.Page{
		Width: 1000, Height: 1000,
		Paragraphs: []ocrsource.Paragraph{{Lines: []ocrsource.Line{{Words: []ocrsource.Word{
			word("Chapter", 100, 100, 300, 130),
		}}}}},
	}
	registry := scheme.NewRegistry(2500)
	res := Extract(leaves(page), registry, Options{NegativesPerPage: 3, Rand: rand.New(rand.NewSource(42))})
	if len(res.PageMatches[0]) != 0 {
		t.Errorf("PageMatches[0] should be empty for a non-numeric word")
	}
	if len(res.PageNonMatches[0]) != 3 {
		t.Errorf("PageNonMatches[0] = %d, want 3 (sampled with replacement)", len(res.PageNonMatches[0]))
	}
}

func TestExtract_SkippedLeafProducesNoOutput(t *testing.T) {
	pages := []ocrsource.Page{
		{Width: 100, Height: 100},
		{Width: 100, Height: 100},
	}
	records := []ocrsource.LeafRecord{
		{Leaf: 0, Effective: 0, Page: pages[0]},
		{Leaf: 1, Page: pages[1], Skip: true},
	}
	registry := scheme.NewRegistry(2500)
	res := Extract(records, registry, Options{NegativesPerPage: 10, Rand: rand.New(rand.NewSource(42))})
	if len(res.PageMatches) != 1 {
		t.Fatalf("PageMatches has %d entries, want 1 (skip leaf excluded)", len(res.PageMatches))
	}
}

func TestExtract_EdgePolicySkipsCentralWordsAfterThreshold(t *testing.T) {
	// Central word (inside the 20% margins on all sides of a 1000x1000
	// page) should not be considered once negativesPerPage negatives have
	// already accumulated from the margins.
	var words []ocrsource.Word
	for i := 0; i < 2; i++ {
		words = append(words, word("Body", 10, 10, 50, 30)) // top-left margin, non-central
	}
	words = append(words, word("999", 490, 490, 510, 510)) // dead center
	page := ocrsource.Page{
		Width: 1000, Height: 1000,
		Paragraphs: []ocrsource.Paragraph{{Lines: []ocrsource.Line{{Words: words}}}},
	}
	registry := scheme.NewRegistry(2500)
	res := Extract(leaves(page), registry, Options{NegativesPerPage: 2, Rand: rand.New(rand.NewSource(42))})
	if len(res.PageMatches[0]) != 0 {
		t.Errorf("central word after negative threshold should be skipped, got %d matches", len(res.PageMatches[0]))
	}
}
