package trellis

import (
	"strconv"
	"testing"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/scheme"
)

func arabicCandidate(t *testing.T, value string) *model.PageNumberCandidate {
	t.Helper()
	var a scheme.Arabic
	obs := model.WordObservation{Text: value}
	c, err := model.NewCandidate(value, a, false, &obs)
	if err != nil {
		t.Fatalf("NewCandidate(%q): %v", value, err)
	}
	return c
}

func romanCandidate(t *testing.T, value string) *model.PageNumberCandidate {
	t.Helper()
	var r scheme.Roman
	obs := model.WordObservation{Text: value}
	c, err := model.NewCandidate(value, r, false, &obs)
	if err != nil {
		t.Fatalf("NewCandidate(%q): %v", value, err)
	}
	return c
}

func TestSolve_PrefersLongDenseSequence(t *testing.T) {
	seq := model.NewSequence(0, arabicCandidate(t, "1"))
	for p := 1; p < 10; p++ {
		if err := seq.Append(p, arabicCandidate(t, strconv.Itoa(p+1))); err != nil {
			t.Fatalf("Append(%d): %v", p, err)
		}
	}

	tr := Build([]*model.Sequence{seq}, 10, 3, 2.0, 1.0)
	path := Solve(tr)
	for p, s := range path {
		want := strconv.Itoa(p + 1)
		if s.Candidate == nil {
			t.Errorf("page %d: assigned none, want %q", p, want)
			continue
		}
		if s.Candidate.Value != want {
			t.Errorf("page %d: assigned %q, want %q", p, s.Candidate.Value, want)
		}
	}
}

func TestSolve_EmptyDocumentPrefersNone(t *testing.T) {
	tr := Build(nil, 5, 3, 2.0, 1.0)
	path := Solve(tr)
	if len(path) != 5 {
		t.Fatalf("Solve() = %d entries, want 5", len(path))
	}
	for p, s := range path {
		if s.Candidate != nil {
			t.Errorf("page %d: assigned %v, want none (no sequences at all)", p, s.Candidate)
		}
	}
}

func TestCost_SentinelBetweenUnrelatedSequences(t *testing.T) {
	seqA := model.NewSequence(0, arabicCandidate(t, "1"))
	if err := seqA.Append(1, arabicCandidate(t, "2")); err != nil {
		t.Fatal(err)
	}
	seqB := model.NewSequence(0, romanCandidate(t, "i"))
	if err := seqB.Append(1, romanCandidate(t, "ii")); err != nil {
		t.Fatal(err)
	}

	tr := Build([]*model.Sequence{seqA, seqB}, 2, 3, 2.0, 1.0)
	// Layer states: index 0 is none, 1 is seqA's candidate, 2 is seqB's.
	// seqA's page-0 state has no established edge into seqB's page-1
	// state, so the lookup must fall back to the sentinel.
	if got := tr.Cost(1, 1, 2); got != tr.SentinelCost {
		t.Errorf("Cost(1,1,2) = %v, want sentinel %v", got, tr.SentinelCost)
	}
	// But seqA's own within-sequence edge is real and cheap.
	if got := tr.Cost(1, 1, 1); got != 3.0/2.0 {
		t.Errorf("Cost(1,1,1) = %v, want 1.5 (F=3 / N=2)", got)
	}
}
