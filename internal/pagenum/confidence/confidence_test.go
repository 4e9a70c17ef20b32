package confidence

import (
	"testing"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/scheme"
)

func nonSyntheticCandidate(t *testing.T, value string, sch model.Scheme) *model.PageNumberCandidate {
	t.Helper()
	obs := model.WordObservation{Text: value}
	c, err := model.NewCandidate(value, sch, false, &obs)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCompute_EmptyDocument(t *testing.T) {
	if got := Compute(nil, nil); got != 0 {
		t.Errorf("Compute(nil, nil) = %d, want 0", got)
	}
}

func TestCompute_FullyAssignedHighConfidence(t *testing.T) {
	var a scheme.Arabic
	var assignments []Assignment
	for i := 1; i <= 10; i++ {
		c := nonSyntheticCandidate(t, string(rune('0'+i%10)), a)
		assignments = append(assignments, Assignment{Candidate: c, PTrue: 0.95})
	}
	refined := []RefinedSequence{{Scheme: a, StartPage: 0, StartValue: 1}}
	got := Compute(assignments, refined)
	if got < 85 {
		t.Errorf("Compute() = %d, want >= 85 for a fully assigned, high-confidence run", got)
	}
}

func TestCompute_AllNoneIsZero(t *testing.T) {
	assignments := make([]Assignment, 10)
	got := Compute(assignments, nil)
	if got != 0 {
		t.Errorf("Compute(all none) = %d, want 0", got)
	}
}

func TestSeqoffset_SubContinuationDetected(t *testing.T) {
	var a scheme.Arabic
	refined := []RefinedSequence{
		{Scheme: a, StartPage: 0, StartValue: 1},
		{Scheme: a, StartPage: 10, StartValue: 8}, // leaf=10, val=7, leaf-val=3 -> counted
	}
	if got := computeSeqoffset(refined); got != 1 {
		t.Errorf("computeSeqoffset() = %d, want 1", got)
	}
}

func TestSeqoffset_DifferentSchemesNotCounted(t *testing.T) {
	var a scheme.Arabic
	var r scheme.Roman
	refined := []RefinedSequence{
		{Scheme: a, StartPage: 0, StartValue: 1},
		{Scheme: r, StartPage: 10, StartValue: 8},
	}
	if got := computeSeqoffset(refined); got != 0 {
		t.Errorf("computeSeqoffset() = %d, want 0 (roman sequences are never counted)", got)
	}
}
