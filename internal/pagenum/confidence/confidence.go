// Package confidence aggregates the observables of a finished inference
// run into a single document-level confidence percentage.
package confidence

import (
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/scheme"
)

// Assignment is one page's final outcome: the chosen candidate (nil for
// none) and, for non-synthetic assignments, the p_true the classifier
// assigned it (0 when no probability was ever computed, e.g. pass-1-only
// runs).
type Assignment struct {
	Candidate *model.PageNumberCandidate
	PTrue     float64
}

// RefinedSequence is a same-scheme run recovered from the final per-page
// assignments (as opposed to a Sequence formed mid-pipeline from raw
// candidates).
type RefinedSequence struct {
	Scheme     model.Scheme
	StartPage  int
	StartValue int64
}

// Compute implements the five-factor aggregator: each factor is clamped
// into [0,1] and the document confidence is their product, returned as an
// integer percent. An empty document, or one with no non-synthetic
// assignment, scores 0.
func Compute(assignments []Assignment, refined []RefinedSequence) int {
	total := len(assignments)
	if total == 0 {
		return 0
	}

	foundOrSynth, found := 0, 0
	var probSum float64
	for _, a := range assignments {
		if a.Candidate == nil {
			continue
		}
		foundOrSynth++
		if !a.Candidate.Synthetic {
			found++
			probSum += a.PTrue
		}
	}

	probAvg := 0.0
	if found > 0 {
		probAvg = probSum / float64(found)
	}
	synthRatio := 0.0
	if foundOrSynth > 0 {
		synthRatio = float64(found) / float64(foundOrSynth)
	}

	refinedSeqCount := len(refined)
	seqoffset := computeSeqoffset(refined)
	denom := refinedSeqCount - seqoffset
	if denom < 1 {
		denom = 1
	}
	pagesPerSeq := float64(total) / float64(denom)

	f1 := clamp01(float64(foundOrSynth)/float64(total) + 0.20)
	f2 := clamp01(float64(found)/float64(total) + 0.70)
	f3 := clamp01(synthRatio + 2.0/3.0)
	f4 := 0.0 // prob_avg divides by found: with no found pages this factor is 0
	if found > 0 {
		f4 = clamp01(probAvg + 0.10)
	}
	minSpan := float64(total)
	if minSpan > 30 {
		minSpan = 30
	}
	f5 := clamp01(pagesPerSeq/minSpan + 0.05)

	c := f1 * f2 * f3 * f4 * f5
	return int(c*100 + 0.5)
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// computeSeqoffset counts Arabic refined sequences that look like
// sub-continuations of an earlier Arabic sequence: for an ordered pair
// (A, B) with A before B, let leaf = B.start-A.start and val =
// B.value-A.value; if 0<leaf<20, 0<val<20, and 0<(leaf-val)<5, A
// contributes one to the offset and stops considering further pairings.
func computeSeqoffset(refined []RefinedSequence) int {
	var arabic []RefinedSequence
	for _, r := range refined {
		if r.Scheme == (scheme.Arabic{}) {
			arabic = append(arabic, r)
		}
	}

	offset := 0
	for i, a := range arabic {
		for j := i + 1; j < len(arabic); j++ {
			b := arabic[j]
			leaf := int64(b.StartPage - a.StartPage)
			val := b.StartValue - a.StartValue
			if leaf > 0 && leaf < 20 && val > 0 && val < 20 && (leaf-val) > 0 && (leaf-val) < 5 {
				offset++
				break
			}
		}
	}
	return offset
}
