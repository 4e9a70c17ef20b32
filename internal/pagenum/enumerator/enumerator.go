// Package enumerator groups per-page candidates into monotonically
// increasing, same-scheme sequences, parking runs whose density drops too
// low, and fills the gaps of the sequences that survive.
package enumerator

import "github.com/iarchive/hocr-pagenumber/internal/pagenum/model"

// Enumerate performs a single first-fit pass over pageCandidates (indexed
// by page) and returns every sequence of length >= 2: both those parked
// when their density fell below threshold and those still active at the
// document's end.
//
// Tie-breaking is first-fit in current active-list order; there is no
// backtracking, matching the greedy design this grouping strategy commits
// to.
func Enumerate(pageCandidates [][]*model.PageNumberCandidate, threshold float64) []*model.Sequence {
	var active []*model.Sequence
	var parked []*model.Sequence

	for page, candidates := range pageCandidates {
		for _, c := range candidates {
			appended := false
			for _, seq := range active {
				tail := seq.Last()
				if tail.Candidate.Scheme != c.Scheme {
					continue
				}
				if page == tail.PageIndex || c == tail.Candidate {
					continue
				}
				if !c.Scheme.IsIncrease(tail.Candidate.NumValue, page-tail.PageIndex, c.NumValue) {
					continue
				}
				_ = seq.Append(page, c) // invariants above guarantee this succeeds
				appended = true
				break
			}
			if !appended {
				active = append(active, model.NewSequence(page, c))
			}
		}

		// Snapshot before removal: parking while iterating and mutating the
		// same slice in place is sensitive to iteration order and can leave
		// a stale sequence unparked. Building a fresh slice from a
		// snapshot avoids that.
		snapshot := active
		active = active[:0:0]
		for _, seq := range snapshot {
			span := page - seq.First().PageIndex
			density := 1.0
			if span > 0 {
				density = float64(seq.Len()) / float64(span)
			}
			if density < threshold {
				parked = append(parked, seq)
			} else {
				active = append(active, seq)
			}
		}
	}

	parked = append(parked, active...)

	out := parked[:0]
	for _, seq := range parked {
		if seq.Len() >= 2 {
			out = append(out, seq)
		}
	}
	return out
}
