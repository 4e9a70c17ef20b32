// Package edgefill implements the optional opportunistic edge filler:
// extending the earliest and latest confirmed page numbers towards the
// document's edges.
package edgefill

import "github.com/iarchive/hocr-pagenumber/internal/pagenum/model"

// Fill scans assigned forward from page 0, and again from the last page
// backward, synthesizing candidates in the same scheme at both ends.
//
// The backward walk from the first present candidate stops at page 0 or at
// numeral value 1, whichever comes first. The forward walk from the last
// present candidate runs unbounded to the end of the document, and
// overwrites any existing entries in that tail region unconditionally —
// this mirrors the run's own behavior; a filler invoked when the tail
// already has confirmed values would clobber them, which callers should
// only invoke this when the tail truly needs filling.
func Fill(assigned []*model.PageNumberCandidate) ([]*model.PageNumberCandidate, error) {
	out := make([]*model.PageNumberCandidate, len(assigned))
	copy(out, assigned)
	if len(out) == 0 {
		return out, nil
	}

	firstIdx := -1
	for i, c := range out {
		if c != nil {
			firstIdx = i
			break
		}
	}
	if firstIdx == -1 {
		return out, nil // nothing to anchor extrapolation on
	}
	if err := fillBackward(out, firstIdx); err != nil {
		return nil, err
	}

	lastIdx := -1
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] != nil {
			lastIdx = i
			break
		}
	}
	if err := fillForward(out, lastIdx); err != nil {
		return nil, err
	}

	return out, nil
}

func fillBackward(out []*model.PageNumberCandidate, firstIdx int) error {
	anchor := out[firstIdx]
	if !anchor.Scheme.SupportsExtrapolation() {
		return nil
	}
	value := anchor.NumValue
	for p := firstIdx - 1; p >= 0; p-- {
		value--
		if value < 1 {
			break
		}
		c, err := model.NewCandidate(anchor.Scheme.FromNum(value), anchor.Scheme, true, nil)
		if err != nil {
			return err
		}
		out[p] = c
	}
	return nil
}

func fillForward(out []*model.PageNumberCandidate, lastIdx int) error {
	if lastIdx == -1 {
		return nil
	}
	anchor := out[lastIdx]
	if !anchor.Scheme.SupportsExtrapolation() {
		return nil
	}
	value := anchor.NumValue
	for p := lastIdx + 1; p < len(out); p++ {
		value++
		c, err := model.NewCandidate(anchor.Scheme.FromNum(value), anchor.Scheme, true, nil)
		if err != nil {
			return err
		}
		out[p] = c // overwrites unconditionally, even if out[p] was already assigned
	}
	return nil
}
