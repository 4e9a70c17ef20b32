package enumerator

import "github.com/iarchive/hocr-pagenumber/internal/pagenum/model"

// FillGaps produces, for each input sequence whose scheme supports
// extrapolation, a new sequence covering every page from first to last
// with synthesized candidates filling the holes. Sequences whose scheme
// does not extrapolate pass through unchanged.
func FillGaps(sequences []*model.Sequence) ([]*model.Sequence, error) {
	out := make([]*model.Sequence, len(sequences))
	for i, seq := range sequences {
		if !seq.Scheme.SupportsExtrapolation() {
			out[i] = seq
			continue
		}
		filled, err := fillOne(seq)
		if err != nil {
			return nil, err
		}
		out[i] = filled
	}
	return out, nil
}

func fillOne(seq *model.Sequence) (*model.Sequence, error) {
	byPage := make(map[int]model.SequenceEntry, seq.Len())
	for _, e := range seq.Entries {
		byPage[e.PageIndex] = e
	}

	first := seq.First()
	filled := model.NewSequence(first.PageIndex, first.Candidate)
	baseValue := first.Candidate.NumValue

	for page := first.PageIndex + 1; page <= seq.Last().PageIndex; page++ {
		if e, ok := byPage[page]; ok {
			if err := filled.Append(page, e.Candidate); err != nil {
				return nil, err
			}
			continue
		}
		expected := baseValue + int64(page-first.PageIndex)
		value := seq.Scheme.FromNum(expected)
		cand, err := model.NewCandidate(value, seq.Scheme, true, nil)
		if err != nil {
			return nil, err
		}
		if err := filled.Append(page, cand); err != nil {
			return nil, err
		}
	}
	return filled, nil
}
