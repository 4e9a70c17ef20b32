package model

import "github.com/iarchive/hocr-pagenumber/internal/pagenum/pnerrors"

// SequenceEntry pairs a page index with the candidate assigned to it.
type SequenceEntry struct {
	PageIndex int
	Candidate *PageNumberCandidate
}

// Sequence is an ordered, same-scheme, integer-consecutive run of
// candidates across strictly increasing page indices:
//
//	for all i<j: Entries[i].PageIndex < Entries[j].PageIndex, and
//	Entries[j].Candidate.NumValue - Entries[i].Candidate.NumValue ==
//	Entries[j].PageIndex - Entries[i].PageIndex.
type Sequence struct {
	Scheme  Scheme
	Entries []SequenceEntry
}

// NewSequence starts a new sequence with a single entry.
func NewSequence(pageIndex int, c *PageNumberCandidate) *Sequence {
	return &Sequence{
		Scheme:  c.Scheme,
		Entries: []SequenceEntry{{PageIndex: pageIndex, Candidate: c}},
	}
}

// Append adds an entry to the tail of the sequence, checking scheme
// identity and strictly-increasing page order. It does not check the
// is-increase arithmetic relationship — that is the enumerator's job,
// since it must consult the scheme's IsIncrease before deciding to append
// at all.
func (s *Sequence) Append(pageIndex int, c *PageNumberCandidate) error {
	if c.Scheme != s.Scheme {
		return pnerrors.ErrSchemeMismatch
	}
	if len(s.Entries) > 0 && pageIndex <= s.Last().PageIndex {
		return pnerrors.ErrOutOfOrder
	}
	s.Entries = append(s.Entries, SequenceEntry{PageIndex: pageIndex, Candidate: c})
	return nil
}

// First returns the earliest entry.
func (s *Sequence) First() SequenceEntry {
	return s.Entries[0]
}

// Last returns the latest entry.
func (s *Sequence) Last() SequenceEntry {
	return s.Entries[len(s.Entries)-1]
}

// Len returns the number of entries.
func (s *Sequence) Len() int {
	return len(s.Entries)
}

// Span returns the distance in pages from the first to the last entry
// (last.PageIndex - first.PageIndex); a single-entry sequence has span 0.
func (s *Sequence) Span() int {
	return s.Last().PageIndex - s.First().PageIndex
}

// Density is length / span, or 1 when span is zero (a single-page
// sequence that has not yet grown).
func (s *Sequence) Density() float64 {
	span := s.Span()
	if span == 0 {
		return 1
	}
	return float64(s.Len()) / float64(span)
}
