package model

import "github.com/iarchive/hocr-pagenumber/internal/pagenum/pnerrors"

// Prob is the (p_false, p_true) pair a classifier assigns to a candidate's
// backing word. Assigned at most once, in pass 2 only.
type Prob struct {
	PFalse, PTrue float64
}

// PageNumberCandidate is a word observation (or, for gap-filled entries, a
// synthesized value) deemed syntactically consistent with some numbering
// scheme.
//
// Invariant: Synthetic == true iff Observation == nil. NumValue always
// equals Scheme.NumeralValue(Value) — enforced at construction, never
// mutated afterward.
type PageNumberCandidate struct {
	Value       string
	NumValue    int64
	Scheme      Scheme
	Synthetic   bool
	Observation *WordObservation
	Prob        *Prob
}

// NewCandidate constructs a candidate, enforcing the synthetic/observation
// invariant and computing NumValue from the scheme.
func NewCandidate(value string, scheme Scheme, synthetic bool, observation *WordObservation) (*PageNumberCandidate, error) {
	if synthetic == (observation != nil) {
		return nil, pnerrors.ErrSyntheticWithObservation
	}
	numValue, err := scheme.NumeralValue(value)
	if err != nil {
		return nil, err
	}
	return &PageNumberCandidate{
		Value:       value,
		NumValue:    numValue,
		Scheme:      scheme,
		Synthetic:   synthetic,
		Observation: observation,
	}, nil
}

// SetProb assigns the classifier's probability estimate for this
// candidate's backing observation. Should be called at most once; callers
// that call it twice silently overwrite.
func (c *PageNumberCandidate) SetProb(p Prob) {
	c.Prob = &p
}
