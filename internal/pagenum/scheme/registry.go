// Package scheme implements the numbering-scheme registry: the preinstalled
// Arabic, Roman, and SingleLetter schemes, the Composite scheme family
// derived at runtime from observed samples, and the fixed-order matching
// contract every candidate extraction goes through.
package scheme

import (
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/pnerrors"
)

// Registry holds the preinstalled schemes plus any Composite schemes
// discovered so far, in fixed matching order: Arabic, Roman, SingleLetter,
// then composites in insertion order. Processing a document is
// single-threaded end to end, so the registry carries no locking.
type Registry struct {
	fixed      []model.Scheme
	composites []model.Scheme
	limit      int
	capReached bool
}

// NewRegistry builds a registry with the three preinstalled schemes and the
// given composite growth cap.
func NewRegistry(compositeLimit int) *Registry {
	return &Registry{
		fixed: []model.Scheme{Arabic{}, Roman{}, SingleLetter{}},
		limit: compositeLimit,
	}
}

// Schemes returns every scheme currently registered, in matching order.
func (r *Registry) Schemes() []model.Scheme {
	out := make([]model.Scheme, 0, len(r.fixed)+len(r.composites))
	out = append(out, r.fixed...)
	out = append(out, r.composites...)
	return out
}

// Match tries every registered scheme in order and returns the first whose
// SyntacticMatch(s) is true.
func (r *Registry) Match(s string) (model.Scheme, bool) {
	for _, sch := range r.Schemes() {
		if sch.SyntacticMatch(s) {
			return sch, true
		}
	}
	return nil, false
}

// Discover attempts to register a new Composite scheme derived from sample.
// It fails if the composite cap has already been reached, or if sample
// carries no digit run to build a template from. The caller logs once, the
// first time this returns pnerrors.ErrCompositeCapReached.
func (r *Registry) Discover(sample string) (*Composite, error) {
	if len(r.composites) >= r.limit {
		r.capReached = true
		return nil, pnerrors.ErrCompositeCapReached
	}
	c, err := NewComposite(sample)
	if err != nil {
		return nil, err
	}
	r.composites = append(r.composites, c)
	return c, nil
}

// CapReached reports whether the composite cap has ever been hit.
func (r *Registry) CapReached() bool {
	return r.capReached
}

// Len returns the total number of registered schemes, fixed plus composite.
func (r *Registry) Len() int {
	return len(r.fixed) + len(r.composites)
}
