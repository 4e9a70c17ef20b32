// Package pnerrors defines the sentinel error kinds shared across the
// pagenum inference pipeline.
package pnerrors

import "errors"

var (
	// ErrInvalidComposite means a value purported to be composite failed
	// re-parsing against its own template. Programmer error: must not
	// happen for schemes derived from an accepted sample.
	ErrInvalidComposite = errors.New("pagenum: composite value does not match its own template")

	// ErrSchemeMismatch means a candidate of one scheme was attached to a
	// sequence of another. Caller contract violation; the enumerator never
	// does this by construction.
	ErrSchemeMismatch = errors.New("pagenum: candidate scheme does not match sequence scheme")

	// ErrSyntheticWithObservation means a candidate was constructed with
	// synthetic=true and a non-nil observation, or synthetic=false and a
	// nil observation. Constructor-time invariant.
	ErrSyntheticWithObservation = errors.New("pagenum: synthetic flag and observation presence disagree")

	// ErrTrainingUnderdetermined means the classifier training set had
	// zero positives or zero negatives. Recovered by the caller: skip
	// classifier training, fall through to pass-1 output.
	ErrTrainingUnderdetermined = errors.New("pagenum: classifier training set has zero positives or zero negatives")

	// ErrCompositeCapReached is logged once when the composite scheme
	// registry hits its cap; subsequent composite candidates are silently
	// ignored, not an error condition for the caller.
	ErrCompositeCapReached = errors.New("pagenum: composite scheme registry cap reached")

	// ErrExternalIO wraps a failure from the OCR or scandata collaborator.
	// Fatal to the run.
	ErrExternalIO = errors.New("pagenum: external collaborator I/O failure")

	// ErrOutOfOrder means a sequence append was attempted with a page
	// index that does not strictly increase.
	ErrOutOfOrder = errors.New("pagenum: page index does not strictly increase")

	// ErrSequenceTooShort means a sequence has fewer than two entries
	// after enumeration and must be discarded.
	ErrSequenceTooShort = errors.New("pagenum: sequence shorter than minimum length 2")
)
