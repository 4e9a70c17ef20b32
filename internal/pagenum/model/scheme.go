package model

// Scheme is the capability set every numbering scheme (Arabic, Roman,
// SingleLetter, Composite) implements. Dispatch is by interface, never by
// inheritance: each concrete scheme is a distinct type satisfying this
// interface, and the registry holds a flat, ordered slice of them.
//
// Implementations are expected to be comparable with ==, since candidates
// and sequences use scheme identity (not just scheme kind) to decide
// whether two candidates belong to the same run — this matters for
// composite schemes, where two different templates are both "Composite"
// but are different schemes.
type Scheme interface {
	// Name identifies the scheme for logging and output, e.g. "arabic",
	// "roman", "singleletter", or "composite:" followed by a composite's
	// template string.
	Name() string

	// SupportsExtrapolation reports whether the gap filler and
	// opportunistic edge filler may synthesize values for this scheme.
	SupportsExtrapolation() bool

	// SyntacticMatch reports whether s is a value this scheme recognizes.
	SyntacticMatch(s string) bool

	// NumeralValue converts a syntactically valid value to its integer
	// value. Callers must have already confirmed SyntacticMatch(s).
	NumeralValue(s string) (int64, error)

	// FromNum formats an integer value back into the scheme's canonical
	// string form.
	FromNum(n int64) string

	// IsIncrease reports whether candidateValue is consistent with having
	// advanced exactly steps positions from baseValue, i.e.
	// baseValue + steps == candidateValue.
	IsIncrease(baseValue int64, steps int, candidateValue int64) bool
}
