package scheme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// compositeBase is the base groups are packed in, per digit group.
const compositeBase int64 = 1_000_000_000_000 // 10^12

var digitRun = regexp.MustCompile(`\d+`)

// simpleCompositeForms are the templates that qualify a composite scheme for
// extrapolation: (d), Ad, dA, (d)(d), (d)d, d/d, d.d, d-d, with d a 1-8
// digit run and A an uppercase letter run. Ad also accepts a dash between
// the letters and the digits (A1 and A-1).
var simpleCompositeForms = []*regexp.Regexp{
	regexp.MustCompile(`^\(\d{1,8}\)$`),                // (d)
	regexp.MustCompile(`^[A-Z]+-?\d{1,8}$`),            // Ad
	regexp.MustCompile(`^\d{1,8}[A-Z]+$`),              // dA
	regexp.MustCompile(`^\(\d{1,8}\)\(\d{1,8}\)$`),     // (d)(d)
	regexp.MustCompile(`^\(\d{1,8}\)\d{1,8}$`),         // (d)d
	regexp.MustCompile(`^\d{1,8}/\d{1,8}$`),            // d/d
	regexp.MustCompile(`^\d{1,8}\.\d{1,8}$`),           // d.d
	regexp.MustCompile(`^\d{1,8}-\d{1,8}$`),            // d-d
}

// IsSimpleCompositeForm reports whether s has the shape of one of the eight
// recognized simple composite templates, independent of whether any
// Composite scheme has actually been derived from it yet. The candidate
// extractor uses this to decide whether an unmatched word is eligible for
// on-the-fly composite discovery.
func IsSimpleCompositeForm(s string) bool {
	for _, form := range simpleCompositeForms {
		if form.MatchString(s) {
			return true
		}
	}
	return false
}

// Composite recognizes values matching a template derived from a single
// observed sample: every maximal digit run in the sample becomes a hole,
// everything else is literal. Two Composite values are distinct schemes
// even when they format identically, since scheme identity is by instance.
type Composite struct {
	template   string   // human-readable form, e.g. "A-<d>", used for Name/logging
	literals   []string // len(literals) == holes+1; literals[i] precedes hole i, the last follows the final hole
	pattern    *regexp.Regexp
	holes      int
	extrapolate bool
}

// NewComposite derives a composite scheme's template from sample. It
// returns an error if sample contains no digit run, since a composite
// scheme must have at least one hole.
func NewComposite(sample string) (*Composite, error) {
	locs := digitRun.FindAllStringIndex(sample, -1)
	if len(locs) == 0 {
		return nil, fmt.Errorf("composite: %q: no digit run to build a template from", sample)
	}

	var literals []string
	var patternBuilder strings.Builder
	var templateBuilder strings.Builder
	patternBuilder.WriteString("^")

	prev := 0
	for _, loc := range locs {
		lit := sample[prev:loc[0]]
		literals = append(literals, lit)
		patternBuilder.WriteString(regexp.QuoteMeta(lit))
		patternBuilder.WriteString(`(\d{1,8})`)
		templateBuilder.WriteString(lit)
		templateBuilder.WriteString("<d>")
		prev = loc[1]
	}
	tail := sample[prev:]
	literals = append(literals, tail)
	patternBuilder.WriteString(regexp.QuoteMeta(tail))
	patternBuilder.WriteString("$")
	templateBuilder.WriteString(tail)

	pattern, err := regexp.Compile(patternBuilder.String())
	if err != nil {
		return nil, fmt.Errorf("composite: %q: %w", sample, err)
	}

	extrapolate := false
	for _, form := range simpleCompositeForms {
		if form.MatchString(sample) {
			extrapolate = true
			break
		}
	}

	return &Composite{
		template:    templateBuilder.String(),
		literals:    literals,
		pattern:     pattern,
		holes:       len(locs),
		extrapolate: extrapolate,
	}, nil
}

func (c *Composite) Name() string                { return "composite:" + c.template }
func (c *Composite) SupportsExtrapolation() bool  { return c.extrapolate }
func (c *Composite) SyntacticMatch(s string) bool { return c.pattern.MatchString(s) }

func (c *Composite) NumeralValue(s string) (int64, error) {
	m := c.pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("composite: %q: does not match template %s", s, c.template)
	}
	var value int64
	for i := 1; i < len(m); i++ {
		g, err := strconv.ParseInt(m[i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("composite: %q: digit group %d: %w", s, i, err)
		}
		value = value*compositeBase + g
	}
	return value, nil
}

// FromNum reconstructs the string for a value this scheme produced,
// unpacking digit groups least-significant-first and formatting each in
// plain decimal with no zero padding. Values whose original string carried
// leading zeros in a hole do not round-trip through FromNum; the extractor
// never needs to do that round trip on real input, only the gap filler
// synthesizing unseen values does, where no original width exists to
// preserve anyway.
func (c *Composite) FromNum(n int64) string {
	groups := make([]int64, c.holes)
	for i := c.holes - 1; i >= 0; i-- {
		groups[i] = n % compositeBase
		n /= compositeBase
	}
	var b strings.Builder
	for i, lit := range c.literals {
		b.WriteString(lit)
		if i < c.holes {
			b.WriteString(strconv.FormatInt(groups[i], 10))
		}
	}
	return b.String()
}

func (c *Composite) IsIncrease(baseValue int64, steps int, candidateValue int64) bool {
	return baseValue+int64(steps) == candidateValue
}
