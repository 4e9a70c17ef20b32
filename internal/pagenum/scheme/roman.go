package scheme

import (
	"fmt"
	"regexp"
	"strings"
)

// romanPattern accepts classical (subtractive) Roman numerals only, the same
// set FromNum ever produces, so the round-trip property in the invariants
// holds exactly.
var romanPattern = regexp.MustCompile(`(?i)^M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

var romanValues = []struct {
	symbol string
	value  int64
}{
	{"M", 1000}, {"CM", 900}, {"D", 500}, {"CD", 400},
	{"C", 100}, {"XC", 90}, {"L", 50}, {"XL", 40},
	{"X", 10}, {"IX", 9}, {"V", 5}, {"IV", 4}, {"I", 1},
}

// Roman recognizes classical Roman numerals, matched case-insensitively.
type Roman struct{}

func (Roman) Name() string               { return "roman" }
func (Roman) SupportsExtrapolation() bool { return true }

func (Roman) SyntacticMatch(s string) bool {
	return s != "" && romanPattern.MatchString(s)
}

func (Roman) NumeralValue(s string) (int64, error) {
	upper := strings.ToUpper(s)
	if upper == "" || !romanPattern.MatchString(upper) {
		return 0, fmt.Errorf("roman: %q: not a classical roman numeral", s)
	}
	var total int64
	for i := 0; i < len(upper); {
		matched := false
		for _, rv := range romanValues {
			if strings.HasPrefix(upper[i:], rv.symbol) {
				total += rv.value
				i += len(rv.symbol)
				matched = true
				break
			}
		}
		if !matched {
			return 0, fmt.Errorf("roman: %q: unrecognized numeral run at offset %d", s, i)
		}
	}
	return total, nil
}

func (Roman) FromNum(n int64) string {
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			n -= rv.value
			b.WriteString(rv.symbol)
		}
	}
	return b.String()
}

func (Roman) IsIncrease(baseValue int64, steps int, candidateValue int64) bool {
	return baseValue+int64(steps) == candidateValue
}
