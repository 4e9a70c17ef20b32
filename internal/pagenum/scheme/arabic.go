package scheme

import (
	"fmt"
	"regexp"
	"strconv"
)

var arabicPattern = regexp.MustCompile(`^\d+$`)

// Arabic recognizes plain decimal page numbers, e.g. "1", "42", "007".
type Arabic struct{}

func (Arabic) Name() string                 { return "arabic" }
func (Arabic) SupportsExtrapolation() bool   { return true }
func (Arabic) SyntacticMatch(s string) bool  { return arabicPattern.MatchString(s) }

func (Arabic) NumeralValue(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("arabic: %q: %w", s, err)
	}
	return n, nil
}

func (Arabic) FromNum(n int64) string {
	return strconv.FormatInt(n, 10)
}

func (Arabic) IsIncrease(baseValue int64, steps int, candidateValue int64) bool {
	return baseValue+int64(steps) == candidateValue
}
