package scheme

import "testing"

func TestRoman_SyntacticMatch(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"i", true},
		{"IV", true},
		{"xiv", true},
		{"MCMXCIV", true},
		{"", false},
		{"IIII", false}, // not classical (subtractive) form
		{"VX", false},
		{"12", false},
	}
	var r Roman
	for _, c := range cases {
		if got := r.SyntacticMatch(c.in); got != c.want {
			t.Errorf("SyntacticMatch(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRoman_NumeralValue(t *testing.T) {
	var r Roman
	cases := []struct {
		in   string
		want int64
	}{
		{"i", 1},
		{"iv", 4},
		{"v", 5},
		{"ix", 9},
		{"x", 10},
		{"xiv", 14},
		{"xl", 40},
		{"mcmxciv", 1994},
	}
	for _, c := range cases {
		got, err := r.NumeralValue(c.in)
		if err != nil {
			t.Fatalf("NumeralValue(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("NumeralValue(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestRoman_CanonicalRoundTrip(t *testing.T) {
	var r Roman
	for _, canonical := range []string{"I", "IV", "IX", "XL", "XC", "CD", "CM", "MCMXCIV", "MMXXIV"} {
		n, err := r.NumeralValue(canonical)
		if err != nil {
			t.Fatalf("NumeralValue(%q): %v", canonical, err)
		}
		if got := r.FromNum(n); got != canonical {
			t.Errorf("FromNum(NumeralValue(%q)) = %q, want %q", canonical, got, canonical)
		}
	}
}
