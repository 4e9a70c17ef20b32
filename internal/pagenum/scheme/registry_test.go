package scheme

import (
	"testing"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/pnerrors"
)

func TestRegistry_MatchOrder(t *testing.T) {
	r := NewRegistry(2500)
	cases := []struct {
		in     string
		scheme string
	}{
		{"42", "arabic"},
		{"xiv", "roman"},
		{"A", "singleletter"},
	}
	for _, c := range cases {
		sch, ok := r.Match(c.in)
		if !ok {
			t.Fatalf("Match(%q) found no scheme", c.in)
		}
		if sch.Name() != c.scheme {
			t.Errorf("Match(%q).Name() = %q, want %q", c.in, sch.Name(), c.scheme)
		}
	}
}

func TestRegistry_ArabicWinsOverSingleLetterAmbiguity(t *testing.T) {
	// "5" only matches Arabic; single letters never overlap with digits, but
	// this pins the fixed match order (arabic, roman, singleletter) so a
	// future scheme addition can't silently reorder it.
	r := NewRegistry(2500)
	sch, ok := r.Match("5")
	if !ok || sch.Name() != "arabic" {
		t.Fatalf("Match(%q) = %v, %v; want arabic, true", "5", sch, ok)
	}
}

func TestRegistry_Discover(t *testing.T) {
	r := NewRegistry(2500)
	c, err := r.Discover("A-1")
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 4 {
		t.Errorf("Len() = %d, want 4 after one discovery", r.Len())
	}
	sch, ok := r.Match("A-2")
	if !ok || sch != c {
		t.Errorf("Match(%q) should return the same composite instance just discovered", "A-2")
	}
}

func TestRegistry_CompositeCap(t *testing.T) {
	r := NewRegistry(1)
	if _, err := r.Discover("A-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Discover("B-1"); err != pnerrors.ErrCompositeCapReached {
		t.Errorf("Discover past cap = %v, want ErrCompositeCapReached", err)
	}
	if !r.CapReached() {
		t.Error("CapReached() = false after cap was hit")
	}
}

func TestRegistry_InsertionOrderPreserved(t *testing.T) {
	r := NewRegistry(2500)
	first, err := r.Discover("A-1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Discover("B-1")
	if err != nil {
		t.Fatal(err)
	}
	schemes := r.Schemes()
	if schemes[len(schemes)-2] != first || schemes[len(schemes)-1] != second {
		t.Error("composites should appear in insertion order after the three fixed schemes")
	}
}
