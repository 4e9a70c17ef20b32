package edgefill

import (
	"strconv"
	"testing"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/scheme"
)

func arabicCandidate(t *testing.T, value string) *model.PageNumberCandidate {
	t.Helper()
	var a scheme.Arabic
	obs := model.WordObservation{Text: value}
	c, err := model.NewCandidate(value, a, false, &obs)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestFill_BackwardStopsAtOne(t *testing.T) {
	assigned := make([]*model.PageNumberCandidate, 20)
	for p := 4; p < 20; p++ {
		assigned[p] = arabicCandidate(t, strconv.Itoa(p+1)) // page 4 -> "5"
	}
	filled, err := Fill(assigned)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1", "2", "3", "4"}
	for p := 0; p < 4; p++ {
		if filled[p] == nil || filled[p].Value != want[p] || !filled[p].Synthetic {
			t.Errorf("page %d = %v, want synthetic %q", p, filled[p], want[p])
		}
	}
}

func TestFill_ForwardUnboundedFromLast(t *testing.T) {
	assigned := make([]*model.PageNumberCandidate, 12)
	assigned[0] = arabicCandidate(t, "1")
	assigned[9] = arabicCandidate(t, "10")
	filled, err := Fill(assigned)
	if err != nil {
		t.Fatal(err)
	}
	for p := 10; p < 12; p++ {
		want := strconv.Itoa(p + 1)
		if filled[p] == nil || filled[p].Value != want {
			t.Errorf("page %d = %v, want synthetic %q", p, filled[p], want)
		}
	}
}

func TestFillForward_OverwritesWhateverIsAlreadyThere(t *testing.T) {
	// Documented oddity: the forward walk writes unconditionally, with no
	// check for an existing entry, so anything already occupying a tail
	// slot it walks through is clobbered rather than preserved.
	out := make([]*model.PageNumberCandidate, 5)
	out[1] = arabicCandidate(t, "2")
	out[4] = arabicCandidate(t, "999") // pre-existing, would be "downstream" of index 1
	if err := fillForward(out, 1); err != nil {
		t.Fatal(err)
	}
	if out[4].Value != "5" || !out[4].Synthetic {
		t.Errorf("page 4 = %v, want the forward walk to overwrite the pre-existing \"999\" with synthetic \"5\"", out[4])
	}
}

func TestFill_NoAssignmentsIsNoOp(t *testing.T) {
	assigned := make([]*model.PageNumberCandidate, 5)
	filled, err := Fill(assigned)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range filled {
		if c != nil {
			t.Error("Fill on an all-nil document should stay all-nil")
		}
	}
}
