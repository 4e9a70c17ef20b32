// Package trellis builds the per-document layered graph of page-number
// candidates and finds the minimum-cost path through it with Viterbi.
package trellis

import "github.com/iarchive/hocr-pagenumber/internal/pagenum/model"

// State is one node of a layer: either a candidate belonging to some
// sequence's i-th element, or the layer's distinguished "none" state when
// Candidate is nil.
type State struct {
	PageIndex int
	Candidate *model.PageNumberCandidate
}

type edgeKey struct {
	from, to int
}

// Trellis is the P-layer graph. Edges are keyed per destination layer:
// Edges[p] holds the costs of transitions from layer p-1 into layer p.
// Edges[0] is unused, since layer 0 has no predecessor.
type Trellis struct {
	Layers       [][]State
	Edges        []map[edgeKey]float64
	NoneCost     float64
	SentinelCost float64
	EmissionCost float64
}

// Build constructs a trellis over numPages layers from sequences, whose
// entries are assumed already gap-filled/contiguous where their scheme
// supports extrapolation. f is 3 in pass 1 and 1 in pass 2, rewarding
// longer sequences with cheaper internal transitions.
func Build(sequences []*model.Sequence, numPages int, f, noneCost, emissionCost float64) *Trellis {
	t := &Trellis{
		Layers:       make([][]State, numPages),
		Edges:        make([]map[edgeKey]float64, numPages),
		NoneCost:     noneCost,
		SentinelCost: noneCost + 1,
		EmissionCost: emissionCost,
	}
	for p := 0; p < numPages; p++ {
		t.Layers[p] = []State{{PageIndex: p}} // index 0: none
		t.Edges[p] = make(map[edgeKey]float64)
	}

	// stateIndex[seq][page] locates the state a sequence entry occupies,
	// so consecutive entries can be linked once all layers exist.
	type seqPage struct {
		seq  *model.Sequence
		page int
	}
	stateIndex := make(map[seqPage]int)

	for _, seq := range sequences {
		for _, e := range seq.Entries {
			t.Layers[e.PageIndex] = append(t.Layers[e.PageIndex], State{PageIndex: e.PageIndex, Candidate: e.Candidate})
			stateIndex[seqPage{seq, e.PageIndex}] = len(t.Layers[e.PageIndex]) - 1
		}
	}

	for _, seq := range sequences {
		n := seq.Len()
		cost := f / float64(n)
		for i := 0; i+1 < n; i++ {
			from := seq.Entries[i]
			to := seq.Entries[i+1]
			if to.PageIndex != from.PageIndex+1 {
				continue // not layer-adjacent; no direct edge to add
			}
			fromIdx := stateIndex[seqPage{seq, from.PageIndex}]
			toIdx := stateIndex[seqPage{seq, to.PageIndex}]
			t.Edges[to.PageIndex][edgeKey{fromIdx, toIdx}] = cost
		}
	}

	for p := 1; p < numPages; p++ {
		for from := range t.Layers[p-1] {
			t.setEdgeIfCheaper(p, from, 0, noneCost) // any state -> none
		}
		for to := range t.Layers[p] {
			t.setEdgeIfCheaper(p, 0, to, noneCost) // none -> any state
		}
	}

	return t
}

func (t *Trellis) setEdgeIfCheaper(layer, from, to int, cost float64) {
	k := edgeKey{from, to}
	if existing, ok := t.Edges[layer][k]; !ok || cost < existing {
		t.Edges[layer][k] = cost
	}
}

// Cost returns the transition cost from state `from` in layer-1 into state
// `to` in layer, or the sentinel cost if no edge was ever established.
func (t *Trellis) Cost(layer, from, to int) float64 {
	if c, ok := t.Edges[layer][edgeKey{from, to}]; ok {
		return c
	}
	return t.SentinelCost
}
