package trellis

import "math"

// Solve finds the minimum-cost path through the trellis, one state per
// layer, and returns the chosen candidate for every page (nil for "none").
func Solve(t *Trellis) []*State {
	numLayers := len(t.Layers)
	if numLayers == 0 {
		return nil
	}

	cost := make([][]float64, numLayers)
	back := make([][]int, numLayers)
	cost[0] = make([]float64, len(t.Layers[0]))
	back[0] = make([]int, len(t.Layers[0]))
	for s := range cost[0] {
		cost[0][s] = t.EmissionCost
		back[0][s] = -1
	}

	for p := 1; p < numLayers; p++ {
		cost[p] = make([]float64, len(t.Layers[p]))
		back[p] = make([]int, len(t.Layers[p]))
		for to := range t.Layers[p] {
			best := math.Inf(1)
			bestFrom := 0
			for from := range t.Layers[p-1] {
				c := cost[p-1][from] + t.Cost(p, from, to)
				if c < best {
					best = c
					bestFrom = from
				}
			}
			cost[p][to] = best + t.EmissionCost
			back[p][to] = bestFrom
		}
	}

	last := numLayers - 1
	bestIdx := 0
	bestCost := math.Inf(1)
	for s, c := range cost[last] {
		if c < bestCost {
			bestCost = c
			bestIdx = s
		}
	}

	path := make([]int, numLayers)
	path[last] = bestIdx
	for p := last; p > 0; p-- {
		path[p-1] = back[p][path[p]]
	}

	out := make([]*State, numLayers)
	for p, idx := range path {
		s := t.Layers[p][idx]
		out[p] = &s
	}
	return out
}
