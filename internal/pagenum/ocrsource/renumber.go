package ocrsource

// LeafRecord pairs a physical leaf with the effective (skip-adjusted) page
// index downstream components should use, or Skip == true if the leaf was
// removed by the scandata collaborator.
type LeafRecord struct {
	Leaf      int
	Effective int
	Page      Page
	Skip      bool
}

// Renumber walks pages in physical order, subtracting any leaf present in
// skipLeaves and densely renumbering the rest, so that a document with
// leaves [0,1,2,3,4] and skipLeaves {1} produces effective indices
// [0,-,1,2,3] (leaf 1 marked Skip).
func Renumber(pages []Page, skipLeaves map[int]bool) []LeafRecord {
	out := make([]LeafRecord, len(pages))
	skipped := 0
	for leaf, page := range pages {
		if skipLeaves[leaf] {
			skipped++
			out[leaf] = LeafRecord{Leaf: leaf, Page: page, Skip: true}
			continue
		}
		out[leaf] = LeafRecord{Leaf: leaf, Effective: leaf - skipped, Page: page}
	}
	return out
}
