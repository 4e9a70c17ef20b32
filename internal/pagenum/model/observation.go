package model

// WordObservation is a single OCR word as reported by the external OCR
// input collaborator (see internal/pagenum/ocrsource).
type WordObservation struct {
	BBox       BBox
	Text       string
	FontSize   int
	Confidence int // 0-100, per the OCR collaborator contract
}

// PageInfo carries page-level geometry needed by the feature extractor and
// the edge policy in the candidate extractor.
type PageInfo struct {
	Width, Height int
	// ContentBBox is the union of every word bbox seen on the page,
	// including words that were rejected as candidates.
	ContentBBox BBox
}

// UnionWord extends ContentBBox to also cover w.
func (p *PageInfo) UnionWord(w WordObservation) {
	p.ContentBBox = p.ContentBBox.Union(w.BBox)
}

// InCentralMargin reports whether bbox lies wholly inside the central
// 60%x60% region of the page, i.e. outside the 20% margin on every side.
func (p PageInfo) InCentralMargin(b BBox) bool {
	if p.Width <= 0 || p.Height <= 0 {
		return false
	}
	marginX := p.Width / 5  // 20%
	marginY := p.Height / 5 // 20%
	left := marginX
	right := p.Width - marginX
	top := marginY
	bottom := p.Height - marginY
	return b.X1 >= left && b.X2 <= right && b.Y1 >= top && b.Y2 <= bottom
}
