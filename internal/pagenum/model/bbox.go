package model

// BBox is an axis-aligned bounding box in page pixel coordinates,
// (x1,y1) top-left, (x2,y2) bottom-right.
type BBox struct {
	X1, Y1, X2, Y2 int
}

// Empty reports whether the box has never been assigned any content
// (the zero value, used before the first Union call on a page).
func (b BBox) Empty() bool {
	return b == BBox{}
}

// Union returns the smallest box containing both b and o. If b is Empty,
// o is returned unchanged so a running union can start from the zero value.
func (b BBox) Union(o BBox) BBox {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return BBox{
		X1: min(b.X1, o.X1),
		Y1: min(b.Y1, o.Y1),
		X2: max(b.X2, o.X2),
		Y2: max(b.Y2, o.Y2),
	}
}

// Width returns the box width.
func (b BBox) Width() int { return b.X2 - b.X1 }

// Height returns the box height.
func (b BBox) Height() int { return b.Y2 - b.Y1 }
