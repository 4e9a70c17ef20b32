package classifier

import "github.com/iarchive/hocr-pagenumber/internal/pagenum/model"

// NumFeatures is the fixed feature vector width every observation is
// projected into before classification.
const NumFeatures = 40

// Extract builds the 40-dimensional feature vector for a word observation
// on a given page. Layout:
//
//	0-3   word bbox (x1,y1,x2,y2)
//	4-13  pairwise products of the bbox corners
//	14    floor(page_width / page_height)
//	15-18 page content bbox (x1,y1,x2,y2)
//	19    page parity: +1 even, -1 odd
//	20-38 features[0..18] each multiplied by feature[19]
//	39    word font size
func Extract(w model.WordObservation, info model.PageInfo, pageIndex int) [NumFeatures]float64 {
	var f [NumFeatures]float64

	x1, y1, x2, y2 := float64(w.BBox.X1), float64(w.BBox.Y1), float64(w.BBox.X2), float64(w.BBox.Y2)
	f[0], f[1], f[2], f[3] = x1, y1, x2, y2

	f[4] = x1 * x1
	f[5] = y1 * y1
	f[6] = x2 * x2
	f[7] = y2 * y2
	f[8] = x1 * y1
	f[9] = x1 * x2
	f[10] = x1 * y2
	f[11] = y1 * x2
	f[12] = y1 * y2
	f[13] = x2 * y2

	if info.Height != 0 {
		f[14] = float64(info.Width / info.Height)
	}

	f[15] = float64(info.ContentBBox.X1)
	f[16] = float64(info.ContentBBox.Y1)
	f[17] = float64(info.ContentBBox.X2)
	f[18] = float64(info.ContentBBox.Y2)

	parity := 1.0
	if pageIndex%2 != 0 {
		parity = -1.0
	}
	f[19] = parity

	for i := 0; i < 19; i++ {
		f[20+i] = f[i] * parity
	}

	f[39] = float64(w.FontSize)
	return f
}
