package classifier

import (
	"math"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
)

// varSmoothing mirrors the small epsilon Gaussian-NB implementations add to
// every feature's variance so a constant feature within a class never
// produces a zero-variance (and hence infinite-density) column.
const varSmoothing = 1e-9

// GaussianNaiveBayes fits a per-class Gaussian per standardized feature and
// classifies by naive (independence-assumed) Bayes.
type GaussianNaiveBayes struct {
	mean  [2][NumFeatures]float64
	varnc [2][NumFeatures]float64
	prior [2]float64
}

func (nb *GaussianNaiveBayes) Fit(x [][NumFeatures]float64, y []int) error {
	if err := checkClasses(y); err != nil {
		return err
	}

	var counts [2]int
	for i, row := range x {
		c := y[i]
		counts[c]++
		for j, v := range row {
			nb.mean[c][j] += v
		}
	}
	for c := range nb.mean {
		if counts[c] == 0 {
			continue
		}
		for j := range nb.mean[c] {
			nb.mean[c][j] /= float64(counts[c])
		}
	}

	for i, row := range x {
		c := y[i]
		for j, v := range row {
			d := v - nb.mean[c][j]
			nb.varnc[c][j] += d * d
		}
	}
	for c := range nb.varnc {
		if counts[c] == 0 {
			continue
		}
		for j := range nb.varnc[c] {
			nb.varnc[c][j] = nb.varnc[c][j]/float64(counts[c]) + varSmoothing
		}
	}

	total := float64(len(y))
	nb.prior[0] = float64(counts[0]) / total
	nb.prior[1] = float64(counts[1]) / total
	return nil
}

func (nb *GaussianNaiveBayes) PredictProba(x [NumFeatures]float64) model.Prob {
	logProb := [2]float64{math.Log(nb.prior[0]), math.Log(nb.prior[1])}
	for c := 0; c < 2; c++ {
		for j, v := range x {
			logProb[c] += gaussianLogPDF(v, nb.mean[c][j], nb.varnc[c][j])
		}
	}
	pTrue := 1 / (1 + math.Exp(logProb[0]-logProb[1]))
	return model.Prob{PFalse: 1 - pTrue, PTrue: pTrue}
}

func gaussianLogPDF(x, mean, variance float64) float64 {
	d := x - mean
	return -0.5*math.Log(2*math.Pi*variance) - (d*d)/(2*variance)
}
