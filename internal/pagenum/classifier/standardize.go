package classifier

import "math"

// Standardizer holds the per-feature mean and population standard
// deviation fitted from a training set, applied identically to every
// vector scored afterward.
type Standardizer struct {
	Mean   [NumFeatures]float64
	StdDev [NumFeatures]float64
}

// FitStandardizer computes the population mean/stddev of each feature
// across X.
func FitStandardizer(x [][NumFeatures]float64) *Standardizer {
	s := &Standardizer{}
	n := float64(len(x))
	if n == 0 {
		for i := range s.StdDev {
			s.StdDev[i] = 1
		}
		return s
	}
	for _, row := range x {
		for i, v := range row {
			s.Mean[i] += v
		}
	}
	for i := range s.Mean {
		s.Mean[i] /= n
	}
	for _, row := range x {
		for i, v := range row {
			d := v - s.Mean[i]
			s.StdDev[i] += d * d
		}
	}
	for i := range s.StdDev {
		s.StdDev[i] = math.Sqrt(s.StdDev[i] / n)
		if s.StdDev[i] == 0 {
			s.StdDev[i] = 1 // a constant feature standardizes to 0, not NaN
		}
	}
	return s
}

// Apply standardizes a single vector in place of a copy.
func (s *Standardizer) Apply(x [NumFeatures]float64) [NumFeatures]float64 {
	var out [NumFeatures]float64
	for i, v := range x {
		out[i] = (v - s.Mean[i]) / s.StdDev[i]
	}
	return out
}
