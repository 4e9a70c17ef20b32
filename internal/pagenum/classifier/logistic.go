package classifier

import (
	"math"
	"math/rand"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
)

const (
	logisticIterations   = 500
	logisticLearningRate = 0.1
)

// LogisticRegression is an L2-regularized binary logistic regression
// fitted by batch gradient descent, equivalent in spirit to a liblinear
// C=1.0 solver: regularization strength is 1/C.
type LogisticRegression struct {
	weights        [NumFeatures]float64
	bias           float64
	regularization float64
	rng            *rand.Rand
}

// NewLogisticRegression builds a solver with C=1.0 (regularization=1) and a
// seeded generator for reproducible weight initialization.
func NewLogisticRegression(seed int64) *LogisticRegression {
	return &LogisticRegression{
		regularization: 1.0,
		rng:            rand.New(rand.NewSource(seed)),
	}
}

func (lr *LogisticRegression) Fit(x [][NumFeatures]float64, y []int) error {
	if err := checkClasses(y); err != nil {
		return err
	}

	for j := range lr.weights {
		lr.weights[j] = (lr.rng.Float64() - 0.5) * 0.02
	}
	lr.bias = 0

	n := float64(len(x))
	for iter := 0; iter < logisticIterations; iter++ {
		var gradW [NumFeatures]float64
		var gradB float64
		for i, row := range x {
			z := lr.bias
			for j, v := range row {
				z += lr.weights[j] * v
			}
			p := sigmoid(z)
			residual := p - float64(y[i])
			for j, v := range row {
				gradW[j] += residual * v
			}
			gradB += residual
		}
		for j := range gradW {
			gradW[j] = gradW[j]/n + lr.regularization*lr.weights[j]/n
			lr.weights[j] -= logisticLearningRate * gradW[j]
		}
		lr.bias -= logisticLearningRate * (gradB / n)
	}
	return nil
}

func (lr *LogisticRegression) PredictProba(x [NumFeatures]float64) model.Prob {
	z := lr.bias
	for j, v := range x {
		z += lr.weights[j] * v
	}
	p := sigmoid(z)
	return model.Prob{PFalse: 1 - p, PTrue: p}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
