// Package classifier learns a geometric/typographic discriminator between
// real page-number words and everything else, from the first inference
// pass's output, and refilters candidates in the second pass.
package classifier

import (
	"fmt"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/pnerrors"
)

// Classifier is the shared contract naive Bayes and logistic regression
// both satisfy: fit on standardized features and labels, then predict a
// (p_false, p_true) pair for a new vector.
type Classifier interface {
	Fit(x [][NumFeatures]float64, y []int) error
	PredictProba(x [NumFeatures]float64) model.Prob
}

// Kind selects which Classifier implementation to build.
type Kind string

const (
	NaiveBayes             Kind = "naivebayes"
	LogisticRegressionKind Kind = "logisticregression"
)

// New constructs the classifier for kind, seeded for reproducibility.
func New(kind Kind, seed int64) (Classifier, error) {
	switch kind {
	case NaiveBayes:
		return &GaussianNaiveBayes{}, nil
	case LogisticRegressionKind:
		return NewLogisticRegression(seed), nil
	default:
		return nil, fmt.Errorf("classifier: unknown kind %q", kind)
	}
}

// checkClasses returns pnerrors.ErrTrainingUnderdetermined if y has no
// positives or no negatives.
func checkClasses(y []int) error {
	pos, neg := 0, 0
	for _, label := range y {
		if label == 1 {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return pnerrors.ErrTrainingUnderdetermined
	}
	return nil
}
