// Package twopass orchestrates the full inference pipeline: an
// unsupervised first pass over syntactic candidates, an on-the-fly
// classifier trained from that pass's best path, a refiltered second pass,
// and the confidence and edge-fill steps that turn the final path into a
// reportable result.
package twopass

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/classifier"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/confidence"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/edgefill"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/enumerator"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/extractor"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/ocrsource"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/pnerrors"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/scheme"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/trellis"
	"github.com/iarchive/hocr-pagenumber/internal/runctx"
)

// Options configures a run end to end. Every threshold/cost here has a
// spec-mandated default; the CLI surface only ever overrides them.
type Options struct {
	CompositeLimit        int
	NegativesPerPage      int
	Pass1DensityThreshold float64
	Pass2DensityThreshold float64
	NoneCost              float64
	EmissionCost          float64
	Pass1Factor           float64
	Pass2Factor           float64
	ClassifierKind        classifier.Kind
	Seed                  int64
	TwoPass               bool
	OpportunisticFill     bool
	Logger                *slog.Logger
}

// PageResult is one page's final outcome, in effective-page order.
type PageResult struct {
	Candidate *model.PageNumberCandidate
	WordConf  *int
}

// Result is what a run reports before it is rendered to the output
// document: the per-page path plus the aggregate document confidence.
type Result struct {
	Pages      []PageResult
	Confidence int
	// UsedClassifier is false when pass 2 never ran, either because
	// TwoPass was off or because training was underdetermined.
	UsedClassifier bool
}

// Run executes the full pipeline over records, which must already reflect
// any scandata skip/renumber step.
func Run(ctx context.Context, records []ocrsource.LeafRecord, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = runctx.LoggerFrom(ctx)
	}

	registry := scheme.NewRegistry(opts.CompositeLimit)
	rng := rand.New(rand.NewSource(opts.Seed))

	numPages := 0
	for _, r := range records {
		if !r.Skip {
			numPages++
		}
	}

	pass1 := extractor.Extract(records, registry, extractor.Options{
		NegativesPerPage: opts.NegativesPerPage,
		Rand:             rng,
		Logger:           logger,
	})
	path1, err := solvePath(pass1.PageMatches, numPages, opts.Pass1DensityThreshold, opts.Pass1Factor, opts.NoneCost, opts.EmissionCost)
	if err != nil {
		return nil, err
	}

	if !opts.TwoPass {
		return finish(path1, pass1, false, opts)
	}

	clf, std, trainErr := train(path1, pass1, opts)
	if trainErr != nil {
		if errors.Is(trainErr, pnerrors.ErrTrainingUnderdetermined) {
			logger.Warn("pass-1 training set had no positives or no negatives, skipping pass 2")
			return finish(path1, pass1, false, opts)
		}
		return nil, trainErr
	}

	filter := func(effectiveIndex int, w ocrsource.Word, info model.PageInfo) (bool, model.Prob) {
		feat := classifier.Extract(model.WordObservation{
			BBox:       w.BBox,
			Text:       w.Text,
			FontSize:   w.FontSize,
			Confidence: w.Confidence,
		}, info, effectiveIndex)
		prob := clf.PredictProba(std.Apply(feat))
		return prob.PTrue >= prob.PFalse, prob
	}

	registry2 := scheme.NewRegistry(opts.CompositeLimit)
	pass2 := extractor.Extract(records, registry2, extractor.Options{
		NegativesPerPage: opts.NegativesPerPage,
		Filter:           filter,
		Rand:             rng,
		Logger:           logger,
	})
	path2, err := solvePath(pass2.PageMatches, numPages, opts.Pass2DensityThreshold, opts.Pass2Factor, opts.NoneCost, opts.EmissionCost)
	if err != nil {
		return nil, err
	}

	return finish(path2, pass2, true, opts)
}

// solvePath runs enumerate -> gap-fill -> build -> solve, returning the
// chosen candidate for every page (nil for none).
func solvePath(pageMatches [][]*model.PageNumberCandidate, numPages int, densityThreshold, factor, noneCost, emissionCost float64) ([]*model.PageNumberCandidate, error) {
	sequences := enumerator.Enumerate(pageMatches, densityThreshold)
	filled, err := enumerator.FillGaps(sequences)
	if err != nil {
		return nil, err
	}
	tr := trellis.Build(filled, numPages, factor, noneCost, emissionCost)
	states := trellis.Solve(tr)

	out := make([]*model.PageNumberCandidate, numPages)
	for i, s := range states {
		if s != nil {
			out[i] = s.Candidate
		}
	}
	return out, nil
}

// train builds a training corpus from path's non-synthetic candidates
// (positives) and the extraction's sampled non-matches on those same pages
// (negatives), fits opts.ClassifierKind, and returns it with the fitted
// standardizer.
func train(path []*model.PageNumberCandidate, res *extractor.Result, opts Options) (classifier.Classifier, *classifier.Standardizer, error) {
	var rawX [][classifier.NumFeatures]float64
	var y []int

	for page, cand := range path {
		if cand == nil || cand.Synthetic {
			continue
		}
		f := classifier.Extract(*cand.Observation, res.PageInfo[page], page)
		rawX = append(rawX, f)
		y = append(y, 1)
		for _, w := range res.PageNonMatches[page] {
			f := classifier.Extract(model.WordObservation{
				BBox:       w.BBox,
				Text:       w.Text,
				FontSize:   w.FontSize,
				Confidence: w.Confidence,
			}, res.PageInfo[page], page)
			rawX = append(rawX, f)
			y = append(y, 0)
		}
	}

	std := classifier.FitStandardizer(rawX)
	x := make([][classifier.NumFeatures]float64, len(rawX))
	for i, row := range rawX {
		x[i] = std.Apply(row)
	}

	clf, err := classifier.New(opts.ClassifierKind, opts.Seed)
	if err != nil {
		return nil, nil, err
	}
	if err := clf.Fit(x, y); err != nil {
		return nil, nil, err // pnerrors.ErrTrainingUnderdetermined when either class is empty
	}
	return clf, std, nil
}

// finish turns a solved path plus its backing extraction result into a
// Result, optionally running the opportunistic edge filler over the
// assigned candidates. It never mutates path in place.
func finish(path []*model.PageNumberCandidate, res *extractor.Result, usedClassifier bool, opts Options) (*Result, error) {
	if opts.OpportunisticFill {
		filled, err := edgefill.Fill(path)
		if err != nil {
			return nil, err
		}
		path = filled
	}

	pages := make([]PageResult, len(path))
	for i, c := range path {
		pages[i] = PageResult{Candidate: c, WordConf: wordConf(c)}
	}

	refined := refineSequences(path)
	assignments := make([]confidence.Assignment, len(path))
	for i, c := range path {
		pt := 0.0
		if c != nil && c.Prob != nil {
			pt = c.Prob.PTrue
		}
		assignments[i] = confidence.Assignment{Candidate: c, PTrue: pt}
	}
	conf := confidence.Compute(assignments, refined)

	return &Result{
		Pages:          pages,
		Confidence:     conf,
		UsedClassifier: usedClassifier,
	}, nil
}

// refineSequences regroups the single-candidate-per-page final path back
// into same-scheme runs, the shape confidence.Compute needs to detect
// sub-continuations.
func refineSequences(path []*model.PageNumberCandidate) []confidence.RefinedSequence {
	perPage := make([][]*model.PageNumberCandidate, len(path))
	for i, c := range path {
		if c != nil {
			perPage[i] = []*model.PageNumberCandidate{c}
		}
	}
	sequences := enumerator.Enumerate(perPage, 0)
	refined := make([]confidence.RefinedSequence, len(sequences))
	for i, seq := range sequences {
		first := seq.First()
		refined[i] = confidence.RefinedSequence{
			Scheme:     seq.Scheme,
			StartPage:  first.PageIndex,
			StartValue: first.Candidate.NumValue,
		}
	}
	return refined
}

func wordConf(c *model.PageNumberCandidate) *int {
	if c == nil || c.Synthetic || c.Observation == nil {
		return nil
	}
	v := c.Observation.Confidence
	return &v
}
