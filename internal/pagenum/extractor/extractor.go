// Package extractor turns a page's OCR words into page-number candidates:
// syntactic scheme matching, on-the-fly composite discovery, the central-
// margin edge policy, and negative sampling for the classifier.
package extractor

import (
	"log/slog"
	"math/rand"

	"github.com/iarchive/hocr-pagenumber/internal/pagenum/model"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/ocrsource"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/scheme"
)

// Filter is the pass-2 classifier prefilter: given the effective page
// index, the page's geometry as observed so far, and a word already known
// to be scheme-eligible, it reports whether the word should be kept as a
// candidate and, if so, the probability estimate to attach.
type Filter func(effectiveIndex int, word ocrsource.Word, info model.PageInfo) (keep bool, prob model.Prob)

// Result holds the per-effective-page outputs of a full extraction pass.
type Result struct {
	PageMatches    [][]*model.PageNumberCandidate
	PageNonMatches [][]ocrsource.Word
	PageInfo       []model.PageInfo
}

// Options configures a single extraction pass.
type Options struct {
	NegativesPerPage int
	Filter           Filter // nil in pass 1
	Rand             *rand.Rand
	Logger           *slog.Logger
}

// Extract runs candidate extraction over every non-skipped leaf record,
// mutating registry with any newly discovered composite schemes.
func Extract(records []ocrsource.LeafRecord, registry *scheme.Registry, opts Options) *Result {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(42))
	}

	n := 0
	for _, r := range records {
		if !r.Skip {
			n++
		}
	}

	res := &Result{
		PageMatches:    make([][]*model.PageNumberCandidate, n),
		PageNonMatches: make([][]ocrsource.Word, n),
		PageInfo:       make([]model.PageInfo, n),
	}

	for _, r := range records {
		if r.Skip {
			continue
		}
		idx := r.Effective
		info := model.PageInfo{Width: r.Page.Width, Height: r.Page.Height}
		var matches []*model.PageNumberCandidate
		var rawNonMatches []ocrsource.Word
		negativeCount := 0

		for _, w := range r.Page.Words() {
			info.UnionWord(model.WordObservation{BBox: w.BBox})

			if negativeCount >= opts.NegativesPerPage && info.InCentralMargin(w.BBox) {
				continue
			}

			matchedScheme, matched := registry.Match(w.Text)
			eligibleComposite := !matched && scheme.IsSimpleCompositeForm(w.Text)

			var prob *model.Prob
			if opts.Filter != nil {
				if !matched && !eligibleComposite {
					rawNonMatches = append(rawNonMatches, w)
					negativeCount++
					continue
				}
				keep, p := opts.Filter(idx, w, info)
				if !keep {
					rawNonMatches = append(rawNonMatches, w)
					negativeCount++
					continue
				}
				prob = &p
			}

			var sch model.Scheme
			switch {
			case matched:
				sch = matchedScheme
			case eligibleComposite && !registry.CapReached():
				c, err := registry.Discover(w.Text)
				if err != nil {
					logger.Warn("composite cap reached, ignoring further composite discovery", "value", w.Text)
					rawNonMatches = append(rawNonMatches, w)
					negativeCount++
					continue
				}
				sch = c
			default:
				rawNonMatches = append(rawNonMatches, w)
				negativeCount++
				continue
			}

			obs := model.WordObservation{
				BBox:       w.BBox,
				Text:       w.Text,
				FontSize:   w.FontSize,
				Confidence: w.Confidence,
			}
			cand, err := model.NewCandidate(w.Text, sch, false, &obs)
			if err != nil {
				logger.Warn("discarding word that failed candidate construction", "value", w.Text, "err", err)
				rawNonMatches = append(rawNonMatches, w)
				negativeCount++
				continue
			}
			if prob != nil {
				cand.SetProb(*prob)
			}
			matches = append(matches, cand)
		}

		res.PageMatches[idx] = matches
		res.PageInfo[idx] = info
		res.PageNonMatches[idx] = sampleNegatives(rng, rawNonMatches, opts.NegativesPerPage)
	}

	return res
}

// sampleNegatives draws exactly k words from pool uniformly with
// replacement, so every page with at least one non-match reports the same
// negative count regardless of how many it had; a page with no
// non-matches reports none.
func sampleNegatives(rng *rand.Rand, pool []ocrsource.Word, k int) []ocrsource.Word {
	if len(pool) == 0 || k <= 0 {
		return nil
	}
	out := make([]ocrsource.Word, k)
	for i := range out {
		out[i] = pool[rng.Intn(len(pool))]
	}
	return out
}
