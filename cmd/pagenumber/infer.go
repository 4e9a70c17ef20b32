package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/iarchive/hocr-pagenumber/internal/config"
	"github.com/iarchive/hocr-pagenumber/internal/home"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/classifier"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/ocrsource"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/output"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/pdfmeta"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/pnerrors"
	"github.com/iarchive/hocr-pagenumber/internal/pagenum/twopass"
	"github.com/iarchive/hocr-pagenumber/internal/runctx"
	"github.com/iarchive/hocr-pagenumber/internal/schema"
)

var (
	inferInfile     string
	inferOutfile    string
	inferScandata   string
	inferPDF        string
	inferClassifier string
	inferTwoPass    bool
	inferPass1Dens  float64
	inferPass2Dens  float64
	inferEdgeFill   bool
	inferIdentifier string
	inferExplain    bool
)

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Infer page numbers for a single OCR'd document",
	Long: `infer reads an OCR JSON document (and, optionally, a scandata skip-leaves
file and the source PDF) and writes a page-number inference document.`,
	RunE: runInfer,
}

func init() {
	inferCmd.Flags().StringVar(&inferInfile, "infile", "", "path to the OCR JSON input document (required)")
	inferCmd.Flags().StringVar(&inferOutfile, "outfile", "", "path to write the output document (default: stdout)")
	inferCmd.Flags().StringVar(&inferScandata, "scandata", "", "optional scandata skip-leaves file (.json or .yaml)")
	inferCmd.Flags().StringVar(&inferPDF, "pdf", "", "optional source PDF, sniffed only for a default identifier")
	inferCmd.Flags().StringVar(&inferClassifier, "classifier", "", "classifier kind: naivebayes or logisticregression (default from config)")
	inferCmd.Flags().BoolVar(&inferTwoPass, "two-pass", true, "run the second, classifier-refiltered pass")
	inferCmd.Flags().Float64Var(&inferPass1Dens, "pass1-density", 0, "pass-1 sequence density threshold (default from config)")
	inferCmd.Flags().Float64Var(&inferPass2Dens, "pass2-density", 0, "pass-2 sequence density threshold (default from config)")
	inferCmd.Flags().BoolVar(&inferEdgeFill, "opportunistic-fill", false, "extrapolate the leading/trailing page-number runs to the document's edges")
	inferCmd.Flags().StringVar(&inferIdentifier, "identifier", "", "override the output document's identifier")
	inferCmd.Flags().BoolVar(&inferExplain, "explain", false, "write a run trace to the pagenumber home directory for later inspection")

	_ = inferCmd.MarkFlagRequired("infile")
}

func runInfer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	h, err := home.New(homeDir)
	if err != nil {
		return err
	}
	if inferExplain {
		if err := h.EnsureExists(); err != nil {
			return err
		}
	}

	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return err
	}
	cfg := cm.Get()

	runID := uuid.New().String()
	logger = logger.With("run_id", runID)
	ctx = runctx.WithServices(ctx, &runctx.Services{
		Config: cfg,
		Logger: logger,
		Home:   h,
		RunID:  runID,
	})

	records, err := loadRecords(ctx, inferInfile, inferScandata, cfg.Run)
	if err != nil {
		return err
	}

	opts := buildOptions(cmd, cfg, logger)

	result, err := twopass.Run(ctx, records, opts)
	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}

	identifier := resolveIdentifier(inferIdentifier, inferPDF, runID, logger)

	leafNums := effectiveToLeaf(records)
	entries := make([]output.PageEntry, len(result.Pages))
	for i, p := range result.Pages {
		entry := output.PageEntry{LeafNum: leafNums[i], Candidate: p.Candidate, WordConf: p.WordConf}
		if p.Candidate != nil && p.Candidate.Prob != nil {
			pageProb := int(p.Candidate.Prob.PTrue*100 + 0.5)
			perPage := output.PerPageConfidence(p.Candidate.Prob.PTrue)
			entry.PageProb = &pageProb
			entry.Confidence = &perPage
		}
		entries[i] = entry
	}

	doc := output.Build(identifier, cfg.Run.ArchiveToolsVersion, result.Confidence, entries)
	raw, err := output.Marshal(doc)
	if err != nil {
		return err
	}

	if inferExplain {
		if err := os.WriteFile(h.RunTracePath(runID), raw, 0o644); err != nil {
			logger.Warn("failed to write run trace", "err", err)
		}
	}

	if inferOutfile == "" {
		_, err := os.Stdout.Write(append(raw, '\n'))
		return err
	}
	return os.WriteFile(inferOutfile, raw, 0o644)
}

// loadRecords reads the OCR document and optional scandata file, retrying
// each a bounded number of times before surfacing a fatal ExternalIOFailure.
func loadRecords(ctx context.Context, infile, scandataPath string, runCfg config.RunCfg) ([]ocrsource.LeafRecord, error) {
	var src *ocrsource.JSONSource
	err := retry.Do(
		func() error {
			f, err := os.Open(infile)
			if err != nil {
				return fmt.Errorf("%w: opening infile: %v", pnerrors.ErrExternalIO, err)
			}
			defer f.Close()
			s, err := ocrsource.NewJSONSource(f)
			if err != nil {
				return err
			}
			src = s
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(runCfg.RetryAttempts),
		retry.Delay(time.Duration(runCfg.RetryDelayMS)*time.Millisecond),
	)
	if err != nil {
		return nil, err
	}

	pages, err := src.Pages(ctx)
	if err != nil {
		return nil, err
	}

	skipLeaves := map[int]bool{}
	if scandataPath != "" {
		skipLeaves, err = loadSkipLeaves(ctx, scandataPath, runCfg)
		if err != nil {
			return nil, err
		}
	}

	return ocrsource.Renumber(pages, skipLeaves), nil
}

func loadSkipLeaves(ctx context.Context, path string, runCfg config.RunCfg) (map[int]bool, error) {
	var scandata ocrsource.ScandataSource
	err := retry.Do(
		func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("%w: opening scandata: %v", pnerrors.ErrExternalIO, err)
			}
			defer f.Close()

			if isYAML(path) {
				s, err := ocrsource.NewYAMLScandata(f)
				if err != nil {
					return err
				}
				scandata = s
				return nil
			}
			raw, err := io.ReadAll(f)
			if err != nil {
				return fmt.Errorf("%w: reading scandata: %v", pnerrors.ErrExternalIO, err)
			}
			if err := schema.Validate(schema.Scandata, raw); err != nil {
				return fmt.Errorf("%w: %v", pnerrors.ErrExternalIO, err)
			}
			s, err := ocrsource.NewJSONScandata(bytes.NewReader(raw))
			if err != nil {
				return err
			}
			scandata = s
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(runCfg.RetryAttempts),
		retry.Delay(time.Duration(runCfg.RetryDelayMS)*time.Millisecond),
	)
	if err != nil {
		return nil, err
	}
	return scandata.SkipLeaves(ctx)
}

// effectiveToLeaf maps each effective (skip-adjusted) page index back to
// its physical leaf number, the shape the output document's leafNum field
// needs.
func effectiveToLeaf(records []ocrsource.LeafRecord) []int {
	var out []int
	for _, r := range records {
		if !r.Skip {
			out = append(out, r.Leaf)
		}
	}
	return out
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func buildOptions(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) twopass.Options {
	kind := classifier.Kind(cfg.Classifier.Kind)
	if inferClassifier != "" {
		kind = classifier.Kind(inferClassifier)
	}
	pass1Dens := cfg.Enumerator.Pass1DensityThreshold
	if inferPass1Dens != 0 {
		pass1Dens = inferPass1Dens
	}
	pass2Dens := cfg.Enumerator.Pass2DensityThreshold
	if inferPass2Dens != 0 {
		pass2Dens = inferPass2Dens
	}
	twoPass := cfg.Run.TwoPass
	if cmd.Flags().Changed("two-pass") {
		twoPass = inferTwoPass
	}
	opportunisticFill := cfg.Run.OpportunisticFill
	if cmd.Flags().Changed("opportunistic-fill") {
		opportunisticFill = inferEdgeFill
	}
	return twopass.Options{
		CompositeLimit:        cfg.Registry.CompositeLimit,
		NegativesPerPage:      cfg.Extractor.NegativesPerPage,
		Pass1DensityThreshold: pass1Dens,
		Pass2DensityThreshold: pass2Dens,
		NoneCost:              cfg.Trellis.NoneCost,
		EmissionCost:          cfg.Trellis.EmissionCost,
		Pass1Factor:           cfg.Trellis.Pass1Factor,
		Pass2Factor:           cfg.Trellis.Pass2Factor,
		ClassifierKind:        kind,
		Seed:                  cfg.Classifier.Seed,
		TwoPass:               twoPass,
		OpportunisticFill:     opportunisticFill,
		Logger:                logger,
	}
}

// resolveIdentifier picks the output document's identifier: an explicit
// override wins, then a sniffed PDF title, then the run's correlation id.
func resolveIdentifier(override, pdfPath, runID string, logger *slog.Logger) *string {
	if override != "" {
		return &override
	}
	if pdfPath != "" {
		info, err := pdfmeta.Sniff(pdfPath)
		if err != nil {
			logger.Warn("could not sniff pdf metadata, falling back to run id", "path", pdfPath, "err", err)
		} else if info.Title != "" {
			return &info.Title
		}
	}
	return &runID
}
