package main

import (
	"github.com/spf13/cobra"

	"github.com/iarchive/hocr-pagenumber/version"
)

var (
	cfgFile string
	homeDir string
)

var rootCmd = &cobra.Command{
	Use:   "pagenumber",
	Short: "Infers printed page numbers from OCR word geometry",
	Long: `pagenumber recovers the printed page number for every leaf of a scanned
book from its OCR output, without ever reading a running header by hand.

It works in two passes: an unsupervised syntactic pass finds candidate
numbering sequences (Arabic, Roman, single-letter front matter, and
runtime-discovered composite forms like "A-12"), then a geometric/
typographic classifier trained on that pass's own output refilters
candidates before a final Viterbi decode picks one page number per leaf.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.pagenumber/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "pagenumber home directory (default: ~/.pagenumber)",
	)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(inferCmd)
}
