package pdfmeta

import (
	"os"
	"testing"
)

func TestSniff_MissingFileReturnsError(t *testing.T) {
	if _, err := Sniff("/nonexistent/does-not-exist.pdf"); err == nil {
		t.Error("Sniff on a missing path should error, not silently return an empty Info")
	}
}

func TestSniff_NonPDFReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/not-a-pdf.txt"
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Sniff(path); err == nil {
		t.Error("Sniff on a non-PDF file should error")
	}
}
