package decode

import (
	"strings"
	"testing"
)

func TestExtractPDF_RejectsMissingHeader(t *testing.T) {
	if _, err := extractPDF([]byte("this is not a pdf")); err == nil {
		t.Error("expected error for data lacking the %PDF header")
	}
}

func TestExtractPDF_RejectsEmpty(t *testing.T) {
	if _, err := extractPDF(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestExtractPDF_RejectsTruncatedPDF(t *testing.T) {
	// A %PDF header with no valid xref/trailer structure behind it.
	data := []byte("%PDF-1.4\nthis is not a complete pdf document")
	if _, err := extractPDF(data); err == nil {
		t.Error("expected error for structurally invalid PDF")
	}
}

func TestCleanText_CollapsesBlankLinesAndControlChars(t *testing.T) {
	input := "Line one\x00\n\n\n\nLine two\r\nLine three"
	got := cleanText(input)
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("expected runs of 3+ newlines collapsed, got: %q", got)
	}
	if strings.Contains(got, "\x00") {
		t.Errorf("expected control characters stripped, got: %q", got)
	}
	if !strings.Contains(got, "Line one") || !strings.Contains(got, "Line three") {
		t.Errorf("expected content preserved, got: %q", got)
	}
}

func TestCleanText_PreservesTabs(t *testing.T) {
	got := cleanText("Col1\tCol2")
	if got != "Col1\tCol2" {
		t.Errorf("expected tab preserved, got: %q", got)
	}
}
