// Package decode dispatches on document format and recovers a single
// UTF-8 text body from an uploaded résumé, preserving hard line breaks.
package decode

import (
	"fmt"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

// Text decodes raw bytes of the given file type (or inferred from
// fileName) into plain text. UnsupportedFormat is returned when the
// extension is not pdf/docx/doc; any other failure is wrapped as
// ExtractionFailed — callers downgrade it to a warning and continue with
// an empty string, per the pipeline's local-recovery contract.
func Text(data []byte, fileType, fileName string) (string, error) {
	ft := NormalizeType(fileType, fileName)
	switch ft {
	case "pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", &schema.ParseError{Code: schema.CodeExtractionFailed, Message: err.Error()}
		}
		return text, nil
	case "docx":
		text, err := extractDOCX(data)
		if err != nil {
			return "", &schema.ParseError{Code: schema.CodeExtractionFailed, Message: err.Error()}
		}
		return text, nil
	case "doc":
		text, err := extractDOC(data)
		if err != nil {
			return "", &schema.ParseError{Code: schema.CodeExtractionFailed, Message: err.Error()}
		}
		return text, nil
	default:
		return "", &schema.ParseError{
			Code:    schema.CodeUnsupportedFormat,
			Message: fmt.Sprintf("unsupported file type: %q (supported: pdf, docx, doc)", fileType),
		}
	}
}

// NormalizeType returns the canonical lowercase extension ("pdf", "docx",
// "doc") from an explicit MIME/extension string or, failing that, from the
// filename. Returns "" when neither source names a supported format.
func NormalizeType(fileType, fileName string) string {
	ft := strings.ToLower(strings.TrimSpace(fileType))
	switch ft {
	case "pdf", "application/pdf":
		return "pdf"
	case "docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "docx"
	case "doc", "application/msword":
		return "doc"
	}

	lower := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return "pdf"
	case strings.HasSuffix(lower, ".docx"):
		return "docx"
	case strings.HasSuffix(lower, ".doc"):
		return "doc"
	}
	return ""
}

// cleanText normalizes extracted text by removing control characters and
// collapsing runs of 3+ newlines to 2, while preserving paragraph breaks.
func cleanText(text string) string {
	var sb strings.Builder
	prevCR := false

	for _, r := range text {
		if r == '\n' && prevCR {
			prevCR = false
			continue
		}
		prevCR = r == '\r'
		if r == '\n' || r == '\r' {
			sb.WriteRune('\n')
			continue
		}
		if r < 0x20 && r != '\t' {
			continue
		}
		sb.WriteRune(r)
	}

	result := sb.String()
	for strings.Contains(result, "\n\n\n") {
		result = strings.ReplaceAll(result, "\n\n\n", "\n\n")
	}

	return strings.TrimSpace(result)
}
