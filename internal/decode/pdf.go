package decode

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// extractPDF concatenates the plain text of every page in document order;
// page breaks collapse to a blank line.
func extractPDF(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("PDF file is empty")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return "", fmt.Errorf("file does not appear to be a valid PDF")
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := r.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			sb.WriteString("\n")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to decode; continue with the rest.
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	result := sb.String()
	if strings.TrimSpace(result) == "" {
		return "", fmt.Errorf("PDF appears to contain no extractable text (may be image-based or encrypted)")
	}

	return cleanText(result), nil
}
