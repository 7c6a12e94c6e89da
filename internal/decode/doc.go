package decode

import (
	"bytes"
	"fmt"
	"strings"
)

// oleSignature is the magic number at the head of every OLE2 compound file
// (the container format legacy .doc uses).
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// extractDOC recovers the plain-text body of a legacy binary .doc file.
// There is no layout reconstruction: Word stores a document's text as
// UTF-16LE runs inside the compound file's WordDocument stream interleaved
// with binary formatting records, so this walks the raw bytes looking for
// runs of printable UTF-16LE characters and treats a break in the run as a
// paragraph boundary. This recovers reading-order text for the large
// majority of real-world .doc files without parsing the FIB or piece table.
func extractDOC(data []byte) (string, error) {
	if len(data) < 8 || !bytes.Equal(data[:8], oleSignature) {
		return "", fmt.Errorf("file does not appear to be a valid OLE2 document")
	}

	var sb strings.Builder
	runLen := 0

	flushBreak := func() {
		if runLen > 0 {
			sb.WriteRune('\n')
			runLen = 0
		}
	}

	for i := 0; i+1 < len(data); i += 2 {
		lo, hi := data[i], data[i+1]
		if hi != 0x00 {
			flushBreak()
			continue
		}
		switch {
		case lo == 0x0D || lo == 0x0A:
			flushBreak()
		case lo == 0x09:
			sb.WriteRune('\t')
			runLen++
		case lo >= 0x20 && lo < 0x7F:
			sb.WriteByte(lo)
			runLen++
		default:
			flushBreak()
		}
	}

	result := cleanText(sb.String())
	if strings.TrimSpace(result) == "" {
		return "", fmt.Errorf("no extractable text found in .doc body")
	}

	// Drop short noise lines left behind by misaligned binary records —
	// formatting tables occasionally decode to a handful of stray characters.
	lines := strings.Split(result, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 || len(trimmed) >= 2 {
			kept = append(kept, line)
		}
	}

	final := cleanText(strings.Join(kept, "\n"))
	if strings.TrimSpace(final) == "" {
		return "", fmt.Errorf("no extractable text found in .doc body")
	}
	return final, nil
}
