package decode

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// blockClosingTags close to a newline; they delimit paragraphs, table rows,
// list items, and headings in the rendered HTML-ish intermediate.
var blockClosingTags = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "section": true, "article": true,
	"header": true, "footer": true,
	"ul": true, "ol": true, "table": true,
	"thead": true, "tbody": true, "tfoot": true,
}

var (
	brTagRe  = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
	entities = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", "\"",
		"&#39;", "'",
	)
)

// extractDOCX reads word/document.xml out of the OOXML zip container,
// converts its WordprocessingML body to an HTML-like intermediate, then
// reduces that to plain text per the DOCX decode contract.
func extractDOCX(data []byte) (string, error) {
	r, err := zip.NewReader(strings.NewReader(string(data)), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("not a valid DOCX (zip) archive: %w", err)
	}

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found in archive")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open word/document.xml: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("failed to read word/document.xml: %w", err)
	}

	html, err := wordXMLToHTML(raw)
	if err != nil {
		return "", fmt.Errorf("failed to walk document XML: %w", err)
	}

	return htmlToText(html), nil
}

// wordXMLToHTML walks the WordprocessingML token stream and renders a small
// HTML-like intermediate: run text verbatim, <w:br/> and <w:tab/> as <br>/
// tab, and paragraph/table-structural elements as their HTML namesakes so
// htmlToText's block-tag table can close them uniformly.
func wordXMLToHTML(raw []byte) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(string(raw)))
	var sb strings.Builder

	localName := func(name xml.Name) string {
		return name.Local
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch localName(t.Name) {
			case "p":
				sb.WriteString("<p>")
			case "tr":
				sb.WriteString("<tr>")
			case "tbl":
				sb.WriteString("<table>")
			case "br":
				sb.WriteString("<br>")
			case "tab":
				sb.WriteString("\t")
			}
		case xml.EndElement:
			switch localName(t.Name) {
			case "p":
				sb.WriteString("</p>")
			case "tr":
				sb.WriteString("</tr>")
			case "tbl":
				sb.WriteString("</table>")
			}
		case xml.CharData:
			sb.Write(t)
		}
	}

	return sb.String(), nil
}

// htmlToText applies the DOCX decode contract to an HTML-like string: <br>
// to newline, block-tag closes to newline, strip remaining tags, decode
// entities, collapse 3+ newlines to 2, trim.
func htmlToText(html string) string {
	text := brTagRe.ReplaceAllString(html, "\n")

	for tag := range blockClosingTags {
		closeTag := regexp.MustCompile(`(?i)</` + tag + `\s*>`)
		text = closeTag.ReplaceAllString(text, "\n")
	}

	text = tagRe.ReplaceAllString(text, "")
	text = entities.Replace(text)

	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}

	return strings.TrimSpace(text)
}
