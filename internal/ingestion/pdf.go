package ingestion

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText decodes the PDF in buf and returns the concatenated plain text
// of all pages, one page per paragraph. Pages that fail to decode are skipped
// rather than failing the whole document; a resume is usually a single page
// and a broken trailing page should not abort extraction.
func ExtractText(buf []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return "", &DecodeError{Message: "failed to open PDF", Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// PageCount returns the number of pages in the PDF, or 0 if it cannot be read.
func PageCount(buf []byte) int {
	reader, err := pdf.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return 0
	}
	return reader.NumPage()
}
