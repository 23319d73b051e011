// Package extract produces plain text from uploaded résumé files.
package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text extracts the textual content of a file based on its name's extension.
// PDF files are parsed page by page and joined with newlines; plain-text files
// are decoded as UTF-8 with invalid byte sequences dropped; any other extension
// yields an empty string. Extraction never fails: malformed input degrades to
// empty or partial text.
func Text(data []byte, fileName string) string {
	name := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(name, ".pdf"):
		return pdfText(data)
	case strings.HasSuffix(name, ".txt"):
		return strings.ToValidUTF8(string(data), "")
	default:
		return ""
	}
}

// pdfText extracts text from every page in document order. A page yielding no
// extractable text contributes an empty line rather than being skipped, so the
// output preserves page count fidelity.
func pdfText(data []byte) (text string) {
	// The PDF parser panics on some malformed files; degrade to whatever was
	// collected before the panic.
	pages := []string{}
	defer func() {
		if r := recover(); r != nil {
			text = strings.Join(pages, "\n")
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, content)
	}

	return strings.Join(pages, "\n")
}
