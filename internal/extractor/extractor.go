// Package extractor turns uploaded statement bytes into text lines.
// Extraction is a pure transform: the same bytes always produce the same
// ordered lines, pages in document order.
package extractor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnreadableDocument is returned when no text can be recovered from the
// upload: a corrupt or encrypted PDF, or binary content that decodes to
// garbage. It is fatal for the upload.
var ErrUnreadableDocument = errors.New("unreadable document")

var pdfMagic = []byte("%PDF")

// Extract produces the ordered text lines of the document. PDF input goes
// through the PDF text extractor; anything else is treated as a plain-text
// statement and decoded from its detected charset.
func Extract(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrUnreadableDocument)
	}

	if isPDF(data) {
		pages, err := extractPDF(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
		}

		return splitPages(pages), nil
	}

	text, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	return splitPages([]string{text}), nil
}

func isPDF(data []byte) bool {
	return len(data) >= len(pdfMagic) && string(data[:len(pdfMagic)]) == string(pdfMagic)
}

func splitPages(pages []string) []string {
	var lines []string

	for _, page := range pages {
		for _, line := range strings.Split(page, "\n") {
			line = strings.TrimRight(line, "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}

			lines = append(lines, line)
		}
	}

	return lines
}
