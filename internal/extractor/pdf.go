package extractor

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// extractPDF reads the text of each page, trying row-based extraction first
// (best column preservation) and falling back to plain-text extraction.
// The library panics on some malformed files, so both paths recover.
func extractPDF(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parsing panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	pages = extractByRow(reader, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	pages = extractPlainText(reader, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	return nil, fmt.Errorf("no readable text in pdf; file may be scanned or use undecodable fonts")
}

func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}

		var lines []string

		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}

			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}

		if len(lines) > 0 {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}

	return pages
}

func extractPlainText(r *pdf.Reader, numPages int) []string {
	var pages []string

	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		fontNames := page.Fonts()
		fonts := make(map[string]*pdf.Font, len(fontNames))

		for _, name := range fontNames {
			f := page.Font(name)
			fonts[name] = &f
		}

		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}

		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}

	return pages
}

// isReadableText guards against identity-encoded fonts that decode to
// garbage: extracted text must have some length and be mostly plain ASCII.
func isReadableText(pages []string) bool {
	total, readable := 0, 0

	for _, page := range pages {
		for _, r := range page {
			total++

			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
				(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
				strings.ContainsRune(`.,-/:;()'"%&@#!?+=*₹`, r) {
				readable++
			}
		}
	}

	if total <= 50 {
		return false
	}

	return float64(readable)/float64(total) > 0.6
}
