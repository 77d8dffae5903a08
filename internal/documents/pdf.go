package documents

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ReadPDF extracts the plain text of every page of a PDF file.
func ReadPDF(path string) (text string, err error) {
	if _, err := os.Stat(path); err != nil {
		return "", readError("PDF", path, err)
	}

	// the pdf reader panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("failed to extract text from PDF: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from PDF page %d: %w", i, err)
		}
		textBuilder.WriteString(pageText)
		if !strings.HasSuffix(pageText, "\n") {
			textBuilder.WriteString("\n")
		}
	}

	return cleanExtracted(textBuilder.String()), nil
}

// cleanExtracted drops leading whitespace and trailing whitespace on each line.
func cleanExtracted(raw string) string {
	raw = strings.TrimLeftFunc(raw, unicode.IsSpace)
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
