// Package documents extracts normalized text from résumé and job-description files.
package documents

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmptyDocument is returned when a document yields no text at all.
var ErrEmptyDocument = errors.New("document contains no text")

const bom = "\ufeff"

// CleanText strips a leading byte-order mark, normalizes line endings to \n,
// trims trailing whitespace on every line and trims the document as a whole.
func CleanText(text string) string {
	text = strings.TrimLeft(text, bom)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\f\v")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ReadText reads a plain text file. Invalid UTF-8 sequences are replaced.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", readError("text", path, err)
	}
	return CleanText(strings.ToValidUTF8(string(data), "\uFFFD")), nil
}

// readError wraps a failure to open path. kind names the document type.
func readError(kind, path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file not found: %s: %w", path, err)
	}
	return fmt.Errorf("failed to read %s file %s: %w", kind, path, err)
}
