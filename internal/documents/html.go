package documents

import (
	"fmt"
	"os"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ReadHTML converts an HTML page (typically a saved job posting) to Markdown.
func ReadHTML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", readError("HTML", path, err)
	}

	md, err := htmltomarkdown.ConvertString(string(data))
	if err != nil {
		return "", fmt.Errorf("failed to convert html %s: %w", path, err)
	}
	return CleanText(md), nil
}
