package documents

import (
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxBreak        = regexp.MustCompile(`<w:(br|cr)[^>]*/>`)
	docxTab          = regexp.MustCompile(`<w:tab[^>]*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// ReadDOCX extracts the paragraphs of a Word document, one per line.
func ReadDOCX(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", readError("DOCX", path, err)
	}

	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return CleanText(docxText(doc.Editable().GetContent())), nil
}

// docxText turns WordprocessingML into plain text.
func docxText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxBreak.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return html.UnescapeString(strings.TrimSpace(content))
}
