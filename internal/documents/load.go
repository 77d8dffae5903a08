package documents

import (
	"path/filepath"
	"strings"
)

// Load extracts the text of a document, picking a reader from its extension.
// Files with unknown extensions are read as plain text.
func Load(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return ReadPDF(path)
	case ".docx":
		return ReadDOCX(path)
	case ".html", ".htm":
		return ReadHTML(path)
	default:
		return ReadText(path)
	}
}

// ExtensionFor maps the MIME type of an uploaded document to the extension
// Load dispatches on.
func ExtensionFor(mime string) string {
	switch mime {
	case "application/pdf":
		return ".pdf"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return ".docx"
	case "text/html":
		return ".html"
	default:
		return ".txt"
	}
}
