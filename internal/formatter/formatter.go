// Package formatter renders the rewritten résumé as plain text, Markdown or HTML.
package formatter

import (
	"fmt"
	"slices"
	"strings"
	"text/template"
	"time"
	"unicode/utf8"
)

// Format is an output presentation.
type Format string

const (
	Plain    Format = "plain"
	Markdown Format = "markdown"
	HTML     Format = "html"
)

const timestampLayout = "2006-01-02 15:04:05"

// Formats lists the accepted values of the --format flag.
var Formats = []Format{Plain, Markdown, HTML}

// Names returns Formats as a comma separated list.
func Names() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseFormat validates a format name. An empty name means Plain.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return Plain, nil
	}
	if slices.Contains(Formats, f) {
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format %q (want one of %s)", s, Names())
}

// Extension is the file extension used when the output is stored.
func (f Format) Extension() string {
	switch f {
	case Markdown:
		return ".md"
	case HTML:
		return ".html"
	default:
		return ".txt"
	}
}

// ContentType is the MIME type used when the output is uploaded.
func (f Format) ContentType() string {
	switch f {
	case Markdown:
		return "text/markdown; charset=utf-8"
	case HTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render formats content, stamping it with the current time.
func Render(content string, f Format) (string, error) {
	return RenderAt(content, f, time.Now())
}

// RenderAt formats content with a fixed generation timestamp.
func RenderAt(content string, f Format, at time.Time) (string, error) {
	switch f {
	case Plain, "":
		return content, nil
	case Markdown:
		return renderMarkdown(content, at), nil
	case HTML:
		return renderHTML(content, at)
	}
	return "", fmt.Errorf("unsupported output format %q", f)
}

func renderMarkdown(content string, at time.Time) string {
	var b strings.Builder
	b.WriteString("# Reformatted CV\n\n")
	fmt.Fprintf(&b, "*Generated on: %s*\n", at.Format(timestampLayout))
	b.WriteString("*Optimized for ATS by CV Formatter*\n\n---\n\n")
	b.WriteString(content)
	b.WriteString("\n\n---\n\n")
	b.WriteString("*This CV was optimized using multi-agent AI analysis to maximize compatibility with Applicant Tracking Systems (ATS).*\n")
	return b.String()
}

// headingMaxLen is the length under which a single-line block reads as a heading.
const headingMaxLen = 100

// htmlBlocks splits content on blank lines. A lone short line becomes a
// heading, anything else a paragraph with explicit line breaks.
func htmlBlocks(content string) string {
	var blocks []string
	for _, para := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		if !strings.Contains(para, "\n") && utf8.RuneCountInString(para) < headingMaxLen {
			blocks = append(blocks, "<h2>"+strings.TrimSpace(para)+"</h2>")
			continue
		}
		blocks = append(blocks, "<p>"+strings.ReplaceAll(para, "\n", "<br>\n")+"</p>")
	}
	return strings.Join(blocks, "\n")
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

func renderHTML(content string, at time.Time) (string, error) {
	var b strings.Builder
	err := pageTemplate.Execute(&b, struct {
		Timestamp string
		Content   string
	}{
		Timestamp: at.Format(timestampLayout),
		Content:   htmlBlocks(content),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return b.String(), nil
}
