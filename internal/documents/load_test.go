package documents

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "posting.TXT")
	require.NoError(t, os.WriteFile(txt, []byte("Go developer\r\n"), 0o644))

	page := filepath.Join(dir, "posting.html")
	require.NoError(t, os.WriteFile(page, []byte("<html><body><h1>Platform Engineer</h1><p>Build <strong>Go</strong> services.</p></body></html>"), 0o644))

	got, err := Load(txt)
	require.NoError(t, err)
	assert.Equal(t, "Go developer", got)

	got, err = Load(page)
	require.NoError(t, err)
	assert.Contains(t, got, "# Platform Engineer")
	assert.Contains(t, got, "**Go**")
	assert.NotContains(t, got, "<p>")
}

func TestLoad_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"cv.pdf", "cv.docx", "jd.html", "jd.txt"} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(filepath.Join(dir, name))
			require.Error(t, err)
			assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
		})
	}
}

func TestReadErrorsNameTheDocumentKind(t *testing.T) {
	file := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name string
		read func(string) (string, error)
		want string
	}{
		{"cv.pdf", ReadPDF, "failed to read PDF file"},
		{"cv.docx", ReadDOCX, "failed to read DOCX file"},
		{"jd.html", ReadHTML, "failed to read HTML file"},
		{"jd.txt", ReadText, "failed to read text file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// a path through a regular file fails with ENOTDIR, not ENOENT
			_, err := tt.read(filepath.Join(file, tt.name))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.False(t, errors.Is(err, fs.ErrNotExist))
		})
	}
}

func TestReadPDF_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := ReadPDF(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to extract text from PDF")
}

func TestCleanExtracted(t *testing.T) {
	got := cleanExtracted("\n\n   JANE DOE   \nEngineer \r\n\nSKILLS  \n")
	assert.Equal(t, "JANE DOE\nEngineer\n\nSKILLS", got)
}

func TestDocxText(t *testing.T) {
	xml := `<w:document><w:body>` +
		`<w:p><w:r><w:t>JANE DOE</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Go &amp; Kubernetes</w:t><w:br/><w:t>Remote</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	assert.Equal(t, "JANE DOE\nGo & Kubernetes\nRemote", docxText(xml))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".pdf", ExtensionFor("application/pdf"))
	assert.Equal(t, ".docx", ExtensionFor("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	assert.Equal(t, ".html", ExtensionFor("text/html"))
	assert.Equal(t, ".txt", ExtensionFor("text/plain"))
	assert.Equal(t, ".txt", ExtensionFor(""))
}
