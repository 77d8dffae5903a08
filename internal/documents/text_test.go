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

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"bom stripped", "\ufeffSenior Engineer", "Senior Engineer"},
		{"crlf", "line one\r\nline two\r\n", "line one\nline two"},
		{"bare cr", "line one\rline two", "line one\nline two"},
		{"trailing spaces", "skills   \nGo\t\n", "skills\nGo"},
		{"outer blank lines", "\n\n  \nSUMMARY\n\n\n", "SUMMARY"},
		{"inner blank lines kept", "A\n\nB", "A\n\nB"},
		{"leading indent kept", "EXPERIENCE\n  - led team", "EXPERIENCE\n  - led team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestCleanText_NoCarriageReturnsRemain(t *testing.T) {
	got := CleanText("\ufeffa\r\nb\rc\n\r\nd")
	assert.NotContains(t, got, "\r")
	assert.NotContains(t, got, "\ufeff")
	assert.Equal(t, "a\nb\nc\n\nd", got)
}

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("\ufeffBackend Engineer \r\n\r\nAcme Corp\r\n"), 0o644))

	got, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\n\nAcme Corp", got)
}

func TestReadText_InvalidUTF8Replaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("caf\xe9 owner"), 0o644))

	got, err := ReadText(path)
	require.NoError(t, err)
	assert.Equal(t, "caf\uFFFD owner", got)
}

func TestReadText_NotFound(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "file not found")
}
