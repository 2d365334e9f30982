package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "  A plain text document.\nSecond line.  \n")

	doc, err := New(zerolog.Nop()).LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "notes", doc.Name)
	assert.Equal(t, "A plain text document.\nSecond line.", doc.Content)
}

func TestLoadFileMarkdown(t *testing.T) {
	dir := t.TempDir()
	md := "# Heading\n\nSome *emphasized* prose with a [link](https://example.com).\n\n- first item\n- second item\n"
	path := writeFile(t, dir, "guide.md", md)

	doc, err := New(zerolog.Nop()).LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "guide", doc.Name)
	assert.Contains(t, doc.Content, "Heading")
	assert.Contains(t, doc.Content, "Some emphasized prose with a link.")
	assert.Contains(t, doc.Content, "first item")
	// markup itself must not survive
	assert.NotContains(t, doc.Content, "#")
	assert.NotContains(t, doc.Content, "*")
	assert.NotContains(t, doc.Content, "](")
}

func TestLoadFileUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "image.png", "not really an image")

	_, err := New(zerolog.Nop()).LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.txt", "first document")
	writeFile(t, dir, "two.md", "second document")
	writeFile(t, dir, "skipme.bin", "binary junk")
	writeFile(t, dir, "empty.txt", "   ")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	docs, err := New(zerolog.Nop()).LoadDir(dir)
	require.NoError(t, err)

	require.Len(t, docs, 2)
	names := []string{docs[0].Name, docs[1].Name}
	assert.ElementsMatch(t, []string{"one", "two"}, names)
}

func TestLoadDirMissing(t *testing.T) {
	_, err := New(zerolog.Nop()).LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
