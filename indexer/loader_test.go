package indexer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPagesTextFormFeedSeparated(t *testing.T) {
	path := writeSource(t, "doc.txt", "página uno\fpágina dos\fpágina tres")

	pages, err := LoadPages(path)
	require.NoError(t, err)

	require.Len(t, pages, 3)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, "página uno", pages[0].Text)
	assert.Equal(t, 3, pages[2].Number)
	assert.Equal(t, "página tres", pages[2].Text)
}

func TestLoadPagesTextParagraphBlocks(t *testing.T) {
	path := writeSource(t, "doc.txt", "primer bloque\n\nsegundo bloque\n\ntercer bloque")

	pages, err := LoadPages(path)
	require.NoError(t, err)

	assert.Len(t, pages, 3)
}

func TestLoadPagesSkipsBlankPagesAndRenumbers(t *testing.T) {
	path := writeSource(t, "doc.txt", "uno\f   \f\fdos")

	pages, err := LoadPages(path)
	require.NoError(t, err)

	require.Len(t, pages, 2)
	assert.Equal(t, []int{1, 2}, []int{pages[0].Number, pages[1].Number})
	assert.Equal(t, "dos", pages[1].Text)
}

func TestLoadPagesMarkdownSplitsAtHeadings(t *testing.T) {
	content := "# Traspaso entre Fondos\n\nintro del documento\n\n## Requisitos\n\nlista de requisitos\n\n## Plazos\n\ndetalle de plazos\n"
	path := writeSource(t, "doc.md", content)

	pages, err := LoadPages(path)
	require.NoError(t, err)

	require.Len(t, pages, 3)
	assert.Contains(t, pages[0].Text, "# Traspaso entre Fondos")
	assert.Contains(t, pages[1].Text, "## Requisitos")
	assert.Contains(t, pages[2].Text, "## Plazos")
}

func TestLoadPagesMarkdownWithoutHeadingsIsOnePage(t *testing.T) {
	path := writeSource(t, "doc.md", "texto plano sin encabezados\n\nsegundo párrafo")

	pages, err := LoadPages(path)
	require.NoError(t, err)

	assert.Len(t, pages, 1)
}

func TestLoadPagesMissingFile(t *testing.T) {
	_, err := LoadPages(filepath.Join(t.TempDir(), "no-existe.pdf"))

	assert.ErrorIs(t, err, ErrSourceRead)
}

func TestLoadPagesEmptySource(t *testing.T) {
	path := writeSource(t, "doc.txt", "   \n\n  ")

	_, err := LoadPages(path)

	assert.ErrorIs(t, err, ErrSourceRead)
}

func TestLoadPagesCorruptPDF(t *testing.T) {
	path := writeSource(t, "doc.pdf", "esto no es un pdf")

	_, err := LoadPages(path)

	assert.ErrorIs(t, err, ErrSourceRead)
}
