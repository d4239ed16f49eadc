package indexer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIndex(summary string) *Index {
	return &Index{
		DocumentID: "PROC-JUB-001",
		Title:      "Solicitud de Jubilación",
		Category:   "jubilacion",
		SourceFile: "proc-jub-001.pdf",
		TotalPages: 5,
		Summary:    summary,
		Metadata: DocumentMetadata{
			ProcedureCode: strPtr("PROC-JUB-001"),
			Title:         "Solicitud de Jubilación",
			Category:      "jubilacion",
			IndexedAt:     "2024-03-15T10:00:00Z",
		},
		Sections: sampleSections(),
	}
}

func TestStoreWritesIndexFile(t *testing.T) {
	dir := t.TempDir()

	path, err := Store(sampleIndex("resumen"), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "PROC-JUB-001.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Index
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, "PROC-JUB-001", loaded.DocumentID)
	assert.Equal(t, 5, loaded.TotalPages)
	assert.Len(t, loaded.Sections, 2)
}

func TestStoreCreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "indices")

	_, err := Store(sampleIndex("resumen"), dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "PROC-JUB-001.json"))
	assert.NoError(t, err)
}

func TestStoreReplacesPriorIndexAtomically(t *testing.T) {
	dir := t.TempDir()

	_, err := Store(sampleIndex("primera versión"), dir)
	require.NoError(t, err)
	_, err = Store(sampleIndex("segunda versión"), dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "re-index must replace, not duplicate")

	data, err := os.ReadFile(filepath.Join(dir, "PROC-JUB-001.json"))
	require.NoError(t, err)

	var loaded Index
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, "segunda versión", loaded.Summary)
}

func TestStoreNullMetadataFieldsSerializeAsNull(t *testing.T) {
	dir := t.TempDir()
	index := sampleIndex("resumen")
	index.Metadata.Version = nil
	index.Metadata.Date = nil

	path, err := Store(index, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	meta := raw["metadata"].(map[string]any)
	assert.Contains(t, meta, "version")
	assert.Nil(t, meta["version"])
	assert.Contains(t, meta, "date")
	assert.Nil(t, meta["date"])
}

func TestStoreFailsWhenDirectoryCannotBeCreated(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// A regular file where the output directory should go.
	_, err := Store(sampleIndex("resumen"), filepath.Join(blocker, "indices"))
	assert.ErrorIs(t, err, ErrPersistence)
}
