package indexer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store serializes the index to <document_id>.json inside outputDir,
// creating the directory if absent. The write goes through a temp file in
// the same directory followed by a rename, so a re-index atomically replaces
// the previous file and readers never observe a half-written index.
func Store(index *Index, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", ErrPersistence, outputDir, err)
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encoding index %s: %v", ErrPersistence, index.DocumentID, err)
	}

	finalPath := filepath.Join(outputDir, index.DocumentID+".json")

	tmp, err := os.CreateTemp(outputDir, index.DocumentID+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: creating temp file: %v", ErrPersistence, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: writing %s: %v", ErrPersistence, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: closing %s: %v", ErrPersistence, tmpPath, err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("%w: replacing %s: %v", ErrPersistence, finalPath, err)
	}

	return finalPath, nil
}
