package indexer

import (
	"fmt"
	"path/filepath"
	"time"
)

// Assemble composes metadata, the global summary and the ordered sections
// into the canonical index record. It stamps indexed_at and derives the
// document id. A mismatch against the batch plan is an upstream bug, so it
// is the one fatal condition raised here.
func Assemble(meta DocumentMetadata, globalSummary string, sections []Section, totalPages, expectedSections int, sourcePath string) (*Index, error) {
	if len(sections) != expectedSections {
		return nil, fmt.Errorf("%w: got %d sections, batch plan expects %d",
			ErrAssemblyInconsistency, len(sections), expectedSections)
	}

	covered := 0
	next := 1
	for _, s := range sections {
		for _, p := range s.Pages {
			if p != next {
				return nil, fmt.Errorf("%w: section %d covers page %d, expected %d",
					ErrAssemblyInconsistency, s.SectionID, p, next)
			}
			next++
			covered++
		}
	}
	if covered != totalPages {
		return nil, fmt.Errorf("%w: sections cover %d pages, document has %d",
			ErrAssemblyInconsistency, covered, totalPages)
	}

	meta.IndexedAt = time.Now().UTC().Format(time.RFC3339)

	return &Index{
		DocumentID: DeriveDocumentID(meta, sourcePath),
		Title:      meta.Title,
		Category:   meta.Category,
		SourceFile: filepath.Base(sourcePath),
		TotalPages: totalPages,
		Summary:    globalSummary,
		Metadata:   meta,
		Sections:   sections,
	}, nil
}
