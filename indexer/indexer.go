package indexer

import (
	"context"
	"fmt"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/SaiNageswarS/go-collection-boot/linq"
	"go.uber.org/zap"
)

const (
	DefaultBatchSize   = 5
	DefaultConcurrency = 3
	DefaultMaxKeywords = 5
	DefaultOutputDir   = "data/indices"
)

// Options tune one indexing run. BatchSize is validated, never defaulted:
// an invalid value must fail fast instead of being papered over. The other
// zero values take the defaults above. The keyword cap belongs to the
// Summarizer the caller constructs, not to the run.
type Options struct {
	BatchSize   int
	Concurrency int
	OutputDir   string
}

func (o Options) withDefaults() Options {
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	return o
}

// Indexer converts a paginated source document into a persisted hierarchical
// index: global summary, per-section summaries with keywords, and inferred
// metadata. Summarization is best-effort; the pipeline completes regardless
// of service availability.
type Indexer struct {
	summarizer Summarizer
	opts       Options
}

func New(summarizer Summarizer, opts Options) *Indexer {
	return &Indexer{summarizer: summarizer, opts: opts.withDefaults()}
}

// IndexDocument runs the full pipeline for one source document and persists
// the resulting index keyed by document id. Section summarization calls run
// concurrently, bounded by Options.Concurrency, and the assembled sections
// always come out in document order. Cancelling ctx aborts the run before
// anything is written; a partial index is never persisted.
func (ix *Indexer) IndexDocument(ctx context.Context, sourcePath string) (*Index, error) {
	// Note: BatchSize is validated before any I/O so a bad configuration
	// fails fast with no output side effects.
	if ix.opts.BatchSize < 1 {
		return nil, ErrInvalidBatchSize
	}

	pages, err := LoadPages(sourcePath)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded source document",
		zap.String("source", sourcePath), zap.Int("pages", len(pages)))

	batches, err := PlanBatches(pages, ix.opts.BatchSize)
	if err != nil {
		return nil, err
	}

	// Metadata inference only needs the loaded pages, so it runs alongside
	// the summarization fan-out.
	metaTask := async.Go(func() (DocumentMetadata, error) {
		return ExtractMetadata(pages, sourcePath), nil
	})

	sections, err := ix.summarizeBatches(ctx, batches)
	if err != nil {
		return nil, err
	}

	digest, err := sectionDigest(ctx, sections)
	if err != nil {
		return nil, err
	}
	globalSummary, err := ix.summarizer.SummarizeDocument(ctx, digest)
	if err != nil {
		return nil, fmt.Errorf("global summary: %w", err)
	}

	meta, err := async.Await(metaTask)
	if err != nil {
		return nil, err
	}

	index, err := Assemble(meta, globalSummary, sections, len(pages), len(batches), sourcePath)
	if err != nil {
		return nil, err
	}

	outputPath, err := Store(index, ix.opts.OutputDir)
	if err != nil {
		return nil, err
	}
	logger.Info("Index stored",
		zap.String("documentId", index.DocumentID),
		zap.Int("sections", len(index.Sections)),
		zap.String("path", outputPath))

	return index, nil
}

// summarizeBatches fans the batches out to the summarizer, at most
// Concurrency requests in flight, each result landing in its positional
// slot. async.AwaitAll returns results in task order, so no re-sort is
// needed afterwards.
func (ix *Indexer) summarizeBatches(ctx context.Context, batches []Batch) ([]Section, error) {
	sem := make(chan struct{}, ix.opts.Concurrency)

	tasks := make([]<-chan async.Result[Section], len(batches))
	for i, batch := range batches {
		sectionID := i + 1
		tasks[i] = async.Go(func() (Section, error) {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return Section{}, ctx.Err()
			}

			batchText, err := concatBatch(ctx, batch)
			if err != nil {
				return Section{}, fmt.Errorf("section %d: %w", sectionID, err)
			}

			synopsis, err := ix.summarizer.SummarizeSection(ctx, batchText)
			if err != nil {
				return Section{}, fmt.Errorf("section %d: %w", sectionID, err)
			}

			title := synopsis.Title
			if title == "" {
				title = fmt.Sprintf("Sección %d", sectionID)
			}

			nums := batch.PageNumbers()
			return Section{
				SectionID: sectionID,
				Title:     title,
				Pages:     nums,
				PageRange: fmt.Sprintf("%d-%d", nums[0], nums[len(nums)-1]),
				Summary:   synopsis.Summary,
				Keywords:  synopsis.Keywords,
			}, nil
		})
	}

	return async.AwaitAll(tasks...)
}

// concatBatch joins the batch's pages, keeping page boundaries visible so
// the summarizer (and the keyword fallback) can still reason per page.
func concatBatch(ctx context.Context, batch Batch) (string, error) {
	parts, err := linq.Pipe2(
		linq.FromSlice(ctx, []Page(batch)),

		linq.Select(func(p Page) string {
			return fmt.Sprintf("=== Página %d ===\n%s", p.Number, p.Text)
		}),

		linq.ToSlice[string](),
	)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, "\n\n"), nil
}

// sectionDigest builds the input for the global summary out of the section
// summaries alone.
func sectionDigest(ctx context.Context, sections []Section) (string, error) {
	parts, err := linq.Pipe2(
		linq.FromSlice(ctx, sections),

		linq.Select(func(s Section) string {
			return fmt.Sprintf("Sección %d (páginas %s):\n%s", s.SectionID, s.PageRange, s.Summary)
		}),

		linq.ToSlice[string](),
	)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, "\n\n"), nil
}
