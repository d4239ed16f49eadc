package indexer

import (
	"context"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

const (
	// fallbackSummaryWords bounds the extractive section summary.
	fallbackSummaryWords = 200
	// globalSummaryWords bounds the document-level summary.
	globalSummaryWords = 200
)

// Summarizer turns batch text into a section synopsis and section digests
// into a document summary. The LLM-backed implementation lives next to the
// prompts package; Extractive is the deterministic local fallback; Resilient
// is the policy that combines them. All non-determinism stays behind this
// seam.
type Summarizer interface {
	SummarizeSection(ctx context.Context, batchText string) (Synopsis, error)
	SummarizeDocument(ctx context.Context, sectionDigest string) (string, error)
}

// Extractive is the dependency-free fallback summarizer: leading words as
// summary, frequency-ranked tokens as keywords. Never fails.
type Extractive struct {
	MaxKeywords int
}

func (e Extractive) SummarizeSection(_ context.Context, batchText string) (Synopsis, error) {
	return Synopsis{
		Summary:  truncateWords(batchText, fallbackSummaryWords),
		Keywords: ExtractKeywords(batchText, e.MaxKeywords),
	}, nil
}

func (e Extractive) SummarizeDocument(_ context.Context, sectionDigest string) (string, error) {
	return truncateWords(sectionDigest, globalSummaryWords), nil
}

// Resilient tries the primary summarizer and degrades to Extractive on any
// failure or empty result. Each synopsis field falls back independently, so
// a service response carrying a summary but no keywords keeps its summary.
// Degraded paths are warnings, never errors; the pipeline always moves
// forward.
type Resilient struct {
	primary  Summarizer
	fallback Extractive
}

func NewResilient(primary Summarizer, maxKeywords int) *Resilient {
	return &Resilient{
		primary:  primary,
		fallback: Extractive{MaxKeywords: maxKeywords},
	}
}

func (r *Resilient) SummarizeSection(ctx context.Context, batchText string) (Synopsis, error) {
	syn, err := r.primary.SummarizeSection(ctx, batchText)
	if err != nil || strings.TrimSpace(syn.Summary) == "" {
		if ctx.Err() != nil {
			return Synopsis{}, ctx.Err()
		}
		logger.Log.Warn("Summarization failed, using extractive fallback", zap.Error(err))
		return r.fallback.SummarizeSection(ctx, batchText)
	}

	if len(syn.Keywords) == 0 {
		syn.Keywords = ExtractKeywords(batchText, r.fallback.MaxKeywords)
	} else if len(syn.Keywords) > r.fallback.MaxKeywords {
		syn.Keywords = syn.Keywords[:r.fallback.MaxKeywords]
	}
	return syn, nil
}

func (r *Resilient) SummarizeDocument(ctx context.Context, sectionDigest string) (string, error) {
	summary, err := r.primary.SummarizeDocument(ctx, sectionDigest)
	if err != nil || strings.TrimSpace(summary) == "" {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.Log.Warn("Global summarization failed, using extractive fallback", zap.Error(err))
		return r.fallback.SummarizeDocument(ctx, sectionDigest)
	}
	return summary, nil
}

func truncateWords(text string, max int) string {
	words := strings.Fields(text)
	if len(words) <= max {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:max], " ") + "..."
}
