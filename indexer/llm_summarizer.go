package indexer

import (
	"context"

	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/bdiaz22/agente/llm"
	"github.com/bdiaz22/agente/prompts"
)

// LLMSummarizer is the network-backed summarizer. Wrap it in Resilient
// before handing it to the pipeline; on its own it fails whenever the
// service does.
type LLMSummarizer struct {
	client llm.LLMClient
	model  string
}

func NewLLMSummarizer(client llm.LLMClient, model string) *LLMSummarizer {
	return &LLMSummarizer{client: client, model: model}
}

func (s *LLMSummarizer) SummarizeSection(ctx context.Context, batchText string) (Synopsis, error) {
	synopsis, err := async.Await(prompts.SummarizeSection(ctx, s.client, s.model, batchText))
	if err != nil {
		return Synopsis{}, err
	}
	return Synopsis{
		Title:    synopsis.Title,
		Summary:  synopsis.Summary,
		Keywords: synopsis.Keywords,
	}, nil
}

func (s *LLMSummarizer) SummarizeDocument(ctx context.Context, sectionDigest string) (string, error) {
	return async.Await(prompts.SummarizeDocument(ctx, s.client, s.model, sectionDigest))
}
