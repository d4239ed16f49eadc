package prompts

import (
	"context"
	"strings"

	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/bdiaz22/agente/llm"
)

// SummarizeDocument produces the document-level summary from the section
// digests. It never sees the original pages, only the per-section summaries,
// which keeps the cost independent of document size.
func SummarizeDocument(ctx context.Context, client llm.LLMClient, model, sectionsText string) <-chan async.Result[string] {
	return async.Go(func() (string, error) {
		systemPrompt, err := loadPrompt("templates/summarize_document_system.md", map[string]string{})
		if err != nil {
			return "", err
		}

		userPrompt, err := loadPrompt("templates/summarize_document_user.md", map[string]string{
			"SECTIONS_TEXT": sectionsText,
		})
		if err != nil {
			return "", err
		}

		messages := []llm.Message{
			{
				Role:    "user",
				Content: userPrompt,
			},
		}

		var response string
		err = client.GenerateInference(ctx, messages, func(chunk string) error {
			response += chunk
			return nil
		}, llm.WithModel(model),
			llm.WithMaxTokens(4000),
			llm.WithTemperature(0.3),
			llm.WithSystemPrompt(systemPrompt),
		)

		if err != nil {
			return "", err
		}

		if summaryLines := extractBlock(response, "RESUMEN:"); len(summaryLines) > 0 {
			return strings.Join(summaryLines, "\n"), nil
		}
		return strings.TrimSpace(response), nil
	})
}
