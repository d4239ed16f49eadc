package prompts

import (
	"context"
	"strings"

	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/bdiaz22/agente/llm"
)

// SectionSynopsis is the parsed model response for one page batch. Any field
// the model omitted stays empty; the indexer fills it locally.
type SectionSynopsis struct {
	Title    string
	Summary  string
	Keywords []string
}

// SummarizeSection asks the model for a bounded synopsis of one batch of
// procedure pages.
func SummarizeSection(ctx context.Context, client llm.LLMClient, model, pagesText string) <-chan async.Result[SectionSynopsis] {
	return async.Go(func() (SectionSynopsis, error) {
		systemPrompt, err := loadPrompt("templates/summarize_section_system.md", map[string]string{})
		if err != nil {
			return SectionSynopsis{}, err
		}

		userPrompt, err := loadPrompt("templates/summarize_section_user.md", map[string]string{
			"PAGES_TEXT": pagesText,
		})
		if err != nil {
			return SectionSynopsis{}, err
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
			return SectionSynopsis{}, err
		}

		return parseSectionResponse(response), nil
	})
}

func parseSectionResponse(response string) SectionSynopsis {
	synopsis := SectionSynopsis{
		Title:   strings.TrimSpace(strings.Join(extractBlock(response, "TITULO:"), " ")),
		Summary: strings.TrimSpace(strings.Join(extractBlock(response, "RESUMEN:"), "\n")),
	}

	keywordLine := strings.Join(extractBlock(response, "KEYWORDS:"), ",")
	for _, kw := range strings.Split(keywordLine, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			synopsis.Keywords = append(synopsis.Keywords, kw)
		}
	}

	// A response with no labelled blocks is still usable as a plain summary.
	if synopsis.Summary == "" && len(synopsis.Keywords) == 0 && synopsis.Title == "" {
		synopsis.Summary = strings.TrimSpace(response)
	}

	return synopsis
}
