package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLLMOptionsApply(t *testing.T) {
	settings := LLMSettings{}

	for _, opt := range []LLMOption{
		WithModel("claude-3-5-haiku-20241022"),
		WithTemperature(0.3),
		WithMaxTokens(4000),
		WithSystemPrompt("system"),
		WithStreaming(true),
	} {
		opt(&settings)
	}

	assert.Equal(t, "claude-3-5-haiku-20241022", settings.model)
	assert.Equal(t, 0.3, settings.temperature)
	assert.Equal(t, 4000, settings.maxTokens)
	assert.Equal(t, "system", settings.system)
	assert.True(t, settings.stream)
}
