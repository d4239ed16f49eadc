package cmd

import (
	"testing"

	"github.com/bdiaz22/agente/appconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyConfigFillsUnsetFlags(t *testing.T) {
	ccfg := &appconfig.AppConfig{
		BatchSize:      8,
		SummaryWorkers: 4,
		MaxKeywords:    7,
		IndicesDir:     "salida/indices",
		LLMProvider:    "ollama",
		SummaryModel:   "llama3.2",
	}

	applyConfig(indexCmd, ccfg)

	assert.Equal(t, 8, batchSize)
	assert.Equal(t, 4, concurrency)
	assert.Equal(t, 7, maxKeywords)
	assert.Equal(t, "salida/indices", outputDir)
	assert.Equal(t, "ollama", provider)
	assert.Equal(t, "llama3.2", model)
	assert.Equal(t, "data/documentos", ccfg.DocumentsDir)
}

func TestApplyConfigKeepsExplicitFlags(t *testing.T) {
	require.NoError(t, indexCmd.Flags().Set("batch-size", "2"))

	ccfg := &appconfig.AppConfig{BatchSize: 9, DocumentsDir: "docs"}
	applyConfig(indexCmd, ccfg)

	assert.Equal(t, 2, batchSize)
	assert.Equal(t, "docs", ccfg.DocumentsDir)
}
