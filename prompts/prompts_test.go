package prompts

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/bdiaz22/agente/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient replays a canned model response.
type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) GenerateInference(_ context.Context, _ []llm.Message, callback func(chunk string) error, _ ...llm.LLMOption) error {
	if f.err != nil {
		return f.err
	}
	return callback(f.response)
}

func (f *fakeClient) GetModel() string { return "fake-model" }

func TestLoadPromptRendersTemplates(t *testing.T) {
	out, err := loadPrompt("templates/summarize_section_user.md", map[string]string{
		"PAGES_TEXT": "=== Página 1 ===\ncontenido",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "procedimiento AFP")
	assert.Contains(t, out, "=== Página 1 ===")
}

func TestExtractBlockStopsAtNextMarker(t *testing.T) {
	response := "TITULO: Requisitos de Jubilación\nRESUMEN: Primera línea.\nSegunda línea.\nKEYWORDS: jubilación, pensión"

	assert.Equal(t, []string{"Requisitos de Jubilación"}, extractBlock(response, "TITULO:"))
	assert.Equal(t, []string{"Primera línea.", "Segunda línea."}, extractBlock(response, "RESUMEN:"))
}

func TestExtractBlockMissingMarker(t *testing.T) {
	assert.Empty(t, extractBlock("texto sin marcadores", "RESUMEN:"))
}

func TestSummarizeSectionParsesResponse(t *testing.T) {
	client := &fakeClient{response: "TITULO: Trámite de Traspaso\nRESUMEN: El trámite requiere solicitud formal.\nKEYWORDS: traspaso, fondos, solicitud"}

	synopsis, err := async.Await(SummarizeSection(context.Background(), client, "fake-model", "texto de páginas"))
	require.NoError(t, err)

	assert.Equal(t, "Trámite de Traspaso", synopsis.Title)
	assert.Equal(t, "El trámite requiere solicitud formal.", synopsis.Summary)
	assert.Equal(t, []string{"traspaso", "fondos", "solicitud"}, synopsis.Keywords)
}

func TestSummarizeSectionUnlabelledResponseBecomesSummary(t *testing.T) {
	client := &fakeClient{response: "Un resumen plano sin formato de bloques."}

	synopsis, err := async.Await(SummarizeSection(context.Background(), client, "fake-model", "texto"))
	require.NoError(t, err)

	assert.Equal(t, "Un resumen plano sin formato de bloques.", synopsis.Summary)
	assert.Empty(t, synopsis.Keywords)
}

func TestSummarizeSectionPropagatesClientError(t *testing.T) {
	client := &fakeClient{err: errors.New("service unavailable")}

	_, err := async.Await(SummarizeSection(context.Background(), client, "fake-model", "texto"))
	assert.Error(t, err)
}

func TestSummarizeDocumentExtractsSummaryBlock(t *testing.T) {
	client := &fakeClient{response: "RESUMEN: Objetivo del documento.\nProceso en tres pasos."}

	summary, err := async.Await(SummarizeDocument(context.Background(), client, "fake-model", "sección 1: resumen"))
	require.NoError(t, err)

	assert.Equal(t, "Objetivo del documento.\nProceso en tres pasos.", summary)
}

func TestSummarizeDocumentPlainResponse(t *testing.T) {
	client := &fakeClient{response: "  Resumen global sin marcador.  "}

	summary, err := async.Await(SummarizeDocument(context.Background(), client, "fake-model", "digest"))
	require.NoError(t, err)

	assert.Equal(t, "Resumen global sin marcador.", summary)
	assert.False(t, strings.HasPrefix(summary, " "))
}
