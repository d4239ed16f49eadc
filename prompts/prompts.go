package prompts

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*
var templatesFS embed.FS

func loadPrompt(templatePath string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(templatesFS, templatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// responseMarkers are the labels the summarization templates instruct the
// model to emit. extractBlock stops a block at the next marker.
var responseMarkers = []string{"TITULO:", "RESUMEN:", "KEYWORDS:"}

// extractBlock collects the lines following the given marker, up to the next
// marker or the end of the response.
func extractBlock(response, marker string) []string {
	var block []string
	inBlock := false

	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)

		if rest, ok := strings.CutPrefix(line, marker); ok {
			inBlock = true
			if rest = strings.TrimSpace(rest); rest != "" {
				block = append(block, rest)
			}
			continue
		}
		if !inBlock {
			continue
		}
		if startsWithMarker(line) {
			break
		}
		if line != "" {
			block = append(block, line)
		}
	}

	return block
}

func startsWithMarker(line string) bool {
	for _, m := range responseMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}
