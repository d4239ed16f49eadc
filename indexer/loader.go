package indexer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// LoadPages extracts the ordered page sequence from a source document.
// Supported formats: .pdf (one page per PDF page), .md (one page per heading
// section) and .txt (form-feed separated pages, else paragraph blocks).
// Blank pages are dropped and the survivors renumbered 1..N so batches always
// partition the sequence without gaps.
func LoadPages(path string) ([]Page, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceRead, path, err)
	}

	var (
		texts []string
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		texts, err = extractPDFPages(path)
	case ".md":
		texts, err = extractMarkdownPages(path)
	default:
		texts, err = extractTextPages(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceRead, path, err)
	}

	var pages []Page
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		pages = append(pages, Page{Number: len(pages) + 1, Text: t})
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: %s: no text extracted", ErrSourceRead, path)
	}
	return pages, nil
}

func extractPDFPages(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	reader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return nil, err
	}

	var texts []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page should not sink the document.
			continue
		}
		texts = append(texts, pageText)
	}
	return texts, nil
}

// extractMarkdownPages slices a markdown file at its headings; each heading
// plus its body becomes one page unit. A file without headings is one page.
func extractMarkdownPages(path string) ([]string, error) {
	md, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root := goldmark.DefaultParser().Parse(text.NewReader(md))

	var starts []int
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Lines().Len() > 0 {
			// Back up to the line start so the "#" marker stays with the page.
			start := h.Lines().At(0).Start
			for start > 0 && md[start-1] != '\n' {
				start--
			}
			starts = append(starts, start)
		}
		return ast.WalkContinue, nil
	})

	if len(starts) == 0 {
		return []string{string(md)}, nil
	}

	var texts []string
	if starts[0] > 0 {
		texts = append(texts, string(md[:starts[0]]))
	}
	for i, start := range starts {
		end := len(md)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		texts = append(texts, string(md[start:end]))
	}
	return texts, nil
}

func extractTextPages(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := strings.ReplaceAll(string(raw), "\r\n", "\n")

	if strings.Contains(content, "\f") {
		return strings.Split(content, "\f"), nil
	}
	return strings.Split(content, "\n\n"), nil
}
