package indexer

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// metadataSearchPages bounds how many leading pages are scanned for
// labelled metadata fields.
const metadataSearchPages = 2

// Category lookup for the domain token of a procedure code. Codes whose
// domain is not listed fall through to the directory heuristic.
var categoryByDomain = map[string]string{
	"JUB":  "jubilacion",
	"TRAS": "traspasos",
	"AFI":  "afiliacion",
	"REC":  "reclamos",
}

var (
	codeLabelPattern    = regexp.MustCompile(`(?i)(?:\*\*)?C[ÓO]DIGO(?:\*\*)?\s*:\s*([A-Z0-9\-]+)`)
	codeStemPattern     = regexp.MustCompile(`(?i)proc-([a-z]+)-(\d+)`)
	titleLabelPattern   = regexp.MustCompile(`(?i)(?:\*\*)?PROCEDIMIENTO(?:\*\*)?\s*:\s*(.+)`)
	markdownTitle       = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	versionLabelPattern = regexp.MustCompile(`(?i)(?:\*\*)?VERSI[ÓO]N(?:\*\*)?\s*:\s*([\d.]+)`)
	versionTokenPattern = regexp.MustCompile(`\bv(\d+(?:\.\d+)?)\b`)
	dateLabelPattern    = regexp.MustCompile(`(?i)(?:\*\*)?FECHA(?:\*\*)?\s*:\s*(\d{4}-\d{2}-\d{2}|\d{2}/\d{2}/\d{4})`)
	dateTokenPattern    = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
)

// ExtractMetadata infers document identity from the leading pages and the
// source path. Each field runs its own ordered heuristic chain; a chain that
// finds nothing yields nil (or a filename-derived fallback for title and
// category) and never fails the run.
func ExtractMetadata(pages []Page, sourcePath string) DocumentMetadata {
	head := leadingText(pages, metadataSearchPages)

	code := extractCode(head, sourcePath)
	return DocumentMetadata{
		ProcedureCode: code,
		Title:         extractTitle(pages, sourcePath),
		Category:      extractCategory(code, sourcePath),
		Version:       extractVersion(head),
		Date:          extractDate(head),
	}
}

// DeriveDocumentID returns the storage key for the index: the procedure code
// when metadata found one, else the normalized source filename stem. Stable
// across re-indexing of the same source.
func DeriveDocumentID(meta DocumentMetadata, sourcePath string) string {
	if meta.ProcedureCode != nil {
		return *meta.ProcedureCode
	}
	return normalizeStem(fileStem(sourcePath))
}

func extractCode(head, sourcePath string) *string {
	if m := codeLabelPattern.FindStringSubmatch(head); m != nil {
		code := strings.ToUpper(m[1])
		return &code
	}
	if m := codeStemPattern.FindStringSubmatch(fileStem(sourcePath)); m != nil {
		code := "PROC-" + strings.ToUpper(m[1]) + "-" + m[2]
		return &code
	}
	return nil
}

func extractCategory(code *string, sourcePath string) string {
	if code != nil {
		parts := strings.Split(*code, "-")
		if len(parts) == 3 {
			if cat, ok := categoryByDomain[parts[1]]; ok {
				return cat
			}
		}
	}

	parent := filepath.Base(filepath.Dir(sourcePath))
	if parent == "documentos" || parent == "." || parent == string(filepath.Separator) {
		return "general"
	}
	return parent
}

func extractTitle(pages []Page, sourcePath string) string {
	if len(pages) > 0 {
		first := pages[0].Text

		if m := titleLabelPattern.FindStringSubmatch(first); m != nil {
			return cleanHeading(m[1])
		}
		if m := markdownTitle.FindStringSubmatch(first); m != nil {
			return cleanHeading(m[1])
		}
		if line := firstHeadingLike(first); line != "" {
			return line
		}
	}
	return humanizeStem(fileStem(sourcePath))
}

// firstHeadingLike scans the first lines of a page for something that reads
// like a title: short, non-empty, starting with an uppercase rune.
func firstHeadingLike(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i >= 10 {
			break
		}
		line = strings.TrimSpace(line)
		if len(line) <= 10 || len(line) >= 100 {
			continue
		}
		if r := []rune(line)[0]; unicode.IsUpper(r) {
			return line
		}
	}
	return ""
}

func extractVersion(head string) *string {
	if m := versionLabelPattern.FindStringSubmatch(head); m != nil {
		return &m[1]
	}
	if m := versionTokenPattern.FindStringSubmatch(head); m != nil {
		return &m[1]
	}
	return nil
}

func extractDate(head string) *string {
	if m := dateLabelPattern.FindStringSubmatch(head); m != nil {
		return &m[1]
	}
	if m := dateTokenPattern.FindString(head); m != "" {
		return &m
	}
	return nil
}

func leadingText(pages []Page, n int) string {
	var parts []string
	for i, p := range pages {
		if i >= n {
			break
		}
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n")
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func normalizeStem(stem string) string {
	normalized := strings.NewReplacer("_", "-", " ", "-").Replace(stem)
	return strings.ToUpper(normalized)
}

func humanizeStem(stem string) string {
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func cleanHeading(s string) string {
	s = strings.NewReplacer("**", "", "__", "").Replace(s)
	return strings.TrimSpace(s)
}
