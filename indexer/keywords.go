package indexer

import (
	"regexp"
	"sort"
	"strings"
)

// Spanish stopwords filtered out of keyword candidates.
var stopwords = map[string]struct{}{
	"el": {}, "la": {}, "los": {}, "las": {}, "un": {}, "una": {}, "unos": {}, "unas": {},
	"de": {}, "del": {}, "al": {}, "y": {}, "o": {}, "en": {}, "a": {}, "por": {}, "para": {},
	"con": {}, "sin": {}, "sobre": {}, "que": {}, "es": {}, "son": {}, "está": {}, "están": {},
	"se": {}, "su": {}, "sus": {}, "este": {}, "esta": {}, "estos": {}, "estas": {},
	"como": {}, "si": {}, "no": {}, "más": {}, "pero": {}, "cuando": {}, "donde": {},
}

var wordPattern = regexp.MustCompile(`[a-záéíóúñ]{4,}`)

// ExtractKeywords ranks the non-stopword tokens of text by frequency and
// returns the top max. Ties keep first-appearance order so the result is
// deterministic for a given text.
func ExtractKeywords(text string, max int) []string {
	if max < 1 {
		return nil
	}

	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for _, w := range words {
		if _, skip := stopwords[w]; skip {
			continue
		}
		if _, seen := freq[w]; !seen {
			firstSeen[w] = len(order)
			order = append(order, w)
		}
		freq[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] > freq[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > max {
		order = order[:max]
	}
	return order
}
