package enrich

import (
	"regexp"
	"strings"
)

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "is": true, "are": true, "was": true, "be": true, "i": true,
	"me": true, "my": true, "this": true, "that": true, "it": true, "do": true,
	"want": true, "find": true, "looking": true, "something": true,
	"events": true, "event": true, "any": true, "some": true, "what": true,
	"show": true, "get": true, "can": true, "will": true, "like": true,
	"go": true, "going": true, "around": true, "near": true, "about": true,
	"up": true, "out": true, "next": true, "weekend": true, "today": true,
	"tomorrow": true, "tonight": true, "week": true,
}

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// BaseTerms splits a query into meaningful lower-cased words, stripping stop
// words and single characters. "find me some jazz tonight" -> ["jazz"].
func BaseTerms(query string) []string {
	words := wordPattern.FindAllString(strings.ToLower(query), -1)
	terms := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) > 1 && !stopWords[w] {
			terms = append(terms, w)
		}
	}
	return terms
}

// mergeTerms appends LLM keywords that are not already present, keeping the
// base terms first.
func mergeTerms(base, extra []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(base)+len(extra))
	for _, t := range base {
		if !seen[t] {
			out = append(out, t)
			seen[t] = true
		}
	}
	for _, t := range extra {
		if !seen[t] {
			out = append(out, t)
			seen[t] = true
		}
	}
	return out
}
