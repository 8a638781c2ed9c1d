package search

import (
	"context"
	"regexp"
	"strings"

	"github.com/gatherhq/gather/internal/model"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Tokenize splits a raw query into lower-cased alphanumeric terms, dropping
// single-character tokens.
func Tokenize(q string) []string {
	words := tokenPattern.FindAllString(strings.ToLower(q), -1)
	terms := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) > 1 {
			terms = append(terms, w)
		}
	}
	return terms
}

// Extraction is the outcome of query understanding. It always carries usable
// terms: when the remote service is unavailable they are the local tokens and
// LLMUsed is false. Degradation is a state here, never an error.
type Extraction struct {
	Terms     []string
	DateRange *model.DateRange
	TimeRange *model.TimeRange
	Pool      []model.RemoteResult
	LLMUsed   bool
}

type Extractor struct {
	Remote *RemoteClient
}

func NewExtractor(remote *RemoteClient) *Extractor {
	return &Extractor{Remote: remote}
}

// Extract derives search terms and optional date/time ranges for a query.
// The local tokenization is computed first and survives any remote failure.
func (e *Extractor) Extract(ctx context.Context, q string, noLLM bool) Extraction {
	ext := Extraction{Terms: Tokenize(q)}

	if e.Remote == nil {
		return ext
	}

	resp, err := e.Remote.Search(ctx, q, noLLM)
	if err != nil {
		// Service unavailable, slow, or talking nonsense. Raw terms still work.
		return ext
	}

	if len(resp.Terms) > 0 {
		ext.Terms = resp.Terms
		ext.LLMUsed = true
	}
	ext.DateRange = resp.DateRange
	ext.TimeRange = resp.TimeRange
	ext.Pool = resp.Results
	return ext
}
