package llm

import (
	"context"
)

// Client is the one capability the enrichment service needs from a language
// model provider.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
