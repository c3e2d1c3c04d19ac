package suggest

import "context"

type fallbackProvider struct {
	primary  Provider
	fallback Provider
}

// WithFallback wraps primary so that a failure (or an empty result) silently
// degrades to the fallback provider instead of blocking expansion.
func WithFallback(primary, fallback Provider) Provider {
	return &fallbackProvider{primary: primary, fallback: fallback}
}

func (p *fallbackProvider) FetchSuggestions(ctx context.Context, nodeText string) ([]string, error) {
	suggestions, err := p.primary.FetchSuggestions(ctx, nodeText)
	if err != nil || len(suggestions) == 0 {
		return p.fallback.FetchSuggestions(ctx, nodeText)
	}
	return Truncate(suggestions), nil
}
