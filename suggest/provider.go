// Package suggest defines the suggestion collaborator used for node
// expansion. The core never talks to an AI backend directly; it sees only
// the Provider interface and a deterministic fallback.
package suggest

import "context"

// MaxSuggestions caps how many suggestions a provider may return per node.
const MaxSuggestions = 5

// Provider returns short suggestion strings for a node's text. A provider
// either resolves with 1..MaxSuggestions strings or fails; it never returns
// partial data alongside an error.
type Provider interface {
	FetchSuggestions(ctx context.Context, nodeText string) ([]string, error)
}

// Truncate caps suggestions at MaxSuggestions, preserving order.
func Truncate(suggestions []string) []string {
	if len(suggestions) > MaxSuggestions {
		return suggestions[:MaxSuggestions]
	}
	return suggestions
}
