package suggest

import "context"

// Derived produces generic suggestions derived from the node text itself.
// It is deterministic and never fails, which makes it the degraded path when
// a real provider is down.
type Derived struct{}

func (Derived) FetchSuggestions(_ context.Context, nodeText string) ([]string, error) {
	return []string{
		nodeText + " - Detail 1",
		nodeText + " - Detail 2",
		nodeText + " - Example",
		nodeText + " - Question",
	}, nil
}
