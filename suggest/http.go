package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// HTTPProvider fetches suggestions from an external service. The service
// receives {"text": ...} and responds with {"suggestions": [...]}. Which
// model (if any) sits behind that endpoint is the service's business.
type HTTPProvider struct {
	URL    string
	Client *http.Client
}

// NewHTTPProvider creates a provider for the given endpoint URL.
func NewHTTPProvider(url string) *HTTPProvider {
	return &HTTPProvider{
		URL:    url,
		Client: &http.Client{Timeout: defaultTimeout},
	}
}

func (p *HTTPProvider) FetchSuggestions(ctx context.Context, nodeText string) ([]string, error) {
	body, err := json.Marshal(map[string]string{"text": nodeText})
	if err != nil {
		return nil, fmt.Errorf("encode suggestion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build suggestion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch suggestions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode suggestion response: %w", err)
	}
	if len(payload.Suggestions) == 0 {
		return nil, fmt.Errorf("suggestion service returned no suggestions")
	}

	return Truncate(payload.Suggestions), nil
}
