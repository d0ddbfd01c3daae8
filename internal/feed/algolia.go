package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/xanthek/hackerstories/internal/story"
)

// StatusError reports a non-2xx response from the search API.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search api returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

type searchResponse struct {
	Hits []story.Story `json:"hits"`
}

// AlgoliaFetcher queries the Hacker News search API once per Fetch.
type AlgoliaFetcher struct {
	endpoint string
	query    string
	client   *http.Client
}

func NewAlgoliaFetcher(endpoint, query string, client *http.Client) *AlgoliaFetcher {
	return &AlgoliaFetcher{endpoint: endpoint, query: query, client: client}
}

func (f *AlgoliaFetcher) requestURL() (string, error) {
	u, err := url.Parse(f.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint: %w", err)
	}
	q := u.Query()
	q.Set("query", f.query)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (f *AlgoliaFetcher) Fetch(ctx context.Context) ([]story.Story, error) {
	target, err := f.requestURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching stories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding stories: %w", err)
	}
	if body.Hits == nil {
		return []story.Story{}, nil
	}
	return body.Hits, nil
}
