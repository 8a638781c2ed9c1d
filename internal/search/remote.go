package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gatherhq/gather/internal/model"
)

// DefaultRemoteTimeout bounds one enrichment attempt. There are no retries:
// a second attempt would blow the request's own latency budget.
const DefaultRemoteTimeout = 15 * time.Second

// RemoteClient talks to the query-understanding service.
type RemoteClient struct {
	BaseURL string
	Top     int
	Timeout time.Duration
	HTTP    *http.Client
}

func NewRemoteClient(baseURL string, top int, timeout time.Duration) *RemoteClient {
	if top <= 0 {
		top = 100
	}
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &RemoteClient{
		BaseURL: baseURL,
		Top:     top,
		Timeout: timeout,
		HTTP:    &http.Client{},
	}
}

// RemoteResponse mirrors the service's /search JSON body.
type RemoteResponse struct {
	Terms     []string             `json:"terms"`
	DateRange *model.DateRange     `json:"date_range"`
	TimeRange *model.TimeRange     `json:"time_range"`
	Results   []model.RemoteResult `json:"results"`
}

// Search issues a single time-boxed request. Every failure mode (network,
// timeout, non-2xx, malformed body) comes back as an error for the extractor
// to swallow.
func (c *RemoteClient) Search(ctx context.Context, q string, noLLM bool) (*RemoteResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", q)
	params.Set("top", strconv.Itoa(c.Top))
	params.Set("no_llm", strconv.FormatBool(noLLM))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("enrichment service returned HTTP %d", resp.StatusCode)
	}

	var out RemoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode enrichment response: %w", err)
	}
	return &out, nil
}
