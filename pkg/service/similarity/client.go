package similarity

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"

	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/utils/safe"
)

const searchPath = "/api/bert_search"

// client implements Service against the HTTP similarity search API
type client struct {
	endpoint   string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// New creates a new similarity search client for the given base URL
func New(baseURL string, opts ...Option) (Service, error) {
	if baseURL == "" {
		return nil, goerr.New("similarity service URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid similarity service URL", goerr.V("url", baseURL))
	}

	c := &client{
		endpoint:   u.JoinPath(searchPath).String(),
		httpClient: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type searchRequest struct {
	Idea string `json:"idea"`
}

type searchResponse struct {
	SimilarPatents []model.Patent `json:"similar_patents"`
}

func (c *client) Search(ctx context.Context, idea string) ([]model.Patent, error) {
	body, err := json.Marshal(searchRequest{Idea: idea})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode search request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build search request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "similarity search request failed")
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("similarity search returned non-OK status",
			goerr.V("status", resp.StatusCode))
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, goerr.Wrap(err, "failed to decode search response")
	}

	// Absent field decodes as nil; normalize so callers can rely on a list.
	if decoded.SimilarPatents == nil {
		return []model.Patent{}, nil
	}
	return decoded.SimilarPatents, nil
}
