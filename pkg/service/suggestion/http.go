package suggestion

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

const suggestPath = "/api/gemini_suggest"

// httpClient implements Service against the HTTP suggestion API
type httpClient struct {
	endpoint string
	hc       *http.Client
}

// HTTPOption is a functional option for the HTTP suggestion client
type HTTPOption func(*httpClient)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *httpClient) {
		c.hc = hc
	}
}

// NewHTTP creates a suggestion client for the given base URL
func NewHTTP(baseURL string, opts ...HTTPOption) (Service, error) {
	if baseURL == "" {
		return nil, goerr.New("suggestion service URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid suggestion service URL", goerr.V("url", baseURL))
	}

	c := &httpClient{
		endpoint: u.JoinPath(suggestPath).String(),
		hc:       http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type suggestRequest struct {
	Idea           string         `json:"idea"`
	SimilarPatents []model.Patent `json:"similar_patents"`
}

type suggestResponse struct {
	Suggestion string `json:"suggestion"`
}

func (c *httpClient) Suggest(ctx context.Context, idea string, patents []model.Patent) (string, error) {
	if patents == nil {
		patents = []model.Patent{}
	}

	body, err := json.Marshal(suggestRequest{Idea: idea, SimilarPatents: patents})
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode suggest request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", goerr.Wrap(err, "failed to build suggest request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", goerr.Wrap(err, "suggestion request failed")
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", goerr.New("suggestion service returned non-OK status",
			goerr.V("status", resp.StatusCode))
	}

	var decoded suggestResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", goerr.Wrap(err, "failed to decode suggest response")
	}

	if decoded.Suggestion == "" {
		return "", goerr.New("suggestion service returned empty suggestion")
	}

	return decoded.Suggestion, nil
}
