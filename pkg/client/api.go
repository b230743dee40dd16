package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"

	"github.com/inventry-dev/inventry/pkg/domain/model"
	"github.com/inventry-dev/inventry/pkg/domain/types"
	"github.com/inventry-dev/inventry/pkg/utils/safe"
)

// API is the server surface the conversation session depends on
type API interface {
	Me(ctx context.Context) (*Identity, error)
	CreateChat(ctx context.Context) (*model.Chat, error)
	ListChats(ctx context.Context) ([]*model.Chat, error)
	SendPrompt(ctx context.Context, chatID types.ChatID, prompt string) (*model.Message, error)
	RenameChat(ctx context.Context, chatID types.ChatID, name string) error
	DeleteChat(ctx context.Context, chatID types.ChatID) error
}

// Identity describes the authenticated caller as reported by the server
type Identity struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// HTTPClient implements API over the chat server's JSON endpoints
type HTTPClient struct {
	baseURL *url.URL
	token   string
	hc      *http.Client
}

var _ API = &HTTPClient{}

// HTTPOption is a functional option for HTTPClient configuration
type HTTPOption func(*HTTPClient)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) {
		c.hc = hc
	}
}

// WithToken sets the bearer credential attached to every request
func WithToken(token string) HTTPOption {
	return func(c *HTTPClient) {
		c.token = token
	}
}

// NewHTTP creates an API client for the given server base URL
func NewHTTP(baseURL string, opts ...HTTPOption) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, goerr.New("server URL is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid server URL", goerr.V("url", baseURL))
	}

	c := &HTTPClient{
		baseURL: u,
		hc:      http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// call performs one request and decodes the envelope. out may be nil when
// the caller only cares about success.
func (c *HTTPClient) call(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), reader)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.V("path", path))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return goerr.Wrap(err, "request failed", goerr.V("path", path))
	}
	defer safe.Close(ctx, resp.Body)

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return goerr.Wrap(err, "failed to decode response",
			goerr.V("path", path), goerr.V("status", resp.StatusCode))
	}

	if resp.StatusCode != http.StatusOK || !env.Success {
		return goerr.New("server rejected request",
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
			goerr.V("message", env.Message))
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return goerr.Wrap(err, "failed to decode response data", goerr.V("path", path))
		}
	}
	return nil
}

func (c *HTTPClient) Me(ctx context.Context) (*Identity, error) {
	var id Identity
	if err := c.call(ctx, http.MethodGet, "/api/auth/me", nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (c *HTTPClient) CreateChat(ctx context.Context) (*model.Chat, error) {
	var chat model.Chat
	if err := c.call(ctx, http.MethodPost, "/api/chat/create", struct{}{}, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

func (c *HTTPClient) ListChats(ctx context.Context) ([]*model.Chat, error) {
	var chats []*model.Chat
	if err := c.call(ctx, http.MethodGet, "/api/chat/get", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (c *HTTPClient) SendPrompt(ctx context.Context, chatID types.ChatID, prompt string) (*model.Message, error) {
	body := map[string]string{"chatId": chatID.String(), "prompt": prompt}
	var msg model.Message
	if err := c.call(ctx, http.MethodPost, "/api/chat/ai", body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *HTTPClient) RenameChat(ctx context.Context, chatID types.ChatID, name string) error {
	body := map[string]string{"chatId": chatID.String(), "name": name}
	return c.call(ctx, http.MethodPost, "/api/chat/rename", body, nil)
}

func (c *HTTPClient) DeleteChat(ctx context.Context, chatID types.ChatID) error {
	body := map[string]string{"chatId": chatID.String()}
	return c.call(ctx, http.MethodPost, "/api/chat/delete", body, nil)
}
