package suggestion

import (
	"context"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/inventry-dev/inventry/pkg/domain/model"
)

// llmClient implements Service by calling an LLM directly through gollem,
// for deployments that do not run the standalone suggestion API.
type llmClient struct {
	llm    gollem.LLMClient
	prompt *template.Template
}

// LLMOption is a functional option for the LLM suggestion client
type LLMOption func(*llmClient) error

// WithPromptTemplate overrides the default analyst prompt template
func WithPromptTemplate(tmpl string) LLMOption {
	return func(c *llmClient) error {
		parsed, err := parsePromptTemplate(tmpl)
		if err != nil {
			return err
		}
		c.prompt = parsed
		return nil
	}
}

// NewLLM creates a suggestion service backed by the provided LLM client
func NewLLM(llm gollem.LLMClient, opts ...LLMOption) (Service, error) {
	if llm == nil {
		return nil, goerr.New("LLM client is required")
	}

	prompt, err := parsePromptTemplate(DefaultPromptTemplate)
	if err != nil {
		return nil, err
	}

	c := &llmClient{
		llm:    llm,
		prompt: prompt,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *llmClient) Suggest(ctx context.Context, idea string, patents []model.Patent) (string, error) {
	prompt, err := renderPrompt(c.prompt, idea, patents)
	if err != nil {
		return "", err
	}

	session, err := c.llm.NewSession(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate suggestion")
	}

	if len(resp.Texts) == 0 || resp.Texts[0] == "" {
		return "", goerr.New("LLM returned empty suggestion")
	}

	return resp.Texts[0], nil
}
