package config

import (
	"context"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/inventry-dev/inventry/pkg/service/reply"
	"github.com/inventry-dev/inventry/pkg/service/similarity"
	"github.com/inventry-dev/inventry/pkg/service/suggestion"
	"github.com/inventry-dev/inventry/pkg/utils/logging"
)

// Upstream holds CLI flags for the two downstream AI services. The
// suggestion side runs either against the standalone HTTP API or directly
// against Gemini; the HTTP endpoint wins when both are configured.
type Upstream struct {
	similarityURL  string
	suggestionURL  string
	geminiProject  string
	geminiLocation string
	searchTimeout  time.Duration
	suggestTimeout time.Duration
	promptFile     string
}

// Flags returns CLI flags for upstream service configuration
func (u *Upstream) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "similarity-url",
			Usage:       "Base URL of the prior-art similarity search service (required)",
			Sources:     cli.EnvVars("INVENTRY_SIMILARITY_URL"),
			Destination: &u.similarityURL,
		},
		&cli.StringFlag{
			Name:        "suggestion-url",
			Usage:       "Base URL of the suggestion service (leave empty to call Gemini directly)",
			Sources:     cli.EnvVars("INVENTRY_SUGGESTION_URL"),
			Destination: &u.suggestionURL,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for direct Gemini suggestion",
			Sources:     cli.EnvVars("INVENTRY_GEMINI_PROJECT"),
			Destination: &u.geminiProject,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for direct Gemini suggestion",
			Value:       "us-central1",
			Sources:     cli.EnvVars("INVENTRY_GEMINI_LOCATION"),
			Destination: &u.geminiLocation,
		},
		&cli.DurationFlag{
			Name:        "search-timeout",
			Usage:       "Timeout of one similarity search call",
			Value:       10 * time.Second,
			Sources:     cli.EnvVars("INVENTRY_SEARCH_TIMEOUT"),
			Destination: &u.searchTimeout,
		},
		&cli.DurationFlag{
			Name:        "suggest-timeout",
			Usage:       "Timeout of one suggestion call",
			Value:       25 * time.Second,
			Sources:     cli.EnvVars("INVENTRY_SUGGEST_TIMEOUT"),
			Destination: &u.suggestTimeout,
		},
		&cli.StringFlag{
			Name:        "prompt-file",
			Usage:       "TOML file overriding the suggestion prompt template",
			Sources:     cli.EnvVars("INVENTRY_PROMPT_FILE"),
			Destination: &u.promptFile,
		},
	}
}

// promptConfig is the shape of the optional prompt override file
type promptConfig struct {
	Suggestion struct {
		Template string `toml:"template"`
	} `toml:"suggestion"`
}

func (u *Upstream) loadPromptTemplate() (string, error) {
	if u.promptFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(u.promptFile)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read prompt file", goerr.V("path", u.promptFile))
	}

	var cfg promptConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return "", goerr.Wrap(err, "failed to parse prompt file", goerr.V("path", u.promptFile))
	}
	if cfg.Suggestion.Template == "" {
		return "", goerr.New("prompt file has no suggestion.template", goerr.V("path", u.promptFile))
	}
	return cfg.Suggestion.Template, nil
}

// Configure builds the reply pipeline over the configured services
func (u *Upstream) Configure(ctx context.Context) (*reply.Builder, error) {
	simSvc, err := similarity.New(u.similarityURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure similarity client")
	}

	var sugSvc suggestion.Service
	switch {
	case u.suggestionURL != "":
		sugSvc, err = suggestion.NewHTTP(u.suggestionURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure suggestion client")
		}
		logging.Default().Info("Using HTTP suggestion service", "url", u.suggestionURL)

	case u.geminiProject != "":
		llm, err := gemini.New(ctx, u.geminiProject, u.geminiLocation)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Gemini client")
		}

		var llmOpts []suggestion.LLMOption
		tmpl, err := u.loadPromptTemplate()
		if err != nil {
			return nil, err
		}
		if tmpl != "" {
			llmOpts = append(llmOpts, suggestion.WithPromptTemplate(tmpl))
		}

		sugSvc, err = suggestion.NewLLM(llm, llmOpts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure LLM suggestion service")
		}
		logging.Default().Info("Using direct Gemini suggestion",
			"project", u.geminiProject, "location", u.geminiLocation)

	default:
		return nil, goerr.New("either suggestion-url or gemini-project is required")
	}

	var replyOpts []reply.Option
	if u.searchTimeout > 0 {
		replyOpts = append(replyOpts, reply.WithSearchTimeout(u.searchTimeout))
	}
	if u.suggestTimeout > 0 {
		replyOpts = append(replyOpts, reply.WithSuggestTimeout(u.suggestTimeout))
	}
	return reply.New(simSvc, sugSvc, replyOpts...)
}
