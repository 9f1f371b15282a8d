// Package openai curates scenes through the OpenAI chat completions API.
package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
	"github.com/openai/openai-go/v3/shared"

	"github.com/radiopassport/radio-passport/internal/models"
	"github.com/radiopassport/radio-passport/internal/providers/curation"
)

const defaultModel = "gpt-4o-mini"

// Options configures the OpenAI adapter.
type Options struct {
	APIKey     string
	Model      string
	BaseURL    string
	Catalog    curation.CandidateSource
	HTTPClient *http.Client
}

type Adapter struct {
	client  openai.Client
	model   string
	catalog curation.CandidateSource
}

func New(opts Options) (*Adapter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai: api key required")
	}
	if opts.Catalog == nil {
		return nil, errors.New("openai: candidate source required")
	}
	if strings.TrimSpace(opts.Model) == "" {
		opts.Model = defaultModel
	}

	requestOpts := []option.RequestOption{option.WithAPIKey(opts.APIKey)}
	if strings.TrimSpace(opts.BaseURL) != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(strings.TrimRight(opts.BaseURL, "/")))
	}
	if opts.HTTPClient != nil {
		requestOpts = append(requestOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	return &Adapter{
		client:  openai.NewClient(requestOpts...),
		model:   opts.Model,
		catalog: opts.Catalog,
	}, nil
}

// Curate asks the model for a station selection over the candidate
// pool. OpenAI curation does not forward intent targeting to the
// directory; ranking downstream handles preference ordering.
func (a *Adapter) Curate(ctx context.Context, prompt string, _ *curation.Intent) (models.SceneDescriptor, error) {
	pool := a.catalog.Candidates(ctx, curation.CandidatePoolLimit, nil)
	if len(pool) == 0 {
		return models.SceneDescriptor{}, curation.ErrNoStations
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(curation.SystemPrompt),
			openai.UserMessage(curation.BuildUserPrompt(prompt, pool)),
		},
		Temperature: param.NewOpt(0.8),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	completion, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return models.SceneDescriptor{}, err
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return models.SceneDescriptor{}, curation.ErrMissingContent
	}

	sel, err := curation.ParseSelection(completion.Choices[0].Message.Content)
	if err != nil {
		return models.SceneDescriptor{}, err
	}
	return curation.Descriptor(sel, curation.Curate(pool, sel))
}
