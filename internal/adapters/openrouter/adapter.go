// Package openrouter curates scenes through OpenRouter's free model
// pool. Free-tier models rate-limit and fail unpredictably, so every
// curation walks a rotation of them until one produces a usable scene.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/radiopassport/radio-passport/internal/models"
	"github.com/radiopassport/radio-passport/internal/providers/curation"
)

const defaultBaseURL = "https://openrouter.ai"

// modelRotation lists free models ordered by observed reliability.
var modelRotation = []string{
	"mistralai/mistral-7b-instruct:free",
	"meta-llama/llama-3.3-8b-instruct:free",
	"google/gemma-3n-4b-it:free",
	"openai/gpt-oss-20b:free",
	"nvidia/nemotron-2-12b-vl:free",
}

// Attribution headers OpenRouter uses to rank app traffic.
const (
	refererHeader = "https://radiopassport.app"
	titleHeader   = "Radio Passport"
)

// Options configures the OpenRouter adapter.
type Options struct {
	APIKey     string
	BaseURL    string
	Models     []string
	Catalog    curation.CandidateSource
	HTTPClient *http.Client
}

type Adapter struct {
	client  *http.Client
	baseURL string
	apiKey  string
	models  []string
	catalog curation.CandidateSource
}

func New(opts Options) (*Adapter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openrouter: api key required")
	}
	if opts.Catalog == nil {
		return nil, errors.New("openrouter: candidate source required")
	}
	if strings.TrimSpace(opts.BaseURL) == "" {
		opts.BaseURL = defaultBaseURL
	}
	if len(opts.Models) == 0 {
		opts.Models = modelRotation
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Adapter{
		client:  opts.HTTPClient,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		apiKey:  opts.APIKey,
		models:  opts.Models,
		catalog: opts.Catalog,
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Curate walks the model rotation until one returns a parseable scene.
// Any per-model failure, transport, decode, or selection, moves on to
// the next model; only an exhausted rotation is fatal.
func (a *Adapter) Curate(ctx context.Context, prompt string, intent *curation.Intent) (models.SceneDescriptor, error) {
	pool := a.catalog.Candidates(ctx, curation.CandidatePoolLimit, intent)
	if len(pool) == 0 {
		return models.SceneDescriptor{}, curation.ErrNoStations
	}
	userPrompt := curation.BuildUserPrompt(prompt, pool)

	var lastErr error
	for _, model := range a.models {
		desc, err := a.tryModel(ctx, model, userPrompt, pool)
		if err == nil {
			slog.Info("openrouter curation succeeded", "model", model)
			return desc, nil
		}
		if ctx.Err() != nil {
			return models.SceneDescriptor{}, ctx.Err()
		}
		lastErr = err
		slog.Warn("openrouter model failed, trying next", "model", model, "error", err)
	}
	return models.SceneDescriptor{}, fmt.Errorf("all models in the rotation failed, last error: %w", lastErr)
}

func (a *Adapter) tryModel(ctx context.Context, model, userPrompt string, pool []models.Station) (models.SceneDescriptor, error) {
	payload := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: curation.SystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.8,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return models.SceneDescriptor{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return models.SceneDescriptor{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("HTTP-Referer", refererHeader)
	req.Header.Set("X-Title", titleHeader)

	resp, err := a.client.Do(req)
	if err != nil {
		return models.SceneDescriptor{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return models.SceneDescriptor{}, fmt.Errorf("openrouter request for model %s failed with status %d: %s",
			model, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.SceneDescriptor{}, err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return models.SceneDescriptor{}, curation.ErrMissingContent
	}

	sel, err := curation.ParseSelection(out.Choices[0].Message.Content)
	if err != nil {
		return models.SceneDescriptor{}, err
	}
	return curation.Descriptor(sel, curation.Curate(pool, sel))
}
