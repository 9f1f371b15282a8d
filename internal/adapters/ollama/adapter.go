// Package ollama curates scenes through a local Ollama instance.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/radiopassport/radio-passport/internal/models"
	"github.com/radiopassport/radio-passport/internal/providers/curation"
)

const defaultModel = "radio-passport"

// Options configures the Ollama adapter.
type Options struct {
	BaseURL    string
	Model      string
	Catalog    curation.CandidateSource
	HTTPClient *http.Client
}

type Adapter struct {
	client  *http.Client
	baseURL string
	model   string
	catalog curation.CandidateSource
}

func New(opts Options) (*Adapter, error) {
	if strings.TrimSpace(opts.BaseURL) == "" {
		return nil, errors.New("ollama: base url required")
	}
	if opts.Catalog == nil {
		return nil, errors.New("ollama: candidate source required")
	}
	if strings.TrimSpace(opts.Model) == "" {
		opts.Model = defaultModel
	}
	if opts.HTTPClient == nil {
		// Local models can be slow to first-token on cold starts.
		opts.HTTPClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &Adapter{
		client:  opts.HTTPClient,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		model:   opts.Model,
		catalog: opts.Catalog,
	}, nil
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Format string `json:"format"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Output   string `json:"output"`
}

// Curate runs one non-streaming generate call and resolves the
// selection against the candidate pool.
func (a *Adapter) Curate(ctx context.Context, prompt string, intent *curation.Intent) (models.SceneDescriptor, error) {
	pool := a.catalog.Candidates(ctx, curation.CandidatePoolLimit, intent)
	if len(pool) == 0 {
		return models.SceneDescriptor{}, curation.ErrNoStations
	}

	payload := generateRequest{
		Model:  a.model,
		Prompt: curation.BuildCombinedPrompt(prompt, pool),
		Format: "json",
		Stream: false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return models.SceneDescriptor{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return models.SceneDescriptor{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return models.SceneDescriptor{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return models.SceneDescriptor{}, fmt.Errorf("ollama api error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.SceneDescriptor{}, err
	}
	text := out.Response
	if text == "" {
		text = out.Output
	}
	if text == "" {
		return models.SceneDescriptor{}, curation.ErrMissingContent
	}

	sel, err := curation.ParseSelection(text)
	if err != nil {
		return models.SceneDescriptor{}, err
	}
	return curation.Descriptor(sel, curation.Curate(pool, sel))
}
