// Package gemini curates scenes through the Google Generative Language
// API. Model identifiers and API versions churn frequently there, so
// the adapter walks a fallback ladder instead of pinning one endpoint.
package gemini

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

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// fallbackModels are tried in order after the configured model; the
// list tracks Google's currently supported generateContent models.
var fallbackModels = []string{"gemini-2.0-flash", "gemini-2.5-flash", "gemini-2.5-pro"}

// fallbackVersions are tried per model. v1 rejects responseMimeType, so
// the JSON hint is only sent on v1beta.
var fallbackVersions = []string{"v1beta", "v1"}

// Options configures the Gemini adapter.
type Options struct {
	APIKey     string
	Model      string
	APIVersion string
	BaseURL    string
	Catalog    curation.CandidateSource
	HTTPClient *http.Client
}

type Adapter struct {
	client   *http.Client
	baseURL  string
	apiKey   string
	models   []string
	versions []string
	catalog  curation.CandidateSource
}

func New(opts Options) (*Adapter, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("gemini: api key required")
	}
	if opts.Catalog == nil {
		return nil, errors.New("gemini: candidate source required")
	}
	if strings.TrimSpace(opts.BaseURL) == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Adapter{
		client:   opts.HTTPClient,
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		apiKey:   opts.APIKey,
		models:   prependUnique(opts.Model, fallbackModels),
		versions: prependUnique(opts.APIVersion, fallbackVersions),
		catalog:  opts.Catalog,
	}, nil
}

// prependUnique puts the configured value ahead of the fallback list
// without duplicating it.
func prependUnique(configured string, fallbacks []string) []string {
	configured = strings.TrimSpace(configured)
	out := make([]string, 0, len(fallbacks)+1)
	if configured != "" {
		out = append(out, configured)
	}
	for _, v := range fallbacks {
		if v != configured {
			out = append(out, v)
		}
	}
	return out
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
	Temperature      float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Curate walks the model and version ladder until a generateContent
// call succeeds, then resolves the selection against the pool.
func (a *Adapter) Curate(ctx context.Context, prompt string, intent *curation.Intent) (models.SceneDescriptor, error) {
	pool := a.catalog.Candidates(ctx, curation.CandidatePoolLimit, intent)
	if len(pool) == 0 {
		return models.SceneDescriptor{}, curation.ErrNoStations
	}
	fullPrompt := curation.BuildCombinedPrompt(prompt, pool)

	var lastErr error
	for _, model := range a.models {
		for _, version := range a.versions {
			text, err := a.generate(ctx, model, version, fullPrompt)
			if err == nil {
				sel, perr := curation.ParseSelection(text)
				if perr != nil {
					return models.SceneDescriptor{}, perr
				}
				return curation.Descriptor(sel, curation.Curate(pool, sel))
			}

			lastErr = err
			var nf *notFoundError
			if !errors.As(err, &nf) {
				return models.SceneDescriptor{}, err
			}
			slog.Warn("gemini model unavailable, falling back",
				"model", model, "version", version)
			if !nf.versionMismatch {
				// The model itself is gone; trying more versions of it
				// is pointless.
				break
			}
		}
	}
	return models.SceneDescriptor{}, fmt.Errorf("gemini: no supported model found: %w", lastErr)
}

// notFoundError marks a 404 from generateContent. versionMismatch is
// set when the body blames the API version rather than the model.
type notFoundError struct {
	model           string
	version         string
	versionMismatch bool
	body            string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("gemini model %s not found on %s: %s", e.model, e.version, e.body)
}

func (a *Adapter) generate(ctx context.Context, model, version, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature: 0.8,
		},
	}
	// v1 rejects responseMimeType in generationConfig.
	if version == "v1beta" {
		payload.GenerationConfig.ResponseMimeType = "application/json"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	endpoint := fmt.Sprintf("%s/%s/models/%s:generateContent?key=%s", a.baseURL, version, model, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		text := string(raw)
		if strings.Contains(strings.ToLower(text), "not found") {
			return "", &notFoundError{
				model:           model,
				version:         version,
				versionMismatch: strings.Contains(strings.ToLower(text), "api version"),
				body:            strings.TrimSpace(text),
			}
		}
		return "", fmt.Errorf("gemini api error %d: %s", resp.StatusCode, strings.TrimSpace(text))
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("gemini api error %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", curation.ErrMissingContent
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", curation.ErrMissingContent
	}
	return text, nil
}
