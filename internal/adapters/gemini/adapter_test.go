package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/radiopassport/radio-passport/internal/models"
	"github.com/radiopassport/radio-passport/internal/providers/curation"
)

type staticCatalog struct {
	pool []models.Station
}

func (s staticCatalog) Candidates(_ context.Context, _ int, _ *curation.Intent) []models.Station {
	return s.pool
}

func testPool(n int) []models.Station {
	pool := make([]models.Station, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, models.Station{
			UUID:    fmt.Sprintf("st-%02d", i),
			Name:    fmt.Sprintf("Station %02d", i),
			URL:     "http://example.com/stream",
			Country: "Japan",
			Bitrate: 128,
		})
	}
	return pool
}

func selectionJSON(ids ...string) string {
	sel := map[string]any{
		"visual":             "card_stack",
		"mood":               "Tokyo Neon Drift",
		"animation":          "slow_pan",
		"selectedStationIds": ids,
	}
	raw, _ := json.Marshal(sel)
	return string(raw)
}

func generateBody(text string) string {
	payload := map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
		},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func TestCurateFirstModelSucceeds(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.GenerationConfig.ResponseMimeType != "application/json" {
			t.Errorf("v1beta request missing responseMimeType")
		}
		fmt.Fprint(w, generateBody(selectionJSON("st-00", "st-01", "st-02", "st-03", "st-04", "st-05")))
	}))
	defer srv.Close()

	a, err := New(Options{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: srv.URL,
		Catalog: staticCatalog{pool: testPool(10)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	desc, err := a.Curate(context.Background(), "tokyo city pop", nil)
	if err != nil {
		t.Fatalf("Curate: %v", err)
	}
	if desc.Mood != "Tokyo Neon Drift" || len(desc.Stations) != 6 {
		t.Fatalf("descriptor = %+v", desc)
	}
	if len(calls) != 1 || !strings.Contains(calls[0], "/v1beta/models/gemini-2.0-flash") {
		t.Fatalf("calls = %v", calls)
	}
}

func TestCurateFallsBackToNextAPIVersion(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		var req generateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		if strings.HasPrefix(r.URL.Path, "/v1beta/") {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":{"code":404,"message":"models/gemini-2.0-flash is not found for API version v1beta, or is not supported for generateContent.","status":"NOT_FOUND"}}`)
			return
		}
		// The JSON mime hint is only valid on v1beta.
		if req.GenerationConfig.ResponseMimeType != "" {
			t.Errorf("v1 request carried responseMimeType")
		}
		fmt.Fprint(w, generateBody(selectionJSON("st-00", "st-01", "st-02", "st-03", "st-04", "st-05")))
	}))
	defer srv.Close()

	a, err := New(Options{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: srv.URL,
		Catalog: staticCatalog{pool: testPool(10)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := a.Curate(context.Background(), "tokyo city pop", nil); err != nil {
		t.Fatalf("Curate: %v", err)
	}
	if len(calls) != 2 {
		t.Fatalf("calls = %v, want v1beta then v1", calls)
	}
	if !strings.HasPrefix(calls[0], "/v1beta/") || !strings.HasPrefix(calls[1], "/v1/") {
		t.Fatalf("calls = %v", calls)
	}
}

func TestCurateFallsBackToNextModelWhenModelGone(t *testing.T) {
	var calls []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		if strings.Contains(r.URL.Path, "retired-model") {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":{"code":404,"message":"model not found","status":"NOT_FOUND"}}`)
			return
		}
		fmt.Fprint(w, generateBody(selectionJSON("st-00", "st-01", "st-02", "st-03", "st-04", "st-05")))
	}))
	defer srv.Close()

	a, err := New(Options{
		APIKey:  "test-key",
		Model:   "retired-model",
		BaseURL: srv.URL,
		Catalog: staticCatalog{pool: testPool(10)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := a.Curate(context.Background(), "tokyo city pop", nil); err != nil {
		t.Fatalf("Curate: %v", err)
	}
	// The retired model is abandoned after one version attempt.
	if len(calls) != 2 {
		t.Fatalf("calls = %v", calls)
	}
	if !strings.Contains(calls[1], "gemini-2.0-flash") {
		t.Fatalf("fallback call = %q", calls[1])
	}
}

func TestCurateHardErrorStopsFallback(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"code":429,"message":"quota exceeded"}}`)
	}))
	defer srv.Close()

	a, err := New(Options{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Catalog: staticCatalog{pool: testPool(10)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := a.Curate(context.Background(), "anything", nil); err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestCurateEmptyPool(t *testing.T) {
	a, err := New(Options{APIKey: "test-key", Catalog: staticCatalog{}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := a.Curate(context.Background(), "anything", nil); err != curation.ErrNoStations {
		t.Fatalf("err = %v, want ErrNoStations", err)
	}
}

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := New(Options{Catalog: staticCatalog{}}); err == nil {
		t.Fatal("expected an error without an api key")
	}
}
