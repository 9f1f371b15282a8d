package openrouter

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
			Country: "Brazil",
			Bitrate: 128,
		})
	}
	return pool
}

func completionBody(content string) string {
	payload := map[string]any{
		"choices": []any{map[string]any{"message": map[string]any{"content": content}}},
	}
	raw, _ := json.Marshal(payload)
	return string(raw)
}

func selectionJSON(ids ...string) string {
	sel := map[string]any{
		"visual":             "card_stack",
		"mood":               "Bahia Sunrise",
		"selectedStationIds": ids,
	}
	raw, _ := json.Marshal(sel)
	return string(raw)
}

func TestCurateRotatesPastFailingModels(t *testing.T) {
	var attempts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		attempts = append(attempts, req.Model)

		if r.Header.Get("HTTP-Referer") == "" || r.Header.Get("X-Title") == "" {
			t.Error("missing attribution headers")
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			t.Error("missing authorization header")
		}

		switch len(attempts) {
		case 1:
			// Rate-limited free model.
			http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
		case 2:
			// Model responded but without JSON.
			fmt.Fprint(w, completionBody("I'm sorry, I can't produce that."))
		default:
			fmt.Fprint(w, completionBody(selectionJSON("st-00", "st-01", "st-02", "st-03", "st-04", "st-05")))
		}
	}))
	defer srv.Close()

	a, err := New(Options{
		APIKey:  "sk-or-test",
		BaseURL: srv.URL,
		Catalog: staticCatalog{pool: testPool(10)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	desc, err := a.Curate(context.Background(), "sunrise in bahia", nil)
	if err != nil {
		t.Fatalf("Curate: %v", err)
	}
	if desc.Mood != "Bahia Sunrise" || len(desc.Stations) != 6 {
		t.Fatalf("descriptor = %+v", desc)
	}
	if len(attempts) != 3 {
		t.Fatalf("attempts = %v", attempts)
	}
	if attempts[0] != modelRotation[0] || attempts[2] != modelRotation[2] {
		t.Fatalf("rotation order = %v", attempts)
	}
}

func TestCurateExhaustedRotation(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, `{"error":"down"}`, http.StatusBadGateway)
	}))
	defer srv.Close()

	a, err := New(Options{
		APIKey:  "sk-or-test",
		BaseURL: srv.URL,
		Catalog: staticCatalog{pool: testPool(10)},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = a.Curate(context.Background(), "anything", nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "all models in the rotation failed") {
		t.Fatalf("err = %v", err)
	}
	if attempts != len(modelRotation) {
		t.Fatalf("attempts = %d, want %d", attempts, len(modelRotation))
	}
}

func TestCurateEmptyPool(t *testing.T) {
	a, err := New(Options{APIKey: "sk-or-test", Catalog: staticCatalog{}})
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
