// Package directory is the Radio Browser client. It rotates across
// public mirrors, remembers the last working one, and normalizes the
// wire format into the internal station model.
package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radiopassport/radio-passport/internal/config"
)

const cacheKeyPrefix = "rb:"

// Client fetches station lists from Radio Browser mirrors.
type Client struct {
	mirrors    []string
	httpClient *http.Client
	userAgent  string
	cacheTTL   time.Duration
	redis      *redis.Client

	minBitrate     int
	candidateLimit int

	mu         sync.Mutex
	workingIdx int
}

// Options configures the directory client. Redis is optional; when set,
// mirror responses are cached briefly to spare the public mirrors.
type Options struct {
	Config     config.DirectoryConfig
	HTTPClient *http.Client
	Redis      *redis.Client
}

// New builds a directory client from options.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Config.RequestTimeout
		if timeout <= 0 {
			timeout = 8 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	userAgent := opts.Config.UserAgent
	if userAgent == "" {
		userAgent = "radio-passport/1.0"
	}
	return &Client{
		mirrors:        opts.Config.Mirrors,
		httpClient:     httpClient,
		userAgent:      userAgent,
		cacheTTL:       opts.Config.CacheTTL,
		redis:          opts.Redis,
		minBitrate:     opts.Config.MinBitrate,
		candidateLimit: opts.Config.CandidateLimit,
		workingIdx:     -1,
	}
}

// fetchJSON retrieves a Radio Browser path, preferring the last working
// mirror and falling through the rest of the list on failure.
func (c *Client) fetchJSON(ctx context.Context, path string) ([]byte, error) {
	if body, ok := c.cacheGet(ctx, path); ok {
		return body, nil
	}

	order := c.mirrorOrder()
	var lastErr error
	for _, idx := range order {
		body, err := c.tryMirror(ctx, c.mirrors[idx], path)
		if err != nil {
			lastErr = err
			continue
		}
		c.rememberMirror(idx)
		c.cacheSet(ctx, path, body)
		return body, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no mirrors configured")
	}
	return nil, fmt.Errorf("radio browser fetch failed for %s: %w", path, lastErr)
}

func (c *Client) tryMirror(ctx context.Context, base, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mirror %s returned status %d", base, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return nil, fmt.Errorf("mirror %s returned content type %q", base, ct)
	}
	return io.ReadAll(resp.Body)
}

// mirrorOrder returns mirror indexes starting with the last working one.
func (c *Client) mirrorOrder() []int {
	c.mu.Lock()
	working := c.workingIdx
	c.mu.Unlock()

	order := make([]int, 0, len(c.mirrors))
	if working >= 0 && working < len(c.mirrors) {
		order = append(order, working)
	}
	for i := range c.mirrors {
		if i != working {
			order = append(order, i)
		}
	}
	return order
}

func (c *Client) rememberMirror(idx int) {
	c.mu.Lock()
	c.workingIdx = idx
	c.mu.Unlock()
}

func (c *Client) cacheGet(ctx context.Context, path string) ([]byte, bool) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return nil, false
	}
	body, err := c.redis.Get(ctx, cacheKeyPrefix+path).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Debug("directory cache read failed", "error", err)
		}
		return nil, false
	}
	return body, true
}

func (c *Client) cacheSet(ctx context.Context, path string, body []byte) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	if err := c.redis.Set(ctx, cacheKeyPrefix+path, body, c.cacheTTL).Err(); err != nil {
		slog.Debug("directory cache write failed", "error", err)
	}
}
