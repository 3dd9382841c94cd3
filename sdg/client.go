package sdg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/justin4957/UNStatsExplorer/cache"
	"github.com/justin4957/UNStatsExplorer/table"
)

// Client talks to the SDG API. It owns the metadata cache and the cooldown
// timestamp; both are guarded by mu so a client value can be shared, though
// the client itself never issues concurrent requests.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	store      cache.Store
	progress   func(fetched int)

	mu          sync.Mutex
	lastRequest time.Time

	// Injectable for tests; time.Sleep and time.Now otherwise.
	sleep func(time.Duration)
	now   func() time.Time
}

// NewClient creates a client for the given config. Construction performs no
// network calls; the first request happens on the first lookup.
func NewClient(cfg Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
		store:  cache.NewMemory(),
		sleep:  time.Sleep,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// execute performs one API request with the cooldown and retry loop applied.
// Transport errors and non-200 statuses retry alike with 2^attempt seconds
// of backoff; the last error is wrapped in a *RequestError once the retry
// budget is spent.
func (c *Client) execute(ctx context.Context, method, endpoint string, params url.Values, body any) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		c.waitCooldown()

		data, err := c.attempt(ctx, method, requestURL, body)
		if err == nil {
			return data, nil
		}
		lastErr = err

		if attempt < c.cfg.MaxRetries {
			backoff := time.Duration(1<<attempt) * time.Second
			c.logger.Warn().
				Err(err).
				Str("endpoint", endpoint).
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Msg("Request failed, retrying")
			c.sleep(backoff)
		}
	}

	return nil, &RequestError{Endpoint: endpoint, Attempts: c.cfg.MaxRetries, Err: lastErr}
}

// waitCooldown blocks until the configured spacing since the last successful
// request has passed. The cooldown is shared across all endpoints.
func (c *Client) waitCooldown() {
	if c.cfg.RateLimit <= 0 {
		return
	}

	c.mu.Lock()
	last := c.lastRequest
	c.mu.Unlock()

	if last.IsZero() {
		return
	}
	if elapsed := c.now().Sub(last); elapsed < c.cfg.RateLimit {
		c.sleep(c.cfg.RateLimit - elapsed)
	}
}

// attempt issues a single request and reads the full response body.
func (c *Client) attempt(ctx context.Context, method, requestURL string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	c.mu.Lock()
	c.lastRequest = c.now()
	c.mu.Unlock()

	return data, nil
}

// page is one decoded response slice. The source returns either a bare JSON
// array or an envelope carrying data plus an optional record total; the
// shape is resolved here, once, at the parsing boundary.
type page struct {
	items []json.RawMessage
	total int // -1 when the response carried no totalRecords
}

// decodePage resolves the envelope-or-bare-list response shape.
func decodePage(data []byte) (page, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return page{}, fmt.Errorf("failed to parse response list: %w", err)
		}
		return page{items: items, total: -1}, nil
	}

	var envelope struct {
		Data         []json.RawMessage `json:"data"`
		TotalRecords *int              `json:"totalRecords"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return page{}, fmt.Errorf("failed to parse response envelope: %w", err)
	}

	pg := page{items: envelope.Data, total: -1}
	if envelope.TotalRecords != nil {
		pg.total = *envelope.TotalRecords
	}
	return pg, nil
}

// fetchAll aggregates every page of a result set, requesting pages of
// cfg.PageSize starting at page 1. It stops on an empty page, once the
// reported totalRecords is reached, or — when no total is reported — after
// the first short page. A source reporting an inconsistent total keeps
// being paged until one of the other two conditions fires.
func (c *Client) fetchAll(ctx context.Context, method, endpoint string, params url.Values, body map[string]any) ([]json.RawMessage, error) {
	var items []json.RawMessage

	for pageNum := 1; ; pageNum++ {
		var (
			data []byte
			err  error
		)
		if body != nil {
			body["page"] = pageNum
			body["pageSize"] = c.cfg.PageSize
			data, err = c.execute(ctx, method, endpoint, params, body)
		} else {
			if params == nil {
				params = url.Values{}
			}
			params.Set("page", strconv.Itoa(pageNum))
			params.Set("pageSize", strconv.Itoa(c.cfg.PageSize))
			data, err = c.execute(ctx, method, endpoint, params, nil)
		}
		if err != nil {
			return nil, err
		}

		pg, err := decodePage(data)
		if err != nil {
			return nil, fmt.Errorf("page %d of %s: %w", pageNum, endpoint, err)
		}

		items = append(items, pg.items...)
		if c.progress != nil {
			c.progress(len(items))
		}

		c.logger.Debug().
			Str("endpoint", endpoint).
			Int("page", pageNum).
			Int("page_items", len(pg.items)).
			Int("fetched", len(items)).
			Msg("Fetched page")

		if len(pg.items) == 0 {
			break
		}
		if pg.total >= 0 {
			if len(items) >= pg.total {
				break
			}
		} else if len(pg.items) < c.cfg.PageSize {
			break
		}
	}

	return items, nil
}

// cached serves a metadata collection from the store, fetching and storing
// it on a miss. The store is written only after the full aggregation
// succeeded, so a failed fetch never leaves a partial entry behind.
func (c *Client) cached(ctx context.Context, collection, filter string, forceRefresh bool, fetch func(context.Context) (table.Result, error)) (table.Result, error) {
	key := cache.Key(collection, filter)

	if !forceRefresh {
		c.mu.Lock()
		res, ok := c.store.Get(key)
		c.mu.Unlock()
		if ok {
			c.logger.Debug().Str("key", key).Int("rows", res.Len()).Msg("Serving metadata from cache")
			return res, nil
		}
	}

	res, err := fetch(ctx)
	if err != nil {
		return table.Result{}, err
	}

	c.mu.Lock()
	err = c.store.Put(key, res)
	c.mu.Unlock()
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Failed to store metadata in cache")
	}

	return res, nil
}
