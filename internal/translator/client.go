// Package translator relays language detection and translation requests to
// the RapidAPI google-translator9 provider.
package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	detectPath    = "/v2/detect"
	translatePath = "/v2"

	headerAPIKey  = "x-rapidapi-key"
	headerAPIHost = "x-rapidapi-host"

	// maxResponseBytes is the largest provider response that is relayed.
	maxResponseBytes = 1 << 20
)

// ErrUpstream reports that the provider could not be reached or read.
// Provider-side error responses are not errors; they are relayed as-is.
var ErrUpstream = errors.New("translation provider unavailable")

// Response is the provider's reply, relayed verbatim to callers.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type Config struct {
	BaseURL string
	Host    string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	apiKey     string
}

func NewClient(cfg Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		host:       cfg.Host,
		apiKey:     cfg.APIKey,
	}
}

type detectPayload struct {
	Q string `json:"q"`
}

type translatePayload struct {
	Q      string `json:"q"`
	Target string `json:"target"`
}

// Detect asks the provider which language text is written in.
func (c *Client) Detect(ctx context.Context, text string) (Response, error) {
	return c.post(ctx, detectPath, detectPayload{Q: text})
}

// Translate asks the provider to translate text into targetLang.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (Response, error) {
	return c.post(ctx, translatePath, translatePayload{Q: text, Target: targetLang})
}

func (c *Client) post(ctx context.Context, path string, payload any) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("encode provider payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAPIHost, c.host)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return Response{}, fmt.Errorf("%w: read body: %v", ErrUpstream, err)
	}
	// a truncated body would be relayed as broken JSON
	if len(raw) > maxResponseBytes {
		return Response{}, fmt.Errorf("%w: response exceeds %d bytes", ErrUpstream, maxResponseBytes)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/json"
	}
	return Response{StatusCode: resp.StatusCode, ContentType: ct, Body: raw}, nil
}
