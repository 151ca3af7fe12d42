// Package enrich talks to the Gemini API to translate machine names
// and classify which body parts a machine trains.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"machinedex/internal/config"
	"machinedex/internal/types"
)

// Client is a thin Gemini REST client with context caching. A created
// cache is attached to every following Generate call until it is
// cleared or replaced, so large brand context is uploaded once per
// brand instead of once per machine.
type Client struct {
	rest      *resty.Client
	model     string
	ttl       time.Duration
	callDelay time.Duration
	logger    *slog.Logger

	cacheName string
}

func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini: %w", types.ErrMissingCreds)
	}
	rest := resty.New().
		SetBaseURL(cfg.Gemini.Endpoint).
		SetQueryParam("key", cfg.Gemini.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second)
	return &Client{
		rest:      rest,
		model:     cfg.Gemini.Model,
		ttl:       cfg.Gemini.ContextTTL,
		callDelay: cfg.Gemini.CallDelay,
		logger:    logger.With("component", "gemini"),
	}, nil
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents      []content `json:"contents"`
	CachedContent string    `json:"cachedContent,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type cacheRequest struct {
	Model             string    `json:"model"`
	DisplayName       string    `json:"displayName"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
	TTL               string    `json:"ttl"`
}

type cacheResponse struct {
	Name  string    `json:"name"`
	Error *apiError `json:"error,omitempty"`
}

// Generate sends one prompt and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Contents:      []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		CachedContent: c.cacheName,
	}
	var out generateResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if out.Error != nil {
			msg = out.Error.Message
		}
		return "", fmt.Errorf("gemini generate: %s", msg)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", types.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", types.ErrEmptyResponse
	}

	// The politeness delay must not discard a response that already
	// arrived; a cancelled context surfaces on the caller's next call.
	if c.callDelay > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(c.callDelay):
		}
	}
	return text, nil
}

// CreateContext uploads instruction plus context as a cached content
// entry and attaches it to following Generate calls. Any previous
// cache is deleted first.
func (c *Client) CreateContext(ctx context.Context, instruction, contextText string) error {
	c.ClearContext(ctx)

	req := cacheRequest{
		Model:       "models/" + c.model,
		DisplayName: "brand-context",
		SystemInstruction: &content{
			Parts: []part{{Text: instruction}},
		},
		Contents: []content{{Role: "user", Parts: []part{{Text: contextText}}}},
		TTL:      fmt.Sprintf("%ds", int(c.ttl.Seconds())),
	}
	var out cacheResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&out).
		Post("/cachedContents")
	if err != nil {
		return fmt.Errorf("gemini cache create: %w", err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if out.Error != nil {
			msg = out.Error.Message
		}
		return fmt.Errorf("gemini cache create: %s", msg)
	}
	if out.Name == "" {
		return types.ErrNoContextCache
	}

	c.cacheName = out.Name
	c.logger.Info("context cache created", "name", out.Name, "ttl", c.ttl)
	return nil
}

// ClearContext deletes the active context cache, if any. Deletion
// failures are logged and dropped; an expired cache dies on its own
// TTL anyway.
func (c *Client) ClearContext(ctx context.Context) {
	if c.cacheName == "" {
		return
	}
	resp, err := c.rest.R().SetContext(ctx).Delete("/" + c.cacheName)
	if err != nil || resp.IsError() {
		c.logger.Warn("context cache delete failed", "name", c.cacheName, "error", err)
	} else {
		c.logger.Info("context cache deleted", "name", c.cacheName)
	}
	c.cacheName = ""
}

// Cached reports whether a context cache is currently attached.
func (c *Client) Cached() bool { return c.cacheName != "" }
