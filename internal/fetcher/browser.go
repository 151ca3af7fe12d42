package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"machinedex/internal/config"
	"machinedex/internal/types"
)

// Browser implements Fetcher using a headless browser via Rod. One
// long-lived browser session is owned per instance and must be released
// with Close on every exit path.
type Browser struct {
	browser       *rod.Browser
	launch        *launcher.Launcher
	renderTimeout time.Duration
	userAgent     string
	useStealth    bool
	logger        *slog.Logger
	mu            sync.Mutex
	closed        bool
}

// NewBrowser launches a Chromium instance and connects to it.
func NewBrowser(cfg *config.Config, logger *slog.Logger) (*Browser, error) {
	l := launcher.New().
		Headless(cfg.Scrape.Headless).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("no-sandbox").
		Set("disable-extensions").
		Set("window-size", "1920,1080").
		Set("disable-blink-features", "AutomationControlled")

	launchURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(launchURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	bf := &Browser{
		browser:       browser,
		launch:        l,
		renderTimeout: cfg.Scrape.RenderTimeout,
		userAgent:     cfg.Scrape.UserAgent,
		useStealth:    cfg.Scrape.Stealth,
		logger:        logger.With("component", "browser_fetcher"),
	}

	bf.logger.Info("browser session ready", "headless", cfg.Scrape.Headless, "stealth", cfg.Scrape.Stealth)
	return bf, nil
}

// Fetch navigates to a URL, waits for the document body, runs the
// adapter's interaction hook, and captures the rendered document.
func (bf *Browser) Fetch(ctx context.Context, pageURL string, interact InteractFunc) (*goquery.Document, error) {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	if bf.closed {
		return nil, &types.FetchError{URL: pageURL, Err: fmt.Errorf("browser session closed")}
	}

	start := time.Now()

	page, err := bf.newPage()
	if err != nil {
		return nil, &types.FetchError{URL: pageURL, Err: err}
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: bf.userAgent}); err != nil {
		bf.logger.Warn("failed to set user agent", "error", err)
	}

	if err := page.Timeout(bf.renderTimeout).Navigate(pageURL); err != nil {
		return nil, &types.FetchError{URL: pageURL, Err: err}
	}

	// Minimal readiness: the document body must exist.
	if _, err := page.Timeout(bf.renderTimeout).Element("body"); err != nil {
		return nil, &types.FetchError{URL: pageURL, Err: fmt.Errorf("wait for body: %w", err)}
	}

	if interact != nil {
		if err := interact(page); err != nil {
			// Interaction failures degrade to whatever has rendered so
			// far; the page itself is still usable.
			bf.logger.Warn("browser interaction failed", "url", pageURL, "error", err)
		}
	}

	html, err := page.HTML()
	if err != nil {
		return nil, &types.FetchError{URL: pageURL, Err: fmt.Errorf("capture html: %w", err)}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &types.FetchError{URL: pageURL, Err: fmt.Errorf("parse document: %w", err)}
	}

	bf.logger.Info("page rendered",
		"url", pageURL,
		"size", len(html),
		"duration", time.Since(start),
	)
	return doc, nil
}

// newPage opens a fresh tab, with stealth patches when enabled.
func (bf *Browser) newPage() (*rod.Page, error) {
	if bf.useStealth {
		return stealth.Page(bf.browser)
	}
	return bf.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
}

// Close shuts down the browser and its launcher process. Safe to call
// more than once.
func (bf *Browser) Close() error {
	bf.mu.Lock()
	defer bf.mu.Unlock()
	if bf.closed {
		return nil
	}
	bf.closed = true

	var err error
	if bf.browser != nil {
		err = bf.browser.Close()
	}
	if bf.launch != nil {
		bf.launch.Cleanup()
	}
	bf.logger.Info("browser session closed")
	return err
}

// Type returns the fetcher type identifier.
func (bf *Browser) Type() string { return "browser" }

var _ Fetcher = (*Browser)(nil)
