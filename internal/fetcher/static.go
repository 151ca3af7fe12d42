package fetcher

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/brotli"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"machinedex/internal/config"
	"machinedex/internal/types"
)

// Static implements Fetcher with a plain HTTP GET. One instance owns
// one http.Client session (cookies, headers); sessions are never shared
// across scrapers.
type Static struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
	logger      *slog.Logger
}

// NewStatic creates a static-page fetcher.
func NewStatic(cfg *config.Config, logger *slog.Logger) (*Static, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  true, // we handle decompression ourselves (including brotli)
	}

	return &Static{
		client: &http.Client{
			Transport: transport,
			Jar:       jar,
			Timeout:   cfg.Scrape.RequestTimeout,
		},
		userAgent:   cfg.Scrape.UserAgent,
		maxBodySize: cfg.Scrape.MaxBodySize,
		logger:      logger.With("component", "static_fetcher"),
	}, nil
}

// Fetch issues a GET and parses the response into a document tree.
// interact is ignored; static pages have no session to interact with.
func (f *Static) Fetch(ctx context.Context, pageURL string, _ InteractFunc) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &types.FetchError{URL: pageURL, Err: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,ko;q=0.8")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &types.FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &types.FetchError{
			URL:        pageURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body)),
		}
	}

	var reader io.Reader = io.LimitReader(resp.Body, f.maxBodySize)

	reader, err = decompressReader(resp.Header.Get("Content-Encoding"), reader)
	if err != nil {
		return nil, &types.FetchError{URL: pageURL, Err: err}
	}

	reader, err = decodeCharset(reader, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &types.FetchError{URL: pageURL, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, &types.FetchError{URL: pageURL, Err: fmt.Errorf("parse document: %w", err)}
	}

	f.logger.Info("page fetched",
		"url", pageURL,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return doc, nil
}

// Close releases idle connections.
func (f *Static) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// Type returns the fetcher type identifier.
func (f *Static) Type() string { return "static" }

// decompressReader wraps a reader with the appropriate decompressor.
// Handles gzip, deflate, and brotli (br) encodings.
func decompressReader(encoding string, reader io.Reader) (io.Reader, error) {
	switch encoding {
	case "gzip":
		return gzip.NewReader(reader)
	case "deflate":
		return flate.NewReader(reader), nil
	case "br":
		return brotli.NewReader(reader), nil
	default:
		return reader, nil
	}
}

// decodeCharset converts the body to UTF-8 using the server-declared or
// sniffed charset. Several of the Korean vendor sites still serve EUC-KR.
func decodeCharset(reader io.Reader, contentType string) (io.Reader, error) {
	buf := bufio.NewReader(reader)
	peek, err := buf.Peek(1024)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek body: %w", err)
	}
	enc, _, _ := charset.DetermineEncoding(peek, contentType)
	return transform.NewReader(buf, enc.NewDecoder()), nil
}

var _ Fetcher = (*Static)(nil)
