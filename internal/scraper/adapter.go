package scraper

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"

	"machinedex/internal/fetcher"
	"machinedex/internal/types"
)

// Config is the declarative part of a site adapter. Selectors are
// scoped to match inside one item node, never globally on the page;
// that is what lets one extraction algorithm serve every vendor.
type Config struct {
	// Brand is the vendor name stamped on every record.
	Brand string

	// ItemSelector locates the repeated item nodes within a page.
	ItemSelector string

	// NameSelector and ImageSelector are resolved inside one item node.
	NameSelector  string
	ImageSelector string

	// Series labels the machine line (e.g. "Sygnum", "Welliv Pro").
	Series string

	// PrefixSeries prepends Series to every extracted name.
	PrefixSeries bool

	// Dynamic selects the browser fetcher instead of plain HTTP.
	Dynamic bool
}

// Page carries the per-URL context threaded through extraction calls:
// the current base URL for relative-link resolution and a fetcher for
// secondary detail-page lookups.
type Page struct {
	BaseURL *url.URL
	Fetch   fetcher.Fetcher
}

// NewPage derives the page context from a target URL.
func NewPage(target string, f fetcher.Fetcher) (*Page, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	return &Page{
		BaseURL: &url.URL{Scheme: u.Scheme, Host: u.Host},
		Fetch:   f,
	}, nil
}

// AbsoluteURL normalizes an extracted URL to absolute form. Already
// absolute URLs pass through unchanged; protocol-relative URLs get
// https; relative paths resolve against the base URL. A relative path
// with no base collapses to the empty string, never a bare path.
func (pg *Page) AbsoluteURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	if pg == nil || pg.BaseURL == nil {
		return ""
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return pg.BaseURL.ResolveReference(ref).String()
}

// Adapter is the polymorphic per-vendor contract. The extraction
// engine calls these hooks and nothing vendor-specific; adding a vendor
// means a new Config plus at most these four overrides.
type Adapter interface {
	Config() Config

	// ExtractName returns the machine name from one item node.
	ExtractName(ctx context.Context, item *goquery.Selection, pg *Page) (string, error)

	// ExtractImageURL returns the image URL (possibly relative; the
	// engine normalizes it) from one item node.
	ExtractImageURL(ctx context.Context, item *goquery.Selection, pg *Page) (string, error)

	// ExtractDetail returns adapter-specific extra fields, or nil.
	ExtractDetail(ctx context.Context, item *goquery.Selection, pg *Page) (map[string]any, error)

	// Interact runs inside the browser session for dynamic sites.
	Interact(page *rod.Page) error
}

// Base provides the default hook implementations driven purely by the
// Config selectors. Vendor adapters embed Base and override what they
// need.
type Base struct {
	Cfg Config
}

func (b *Base) Config() Config { return b.Cfg }

// ExtractName returns the trimmed text of the name selector match.
func (b *Base) ExtractName(_ context.Context, item *goquery.Selection, _ *Page) (string, error) {
	sel, err := SelectOne(item, b.Cfg.NameSelector)
	if err != nil {
		return "", &types.ExtractError{Brand: b.Cfg.Brand, Selector: b.Cfg.NameSelector, Err: err}
	}
	return strings.TrimSpace(sel.Text()), nil
}

// ExtractImageURL returns the src attribute of the image selector match.
func (b *Base) ExtractImageURL(_ context.Context, item *goquery.Selection, _ *Page) (string, error) {
	sel, err := SelectOne(item, b.Cfg.ImageSelector)
	if err != nil {
		return "", &types.ExtractError{Brand: b.Cfg.Brand, Selector: b.Cfg.ImageSelector, Err: err}
	}
	src, ok := sel.Attr("src")
	if !ok {
		return "", &types.ExtractError{Brand: b.Cfg.Brand, Selector: b.Cfg.ImageSelector, Err: types.ErrMissingAttr}
	}
	return src, nil
}

// ExtractDetail attaches nothing by default.
func (b *Base) ExtractDetail(context.Context, *goquery.Selection, *Page) (map[string]any, error) {
	return nil, nil
}

// Interact is a no-op by default; static sites never reach it.
func (b *Base) Interact(*rod.Page) error { return nil }

var _ Adapter = (*Base)(nil)
