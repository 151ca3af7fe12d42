package fetcher

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"
)

// InteractFunc runs inside the browser session after the initial page
// load, before the rendered document is captured. Adapters use it to
// click load-more controls or wait out lazy rendering. Static fetches
// ignore it.
type InteractFunc func(page *rod.Page) error

// Fetcher retrieves a URL's rendered HTML as a parsed document tree.
type Fetcher interface {
	// Fetch retrieves the page at pageURL. interact may be nil.
	Fetch(ctx context.Context, pageURL string, interact InteractFunc) (*goquery.Document, error)

	// Close releases any resources held by the fetcher.
	Close() error

	// Type returns the fetcher type identifier.
	Type() string
}
