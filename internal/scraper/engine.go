package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/types"
)

// Engine turns a fetched document plus a site adapter into records.
// One engine serves every adapter; all vendor variation lives behind
// the Adapter hooks.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an extraction engine.
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logger.With("component", "extraction_engine")}
}

// Extract locates every item node in the document and extracts one
// record per node. A failing item is logged with its index and skipped;
// the loop always continues to the last item. Output order matches
// document order. Zero item matches is a warning, not an error.
func (e *Engine) Extract(ctx context.Context, doc *goquery.Document, ad Adapter, pg *Page) []types.Machine {
	cfg := ad.Config()

	items := Select(doc.Selection, cfg.ItemSelector)
	count := items.Length()
	e.logger.Info("items located", "brand", cfg.Brand, "selector", cfg.ItemSelector, "count", count)
	if count == 0 {
		e.logger.Warn("no items found on page", "brand", cfg.Brand, "selector", cfg.ItemSelector)
		return nil
	}

	machines := make([]types.Machine, 0, count)
	items.Each(func(idx int, item *goquery.Selection) {
		m, err := e.ExtractOne(ctx, item, ad, pg)
		if err != nil {
			e.logger.Error("item extraction failed", "brand", cfg.Brand, "index", idx, "error", err)
			return
		}
		machines = append(machines, m)
	})

	e.logger.Info("items extracted", "brand", cfg.Brand, "extracted", len(machines), "skipped", count-len(machines))
	return machines
}

// ExtractOne extracts a single record from one item node. Usable
// standalone for diagnosing a stale selector against a saved snippet.
func (e *Engine) ExtractOne(ctx context.Context, item *goquery.Selection, ad Adapter, pg *Page) (types.Machine, error) {
	cfg := ad.Config()

	name, err := ad.ExtractName(ctx, item, pg)
	if err != nil {
		return types.Machine{}, fmt.Errorf("extract name: %w", err)
	}
	if strings.TrimSpace(name) == "" {
		return types.Machine{}, &types.ExtractError{Brand: cfg.Brand, Selector: cfg.NameSelector, Err: fmt.Errorf("empty name")}
	}

	imageURL, err := ad.ExtractImageURL(ctx, item, pg)
	if err != nil {
		return types.Machine{}, fmt.Errorf("extract image: %w", err)
	}
	imageURL = pg.AbsoluteURL(imageURL)

	detail, err := ad.ExtractDetail(ctx, item, pg)
	if err != nil {
		return types.Machine{}, fmt.Errorf("extract detail: %w", err)
	}

	fullName := strings.TrimSpace(name)
	if cfg.PrefixSeries && cfg.Series != "" {
		fullName = cfg.Series + " " + fullName
	}

	return types.Machine{
		Brand:    cfg.Brand,
		Name:     fullName,
		ImageURL: imageURL,
		Detail:   detail,
	}, nil
}
