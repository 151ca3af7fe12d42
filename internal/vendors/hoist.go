package vendors

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
	"machinedex/internal/types"
)

var hoistConfig = scraper.Config{
	Brand:         "Hoist",
	ItemSelector:  "div.product_line_card_div",
	NameSelector:  "h6",
	ImageSelector: "img",
}

// Hoist cards carry "Name - blurb" headings and a second h6 holding the
// model code; image srcs are protocol-relative.
type Hoist struct {
	scraper.Base
}

func NewHoist(series string) *Hoist {
	cfg := hoistConfig
	cfg.Series = series
	cfg.PrefixSeries = true
	return &Hoist{Base: scraper.Base{Cfg: cfg}}
}

func (h *Hoist) ExtractName(ctx context.Context, item *goquery.Selection, pg *scraper.Page) (string, error) {
	name, err := h.Base.ExtractName(ctx, item, pg)
	if err != nil {
		return "", err
	}
	name, _, _ = strings.Cut(name, " - ")
	return strings.TrimSpace(name), nil
}

func (h *Hoist) ExtractDetail(_ context.Context, item *goquery.Selection, _ *scraper.Page) (map[string]any, error) {
	headings := scraper.Select(item, "h6")
	if headings.Length() < 2 {
		return nil, &types.ExtractError{Brand: h.Cfg.Brand, Selector: "h6", Err: types.ErrNoMatch}
	}
	code := strings.TrimSpace(strings.ReplaceAll(headings.Eq(1).Text(), `"`, ""))
	return map[string]any{"code": code}, nil
}
