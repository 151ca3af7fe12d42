package vendors

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
	"machinedex/internal/types"
)

var precorConfig = scraper.Config{
	Brand:         "Precor",
	ItemSelector:  "div.slideHorizontal___1NzNV",
	NameSelector:  "h2",
	ImageSelector: "img",
	PrefixSeries:  true,
}

type Precor struct {
	scraper.Base
}

func NewPrecor(series string) *Precor {
	cfg := precorConfig
	cfg.Series = series
	return &Precor{Base: scraper.Base{Cfg: cfg}}
}

// ExtractDetail reads the model code from the comparison card body.
func (p *Precor) ExtractDetail(_ context.Context, item *goquery.Selection, _ *scraper.Page) (map[string]any, error) {
	desc, err := scraper.SelectOne(item, "div.comparisonToolCard-content-description")
	if err != nil {
		return nil, &types.ExtractError{Brand: p.Cfg.Brand, Selector: "div.comparisonToolCard-content-description", Err: err}
	}
	code := strings.TrimSpace(strings.ReplaceAll(desc.Text(), `"`, ""))
	return map[string]any{"code": code}, nil
}
