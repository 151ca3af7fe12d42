package vendors

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
	"machinedex/internal/types"
)

var freemotionConfig = scraper.Config{
	Brand:         "Freemotion Fitness",
	ItemSelector:  "div.prod-frame",
	NameSelector:  "h5",
	ImageSelector: "img",
}

// Freemotion appends the model code rendered in a <strong> next to the
// product heading.
type Freemotion struct {
	scraper.Base
	machineType string
}

func NewFreemotion(series, machineType string) *Freemotion {
	cfg := freemotionConfig
	cfg.Series = series
	cfg.PrefixSeries = true
	return &Freemotion{Base: scraper.Base{Cfg: cfg}, machineType: machineType}
}

func (f *Freemotion) ExtractName(ctx context.Context, item *goquery.Selection, pg *scraper.Page) (string, error) {
	name, err := f.Base.ExtractName(ctx, item, pg)
	if err != nil {
		return "", err
	}
	code, err := scraper.SelectOne(item, "strong")
	if err != nil {
		return "", &types.ExtractError{Brand: f.Cfg.Brand, Selector: "strong", Err: err}
	}
	return name + " " + strings.TrimSpace(code.Text()), nil
}

func (f *Freemotion) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(f.machineType), nil
}
