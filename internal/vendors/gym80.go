package vendors

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
	"machinedex/internal/types"
)

var gym80Config = scraper.Config{
	Brand:         "Gym80",
	ItemSelector:  "div.collection-item.w-dyn-item",
	NameSelector:  "h2.product_name.text_white",
	ImageSelector: "div.product_image",
}

// Gym80 renders product shots as inline CSS backgrounds, not <img>.
type Gym80 struct {
	scraper.Base
	machineType string
}

func NewGym80(series, machineType string) *Gym80 {
	cfg := gym80Config
	cfg.Series = series
	cfg.PrefixSeries = true
	return &Gym80{Base: scraper.Base{Cfg: cfg}, machineType: machineType}
}

func (g *Gym80) ExtractImageURL(_ context.Context, item *goquery.Selection, _ *scraper.Page) (string, error) {
	sel, err := scraper.SelectOne(item, g.Cfg.ImageSelector)
	if err != nil {
		return "", &types.ExtractError{Brand: g.Cfg.Brand, Selector: g.Cfg.ImageSelector, Err: err}
	}
	style, _ := sel.Attr("style")
	u, err := scraper.BackgroundImageURL(style)
	if err != nil {
		return "", &types.ExtractError{Brand: g.Cfg.Brand, Selector: g.Cfg.ImageSelector, Err: err}
	}
	return u, nil
}

func (g *Gym80) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(g.machineType), nil
}
