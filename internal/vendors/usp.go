package vendors

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
)

var uspConfig = scraper.Config{
	Brand:         "USP",
	ItemSelector:  "div.shop-item._shop_item",
	NameSelector:  "h2.shop-title",
	ImageSelector: "img",
	PrefixSeries:  true,
}

type USP struct {
	scraper.Base
	machineType string
}

func NewUSP(series, machineType string) *USP {
	cfg := uspConfig
	cfg.Series = series
	return &USP{Base: scraper.Base{Cfg: cfg}, machineType: machineType}
}

func (u *USP) ExtractDetail(ctx context.Context, item *goquery.Selection, pg *scraper.Page) (map[string]any, error) {
	detail := typeDetail(u.machineType)
	if detail == nil {
		detail = map[string]any{}
	}
	price := "N/A"
	if el, err := scraper.SelectOne(item, "p.pay.inline-blocked"); err == nil {
		price = scraper.PriceDigits(el.Text())
	}
	detail["price"] = price
	return detail, nil
}
