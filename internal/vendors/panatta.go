package vendors

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
	"machinedex/internal/types"
)

var panattaConfig = scraper.Config{
	Brand:         "Panatta",
	ItemSelector:  "a.woocommerce-LoopProduct-link.woocommerce-loop-product__link",
	NameSelector:  "h2.woocommerce-loop-product__title",
	ImageSelector: "img.attachment-woocommerce_thumbnail.size-woocommerce_thumbnail",
}

// Panatta composes the product title with its SKU span.
type Panatta struct {
	scraper.Base
	machineType string
}

func NewPanatta(series, machineType string) *Panatta {
	cfg := panattaConfig
	cfg.Series = series
	cfg.PrefixSeries = true
	return &Panatta{Base: scraper.Base{Cfg: cfg}, machineType: machineType}
}

func (p *Panatta) ExtractName(ctx context.Context, item *goquery.Selection, pg *scraper.Page) (string, error) {
	name, err := p.Base.ExtractName(ctx, item, pg)
	if err != nil {
		return "", err
	}
	code, err := scraper.SelectOne(item, "span.woocommerce-loop-product__sku")
	if err != nil {
		return "", &types.ExtractError{Brand: p.Cfg.Brand, Selector: "span.woocommerce-loop-product__sku", Err: err}
	}
	return name + " " + strings.TrimSpace(code.Text()), nil
}

func (p *Panatta) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(p.machineType), nil
}
