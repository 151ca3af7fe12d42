package vendors

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
)

var arsenalConfig = scraper.Config{
	Brand:         "Arsenal Strength",
	ItemSelector:  "form.item.h-full.product.product-item.product_addtocart_form",
	NameSelector:  "a.product-item-link",
	ImageSelector: "img.object-contain",
}

// Arsenal is sold through the ironcompany.com reseller grid.
type Arsenal struct {
	scraper.Base
	machineType string
}

func NewArsenal(series, machineType string) *Arsenal {
	cfg := arsenalConfig
	cfg.Series = series
	return &Arsenal{Base: scraper.Base{Cfg: cfg}, machineType: machineType}
}

func (a *Arsenal) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(a.machineType), nil
}
