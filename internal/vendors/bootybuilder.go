package vendors

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
)

var bootyBuilderConfig = scraper.Config{
	Brand:         "Booty Builder",
	ItemSelector:  "div.product-small.box",
	NameSelector:  "a.woocommerce-LoopProduct-link.woocommerce-loop-product__link",
	ImageSelector: "img.attachment-woocommerce_thumbnail.size-woocommerce_thumbnail",
}

type BootyBuilder struct {
	scraper.Base
	machineType string
}

func NewBootyBuilder(machineType string) *BootyBuilder {
	return &BootyBuilder{Base: scraper.Base{Cfg: bootyBuilderConfig}, machineType: machineType}
}

func (b *BootyBuilder) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(b.machineType), nil
}
