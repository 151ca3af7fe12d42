package vendors

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
)

var gymlecoConfig = scraper.Config{
	Brand:         "Gymleco",
	ItemSelector:  "div.block-inner-inner",
	NameSelector:  "div.product-block__title.product-block-title",
	ImageSelector: "img.theme-img",
}

type Gymleco struct {
	scraper.Base
	machineType string
}

func NewGymleco(machineType string) *Gymleco {
	return &Gymleco{Base: scraper.Base{Cfg: gymlecoConfig}, machineType: machineType}
}

func (g *Gymleco) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(g.machineType), nil
}
