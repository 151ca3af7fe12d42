package vendors

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
)

var draxConfig = scraper.Config{
	Brand:         "Drax",
	ItemSelector:  "a.space-y-10",
	NameSelector:  `h3.text-2xl.md\:text-3xl`,
	ImageSelector: "img.object-contain.h-full.w-max",
}

type Drax struct {
	scraper.Base
	machineType string
}

func NewDrax(series, machineType string) *Drax {
	cfg := draxConfig
	cfg.Series = series
	return &Drax{Base: scraper.Base{Cfg: cfg}, machineType: machineType}
}

func (d *Drax) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(d.machineType), nil
}
