package vendors

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
)

var lexcoConfig = scraper.Config{
	Brand:         "Lexco",
	ItemSelector:  "div.item",
	NameSelector:  "div.tit",
	ImageSelector: "img",
	PrefixSeries:  true,
}

type Lexco struct {
	scraper.Base
	machineType string
}

func NewLexco(series, machineType string) *Lexco {
	cfg := lexcoConfig
	cfg.Series = series
	return &Lexco{Base: scraper.Base{Cfg: cfg}, machineType: machineType}
}

func (l *Lexco) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(l.machineType), nil
}
