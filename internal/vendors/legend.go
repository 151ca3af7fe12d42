package vendors

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
)

var legendConfig = scraper.Config{
	Brand:         "Legend Fitness",
	ItemSelector:  "div.block",
	NameSelector:  "h3",
	ImageSelector: "img",
}

type LegendFitness struct {
	scraper.Base
	machineType string
}

func NewLegendFitness(machineType string) *LegendFitness {
	return &LegendFitness{Base: scraper.Base{Cfg: legendConfig}, machineType: machineType}
}

func (l *LegendFitness) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(l.machineType), nil
}
