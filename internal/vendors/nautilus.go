package vendors

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
)

var nautilusConfig = scraper.Config{
	Brand:         "Nautilus",
	ItemSelector:  "li.grid__item",
	NameSelector:  "a.full-unstyled-link",
	ImageSelector: "img.motion-reduce",
}

type Nautilus struct {
	scraper.Base
	machineType string
}

func NewNautilus(machineType string) *Nautilus {
	return &Nautilus{Base: scraper.Base{Cfg: nautilusConfig}, machineType: machineType}
}

func (n *Nautilus) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(n.machineType), nil
}
