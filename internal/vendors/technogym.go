package vendors

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"

	"machinedex/internal/scraper"
)

var technogymConfig = scraper.Config{
	Brand:         "Technogym",
	ItemSelector:  "a.css-1jke4yk",
	NameSelector:  "h3.chakra-text.css-179z6sb",
	ImageSelector: "img.chakra-image.css-9tsw64",
	Dynamic:       true,
}

type Technogym struct {
	scraper.Base
	machineType string
}

func NewTechnogym(machineType string) *Technogym {
	return &Technogym{Base: scraper.Base{Cfg: technogymConfig}, machineType: machineType}
}

func (t *Technogym) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(t.machineType), nil
}

func (t *Technogym) Interact(page *rod.Page) error {
	scraper.Settle(5 * time.Second)
	return scraper.ClickLoadMore(page, "button.css-1v8s6ns", technogymConfig.ItemSelector, 3*time.Second)
}
