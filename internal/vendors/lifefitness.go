package vendors

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"

	"machinedex/internal/scraper"
)

var lifeFitnessConfig = scraper.Config{
	Brand:         "Life Fitness",
	ItemSelector:  "a.product-grid--item",
	NameSelector:  "span.product-grid--item-name",
	ImageSelector: "div.product-grid--item-image",
	Dynamic:       true,
}

// LifeFitness uses the same catalog markup as Hammer Strength but the
// grid hydrates client-side, so it needs the browser and a long settle.
type LifeFitness struct {
	scraper.Base
}

func NewLifeFitness() *LifeFitness {
	return &LifeFitness{Base: scraper.Base{Cfg: lifeFitnessConfig}}
}

func (l *LifeFitness) ExtractImageURL(_ context.Context, item *goquery.Selection, _ *scraper.Page) (string, error) {
	return backgroundImageOrEmpty(item, l.Cfg.ImageSelector), nil
}

func (l *LifeFitness) Interact(*rod.Page) error {
	scraper.Settle(10 * time.Second)
	return nil
}
