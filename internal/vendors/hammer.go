package vendors

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
)

var hammerConfig = scraper.Config{
	Brand:         "Hammer Strength",
	ItemSelector:  "a.product-grid--item",
	NameSelector:  "span.product-grid--item-name",
	ImageSelector: "div.product-grid--item-image",
}

// HammerStrength shares the lifefitness.com catalog markup; images are
// CSS backgrounds. A missing image is tolerated (some catalog tiles
// have none) rather than failing the item.
type HammerStrength struct {
	scraper.Base
}

func NewHammerStrength() *HammerStrength {
	return &HammerStrength{Base: scraper.Base{Cfg: hammerConfig}}
}

func (h *HammerStrength) ExtractImageURL(_ context.Context, item *goquery.Selection, _ *scraper.Page) (string, error) {
	return backgroundImageOrEmpty(item, h.Cfg.ImageSelector), nil
}

// backgroundImageOrEmpty resolves a CSS background-image URL, returning
// "" when the element or style is absent.
func backgroundImageOrEmpty(item *goquery.Selection, sel string) string {
	el, err := scraper.SelectOne(item, sel)
	if err != nil {
		return ""
	}
	style, _ := el.Attr("style")
	u, err := scraper.BackgroundImageURL(style)
	if err != nil {
		return ""
	}
	return u
}
