package vendors

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"

	"machinedex/internal/scraper"
	"machinedex/internal/types"
)

var atlantisConfig = scraper.Config{
	Brand:         "Atlantis Strength",
	ItemSelector:  "a.grid-view-item__link",
	NameSelector:  "div.h4.grid-view-item__title.product-card__title",
	ImageSelector: "img.grid-view-item__image",
	Dynamic:       true,
}

// Atlantis listings only carry a truncated title; the full name and
// SKU live on each product's detail page, fetched statically.
type Atlantis struct {
	scraper.Base
}

func NewAtlantis() *Atlantis {
	return &Atlantis{Base: scraper.Base{Cfg: atlantisConfig}}
}

func (a *Atlantis) ExtractName(ctx context.Context, item *goquery.Selection, pg *scraper.Page) (string, error) {
	href, ok := item.Attr("href")
	if !ok {
		return "", &types.ExtractError{Brand: a.Cfg.Brand, Selector: a.Cfg.ItemSelector, Err: types.ErrMissingAttr}
	}

	detail, err := pg.Fetch.Fetch(ctx, pg.AbsoluteURL(href), nil)
	if err != nil {
		return "", fmt.Errorf("fetch detail page: %w", err)
	}

	nameSel, err := scraper.SelectOne(detail.Selection, "h1.product-single__title")
	if err != nil {
		return "", &types.ExtractError{Brand: a.Cfg.Brand, Selector: "h1.product-single__title", Err: err}
	}
	name := strings.TrimSpace(nameSel.Text())

	// SKU is optional; its "SKU: " prefix is dropped when present.
	if skuSel, err := scraper.SelectOne(detail.Selection, "span.variant-sku"); err == nil {
		sku := strings.TrimSpace(skuSel.Text())
		if len(sku) > 5 {
			name = name + " " + sku[5:]
		}
	}
	return name, nil
}

func (a *Atlantis) Interact(*rod.Page) error {
	scraper.Settle(5 * time.Second)
	return nil
}
