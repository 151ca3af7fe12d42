package vendors

import (
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-rod/rod"

	"machinedex/internal/scraper"
	"machinedex/internal/types"
)

var vilitiConfig = scraper.Config{
	Brand:         "Viliti",
	ItemSelector:  "a.list_type_inner",
	NameSelector:  "li.name",
	ImageSelector: "img.item_img",
	Dynamic:       true,
}

// Viliti truncates catalog names, so the full display name comes from
// each product's detail page.
type Viliti struct {
	scraper.Base
	machineType string
}

func NewViliti(machineType string) *Viliti {
	return &Viliti{Base: scraper.Base{Cfg: vilitiConfig}, machineType: machineType}
}

func (v *Viliti) ExtractName(ctx context.Context, item *goquery.Selection, pg *scraper.Page) (string, error) {
	href, ok := item.Attr("href")
	if !ok {
		return "", &types.ExtractError{Brand: v.Cfg.Brand, Selector: v.Cfg.ItemSelector, Err: types.ErrMissingAttr}
	}
	doc, err := pg.Fetch.Fetch(ctx, pg.AbsoluteURL(href), nil)
	if err != nil {
		return "", &types.ExtractError{Brand: v.Cfg.Brand, Selector: v.Cfg.ItemSelector, Err: err}
	}
	headline, err := scraper.SelectOne(doc.Selection, "h2.product_headline.product_display_name")
	if err != nil {
		return "", &types.ExtractError{Brand: v.Cfg.Brand, Selector: "h2.product_headline.product_display_name", Err: err}
	}
	return strings.TrimSpace(headline.Text()), nil
}

func (v *Viliti) ExtractDetail(ctx context.Context, item *goquery.Selection, pg *scraper.Page) (map[string]any, error) {
	detail := typeDetail(v.machineType)
	if detail == nil {
		detail = map[string]any{}
	}
	price := "N/A"
	if el, err := scraper.SelectOne(item, "li.saleprice em"); err == nil {
		price = scraper.PriceDigits(el.Text())
	}
	detail["price"] = price
	return detail, nil
}

func (v *Viliti) Interact(page *rod.Page) error {
	scraper.Settle(5 * time.Second)
	return scraper.ClickLoadMore(page, "div.product_paging.product_paging_1.animate a", vilitiConfig.ItemSelector, 3*time.Second)
}
