package vendors

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
)

var newtechConfig = scraper.Config{
	Brand:         "New Tech",
	ItemSelector:  ".shop-item._shop_item",
	NameSelector:  "h2.shop-title",
	ImageSelector: "img._org_img.org_img._lazy_img",
	PrefixSeries:  true,
}

// NewTech lists Korean display names only on each product's
// detail page, so ExtractDetail follows the item link per machine.
type NewTech struct {
	scraper.Base
	machineType string
}

func NewNewTech(series, machineType string) *NewTech {
	cfg := newtechConfig
	cfg.Series = series
	return &NewTech{Base: scraper.Base{Cfg: cfg}, machineType: machineType}
}

func (n *NewTech) ExtractDetail(ctx context.Context, item *goquery.Selection, pg *scraper.Page) (map[string]any, error) {
	detail := typeDetail(n.machineType)
	if detail == nil {
		detail = map[string]any{}
	}
	link, err := scraper.SelectOne(item, "a._fade_link.shop-item-thumb")
	if err != nil {
		return detail, nil
	}
	href, ok := link.Attr("href")
	if !ok {
		return detail, nil
	}
	doc, err := pg.Fetch.Fetch(ctx, pg.AbsoluteURL(href), nil)
	if err != nil {
		return detail, nil
	}
	summary, err := scraper.SelectOne(doc.Selection, "div.goods_summary.body_font_color_70 > div.fr-view > p")
	if err != nil {
		return detail, nil
	}
	if text := strings.TrimSpace(summary.Text()); text != "" {
		detail["name_kor"] = n.Cfg.Series + " " + text
	}
	return detail, nil
}
