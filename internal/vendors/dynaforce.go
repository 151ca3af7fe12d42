package vendors

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
	"machinedex/internal/types"
)

var dynaforceConfig = scraper.Config{
	Brand:         "Dynaforce",
	ItemSelector:  "ul.gall_con",
	NameSelector:  "li.name",
	ImageSelector: "img",
}

// Dynaforce runs on a gnuboard gallery; the usable name is the second
// anchor in each gallery cell.
type Dynaforce struct {
	scraper.Base
	machineType string
}

func NewDynaforce(machineType string) *Dynaforce {
	return &Dynaforce{Base: scraper.Base{Cfg: dynaforceConfig}, machineType: machineType}
}

func (d *Dynaforce) ExtractName(_ context.Context, item *goquery.Selection, _ *scraper.Page) (string, error) {
	links := scraper.Select(item, "li.gall_text_href.text-center a")
	if links.Length() < 2 {
		return "", &types.ExtractError{Brand: d.Cfg.Brand, Selector: "li.gall_text_href.text-center a", Err: types.ErrNoMatch}
	}
	return strings.TrimSpace(links.Eq(1).Text()), nil
}

func (d *Dynaforce) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(d.machineType), nil
}
