package vendors

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
	"machinedex/internal/types"
)

var primeConfig = scraper.Config{
	Brand:         "Prime Fitness",
	ItemSelector:  "div[data-product-thumbnail]",
	NameSelector:  "a.product-thumbnail__title",
	ImageSelector: "div.product-thumbnail__image",
}

// PrimeFitness renders real image tags only inside noscript fallbacks;
// the live img elements are lazy-loading placeholders.
type PrimeFitness struct {
	scraper.Base
	machineType string
}

func NewPrimeFitness(series, machineType string) *PrimeFitness {
	cfg := primeConfig
	cfg.Series = series
	return &PrimeFitness{Base: scraper.Base{Cfg: cfg}, machineType: machineType}
}

func (p *PrimeFitness) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(p.machineType), nil
}

func (p *PrimeFitness) ExtractName(ctx context.Context, item *goquery.Selection, pg *scraper.Page) (string, error) {
	title, err := scraper.SelectOne(item, p.Cfg.NameSelector)
	if err != nil {
		return "", &types.ExtractError{Brand: p.Cfg.Brand, Selector: p.Cfg.NameSelector, Err: err}
	}
	name := strings.TrimSpace(title.Text())
	if i := strings.LastIndex(name, "|"); i >= 0 {
		name = strings.TrimSpace(name[i+1:])
	}
	return name, nil
}

func (p *PrimeFitness) ExtractImageURL(ctx context.Context, item *goquery.Selection, pg *scraper.Page) (string, error) {
	noscript, err := scraper.SelectOne(item, "noscript")
	if err != nil {
		return "", nil
	}
	inner, err := goquery.NewDocumentFromReader(strings.NewReader(noscript.Text()))
	if err != nil {
		return "", nil
	}
	img, err := scraper.SelectOne(inner.Selection, "img")
	if err != nil {
		return "", nil
	}
	srcset, ok := img.Attr("srcset")
	if !ok {
		return "", nil
	}
	variant, err := scraper.SrcsetVariant(srcset, "440x440")
	if err != nil {
		return "", nil
	}
	if strings.HasPrefix(variant, "//") {
		variant = "https:" + variant
	}
	return variant, nil
}
