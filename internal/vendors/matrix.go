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

var matrixConfig = scraper.Config{
	Brand:         "Matrix",
	ItemSelector:  "div.card.list-group-item.h-100",
	NameSelector:  "a.card-text.ng-star-inserted",
	ImageSelector: "img.card-img-top",
	Dynamic:       true,
}

// Matrix paginates with an in-place "load more" button, so the whole
// catalog has to be expanded before extraction.
type Matrix struct {
	scraper.Base
	machineType string
}

func NewMatrix(machineType string) *Matrix {
	return &Matrix{Base: scraper.Base{Cfg: matrixConfig}, machineType: machineType}
}

func (m *Matrix) ExtractName(ctx context.Context, item *goquery.Selection, pg *scraper.Page) (string, error) {
	link, err := scraper.SelectOne(item, m.Cfg.NameSelector)
	if err != nil {
		return "", &types.ExtractError{Brand: m.Cfg.Brand, Selector: m.Cfg.NameSelector, Err: err}
	}
	code, err := scraper.SelectOne(item, "small")
	if err != nil {
		return "", &types.ExtractError{Brand: m.Cfg.Brand, Selector: "small", Err: err}
	}
	return strings.TrimSpace(link.Text()) + " " + strings.TrimSpace(code.Text()), nil
}

func (m *Matrix) ExtractDetail(context.Context, *goquery.Selection, *scraper.Page) (map[string]any, error) {
	return typeDetail(m.machineType), nil
}

func (m *Matrix) Interact(page *rod.Page) error {
	scraper.Settle(5 * time.Second)
	return scraper.ClickLoadMore(page, "button.btn.btn-primary.ng-star-inserted", matrixConfig.ItemSelector, 3*time.Second)
}
