package vendors

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/scraper"
)

func itemFrom(t *testing.T, html, selector string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	item := doc.Find(selector).First()
	if item.Length() == 0 {
		t.Fatalf("fixture does not match item selector %q", selector)
	}
	return item
}

func engine() *scraper.Engine {
	return scraper.NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPanattaNameIncludesSKU(t *testing.T) {
	const fixture = `
<a class="woocommerce-LoopProduct-link woocommerce-loop-product__link" href="/p/1">
  <h2 class="woocommerce-loop-product__title">Super Inclined Bench Press</h2>
  <span class="woocommerce-loop-product__sku">1HP559</span>
  <img class="attachment-woocommerce_thumbnail size-woocommerce_thumbnail" src="/img/1hp559.jpg">
</a>`
	ad := NewPanatta("Freeweight HP", "Plate-loaded")
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	m, err := engine().ExtractOne(context.Background(), item, ad, nil)
	if err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}
	if m.Name != "Freeweight HP Super Inclined Bench Press 1HP559" {
		t.Errorf("unexpected name %q", m.Name)
	}
	if m.DetailString("type") != "Plate-loaded" {
		t.Errorf("unexpected type %q", m.DetailString("type"))
	}
}

func TestGym80BackgroundImage(t *testing.T) {
	const fixture = `
<div class="collection-item w-dyn-item">
  <h2 class="product_name text_white">Seated Leg Press</h2>
  <div class="product_image" style='background-image: url("https://cdn.gym80.de/legpress.jpg")'></div>
</div>`
	ad := NewGym80("Sygnum", "Selectorized")
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	m, err := engine().ExtractOne(context.Background(), item, ad, nil)
	if err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}
	if m.Name != "Sygnum Seated Leg Press" {
		t.Errorf("unexpected name %q", m.Name)
	}
	if m.ImageURL != "https://cdn.gym80.de/legpress.jpg" {
		t.Errorf("unexpected image %q", m.ImageURL)
	}
}

func TestDynaforceUsesSecondAnchor(t *testing.T) {
	const fixture = `
<ul class="gall_con">
  <li class="gall_text_href text-center">
    <a href="/view?id=1"><img src="/thumb/1.jpg"></a>
    <a href="/view?id=1">DF-101 Chest Press</a>
  </li>
  <img src="/thumb/1.jpg">
</ul>`
	ad := NewDynaforce("Selectorized")
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	name, err := ad.ExtractName(context.Background(), item, nil)
	if err != nil {
		t.Fatalf("ExtractName: %v", err)
	}
	if name != "DF-101 Chest Press" {
		t.Errorf("unexpected name %q", name)
	}
}

func TestDynaforceMissingSecondAnchor(t *testing.T) {
	const fixture = `
<ul class="gall_con">
  <li class="gall_text_href text-center"><a href="/view?id=1">only one</a></li>
</ul>`
	ad := NewDynaforce("Selectorized")
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	if _, err := ad.ExtractName(context.Background(), item, nil); err == nil {
		t.Fatal("expected error with a single anchor")
	}
}

func TestHoistNameAndCode(t *testing.T) {
	const fixture = `
<div class="product_line_card_div">
  <h6>ISO Lateral Chest Press - plate loaded strength</h6>
  <h6>"CF-3355"</h6>
  <img src="//cdn.hoist.com/cf3355.jpg">
</div>`
	ad := NewHoist("Plate-loaded")
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	m, err := engine().ExtractOne(context.Background(), item, ad, nil)
	if err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}
	if m.Name != "Plate-loaded ISO Lateral Chest Press" {
		t.Errorf("unexpected name %q", m.Name)
	}
	if m.DetailString("code") != "CF-3355" {
		t.Errorf("unexpected code %q", m.DetailString("code"))
	}
	if m.ImageURL != "https://cdn.hoist.com/cf3355.jpg" {
		t.Errorf("unexpected image %q", m.ImageURL)
	}
}

func TestPrimeNameAndNoscriptImage(t *testing.T) {
	const fixture = `
<div data-product-thumbnail>
  <a class="product-thumbnail__title" href="/p/1">PRIME | Evolution Chest Press</a>
  <div class="product-thumbnail__image">
    <img src="data:placeholder">
    <noscript>
      <img src="//cdn.prime.com/p_180x180.jpg"
           srcset="//cdn.prime.com/p_180x180.jpg 1x, //cdn.prime.com/p_440x440@2x.jpg 2x">
    </noscript>
  </div>
</div>`
	ad := NewPrimeFitness("Evolution", "Selectorized")
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	name, err := ad.ExtractName(context.Background(), item, nil)
	if err != nil {
		t.Fatalf("ExtractName: %v", err)
	}
	if name != "Evolution Chest Press" {
		t.Errorf("unexpected name %q", name)
	}

	img, err := ad.ExtractImageURL(context.Background(), item, nil)
	if err != nil {
		t.Fatalf("ExtractImageURL: %v", err)
	}
	if img != "https://cdn.prime.com/p_440x440@2x.jpg" {
		t.Errorf("unexpected image %q", img)
	}
}

func TestUSPDetailHasPriceAndType(t *testing.T) {
	const fixture = `
<div class="shop-item _shop_item">
  <h2 class="shop-title">Leverage Squat</h2>
  <p class="pay inline-blocked">2,480,000원</p>
  <img src="/img/squat.jpg">
</div>`
	ad := NewUSP("LeverageSeries", "Plate-loaded")
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	detail, err := ad.ExtractDetail(context.Background(), item, nil)
	if err != nil {
		t.Fatalf("ExtractDetail: %v", err)
	}
	if detail["price"] != "2480000" {
		t.Errorf("unexpected price %v", detail["price"])
	}
	if detail["type"] != "Plate-loaded" {
		t.Errorf("unexpected type %v", detail["type"])
	}
}

func TestUSPMissingPriceFallsBack(t *testing.T) {
	const fixture = `
<div class="shop-item _shop_item">
  <h2 class="shop-title">Leverage Squat</h2>
  <img src="/img/squat.jpg">
</div>`
	ad := NewUSP("LeverageSeries", "Plate-loaded")
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	detail, err := ad.ExtractDetail(context.Background(), item, nil)
	if err != nil {
		t.Fatalf("ExtractDetail: %v", err)
	}
	if detail["price"] != "N/A" {
		t.Errorf("expected N/A price, got %v", detail["price"])
	}
}

func TestHammerToleratesMissingImage(t *testing.T) {
	const fixture = `
<a class="product-grid--item" href="/p/iso-row">
  <span class="product-grid--item-name">ISO Row</span>
</a>`
	ad := NewHammerStrength()
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	img, err := ad.ExtractImageURL(context.Background(), item, nil)
	if err != nil {
		t.Fatalf("ExtractImageURL: %v", err)
	}
	if img != "" {
		t.Errorf("expected empty image, got %q", img)
	}
}

func TestMatrixNameRequiresCode(t *testing.T) {
	const fixture = `
<div class="card list-group-item h-100">
  <img class="card-img-top" src="/img/versa.jpg">
  <a class="card-text ng-star-inserted" href="/p/1">Chest Press</a>
  <small>VS-S13</small>
</div>`
	ad := NewMatrix("Selectorized")
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	m, err := engine().ExtractOne(context.Background(), item, ad, nil)
	if err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}
	if m.Name != "Chest Press VS-S13" {
		t.Errorf("unexpected name %q", m.Name)
	}

	const noCode = `
<div class="card list-group-item h-100">
  <img class="card-img-top" src="/img/versa.jpg">
  <a class="card-text ng-star-inserted" href="/p/1">Chest Press</a>
</div>`
	item = itemFrom(t, noCode, ad.Config().ItemSelector)
	if _, err := ad.ExtractName(context.Background(), item, nil); err == nil {
		t.Error("expected error for missing code element")
	}
}

func TestVilitiPriceFromSalePrice(t *testing.T) {
	const fixture = `
<a class="list_type_inner" href="/product/1">
  <img class="item_img" src="/img/1.jpg">
  <ul>
    <li class="name">스미스 머신</li>
    <li class="saleprice"><em>1,250,000</em>원</li>
  </ul>
</a>`
	ad := NewViliti("Selectorized")
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	detail, err := ad.ExtractDetail(context.Background(), item, nil)
	if err != nil {
		t.Fatalf("ExtractDetail: %v", err)
	}
	if detail["price"] != "1250000" {
		t.Errorf("unexpected price %v", detail["price"])
	}
	if detail["type"] != "Selectorized" {
		t.Errorf("unexpected type %v", detail["type"])
	}
}

func TestPrecorCodeDetail(t *testing.T) {
	const fixture = `
<div class="slideHorizontal___1NzNV">
  <h2>Chest Press</h2>
  <div class="comparisonToolCard-content-description">"RSL0314"</div>
  <img src="https://cdn.precor.com/rsl0314.jpg">
</div>`
	ad := NewPrecor("Resolute")
	item := itemFrom(t, fixture, ad.Config().ItemSelector)

	m, err := engine().ExtractOne(context.Background(), item, ad, nil)
	if err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}
	if m.Name != "Resolute Chest Press" {
		t.Errorf("unexpected name %q", m.Name)
	}
	if m.DetailString("code") != "RSL0314" {
		t.Errorf("unexpected code %q", m.DetailString("code"))
	}
}

func TestNewTechBrand(t *testing.T) {
	ad := NewNewTech("On Him", "Selectorized")
	if got := ad.Config().Brand; got != "New Tech" {
		t.Errorf("unexpected brand %q", got)
	}
}
