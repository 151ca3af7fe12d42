package scraper

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"machinedex/internal/types"
)

const selectorHTML = `
<html><body>
  <ul>
    <li class="name">Alpha</li>
    <li class="name">Beta</li>
    <li class="other">Gamma</li>
  </ul>
</body></html>`

func selectorDoc(t *testing.T) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(selectorHTML))
	if err != nil {
		t.Fatalf("parse test html: %v", err)
	}
	return doc
}

func TestSelectCSS(t *testing.T) {
	doc := selectorDoc(t)
	sel := Select(doc.Selection, "li.name")
	if sel.Length() != 2 {
		t.Fatalf("expected 2 matches, got %d", sel.Length())
	}
}

func TestSelectXPath(t *testing.T) {
	doc := selectorDoc(t)
	sel := Select(doc.Selection, `xpath://li[@class="name"]`)
	if sel.Length() != 2 {
		t.Fatalf("expected 2 matches, got %d", sel.Length())
	}
	if got := strings.TrimSpace(sel.First().Text()); got != "Alpha" {
		t.Errorf("expected Alpha, got %q", got)
	}
}

func TestSelectXPathScopedToItem(t *testing.T) {
	doc := selectorDoc(t)
	item := doc.Find("ul")
	sel := Select(item, "xpath:.//li")
	if sel.Length() != 3 {
		t.Fatalf("expected 3 matches inside ul, got %d", sel.Length())
	}
}

func TestSelectOneNoMatch(t *testing.T) {
	doc := selectorDoc(t)
	_, err := SelectOne(doc.Selection, "li.missing")
	if !errors.Is(err, types.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestSelectOneReturnsFirst(t *testing.T) {
	doc := selectorDoc(t)
	sel, err := SelectOne(doc.Selection, "li.name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(sel.Text()); got != "Alpha" {
		t.Errorf("expected Alpha, got %q", got)
	}
}
