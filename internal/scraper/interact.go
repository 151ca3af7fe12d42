package scraper

import (
	"time"

	"github.com/go-rod/rod"
)

// Settle blocks for a fixed delay so client-rendered content can
// finish loading. Rate control here is deliberate sleep, not a token
// bucket; the load is self-generated against third-party sites.
func Settle(d time.Duration) {
	time.Sleep(d)
}

// ClickLoadMore repeatedly clicks the element matching buttonSel (via
// JavaScript, so overlays don't block it) until either the button
// disappears or the number of itemSel matches stops growing between
// two consecutive checks. settle is the wait after each click.
func ClickLoadMore(page *rod.Page, buttonSel, itemSel string, settle time.Duration) error {
	before := -1
	for {
		btn, err := page.Timeout(5 * time.Second).Element(buttonSel)
		if err != nil {
			// No more button: pagination is exhausted.
			return nil
		}
		if _, err := btn.Eval(`() => this.click()`); err != nil {
			return err
		}
		time.Sleep(settle)

		els, err := page.Elements(itemSel)
		if err != nil {
			return err
		}
		if len(els) == before {
			return nil
		}
		before = len(els)
	}
}
