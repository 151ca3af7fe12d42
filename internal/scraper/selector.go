package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"machinedex/internal/types"
)

// xpathPrefix switches a selector from CSS to XPath evaluation.
const xpathPrefix = "xpath:"

// Select returns all nodes matching sel within root. Selectors are CSS
// by default; an "xpath:" prefix switches to XPath, which some vendor
// markup (deeply positional tables, attribute-less cells) needs.
func Select(root *goquery.Selection, sel string) *goquery.Selection {
	if xp, ok := strings.CutPrefix(sel, xpathPrefix); ok {
		return selectXPath(root, xp)
	}
	return root.Find(sel)
}

// SelectOne returns the first node matching sel within root, or
// ErrNoMatch when nothing matches.
func SelectOne(root *goquery.Selection, sel string) (*goquery.Selection, error) {
	found := Select(root, sel)
	if found.Length() == 0 {
		return nil, types.ErrNoMatch
	}
	return found.First(), nil
}

// selectXPath evaluates an XPath expression against every node in root
// and wraps the results back into a selection on the same document.
func selectXPath(root *goquery.Selection, xp string) *goquery.Selection {
	var matched []*html.Node
	for _, n := range root.Nodes {
		found, err := htmlquery.QueryAll(n, xp)
		if err != nil {
			// An invalid expression matches nothing; the caller treats
			// it like a stale selector.
			return root.Slice(0, 0)
		}
		matched = append(matched, found...)
	}
	return root.Slice(0, 0).AddNodes(matched...)
}
