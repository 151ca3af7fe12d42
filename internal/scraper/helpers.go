package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"machinedex/internal/types"
)

var bgImageRe = regexp.MustCompile(`background-image:\s*url\(["']?([^"')]+)["']?\)`)

// BackgroundImageURL pulls the URL out of an inline
// background-image:url(...) style value. Vendors that render product
// shots as CSS backgrounds (Gym80, Hammer Strength) use this instead of
// an <img> src.
func BackgroundImageURL(style string) (string, error) {
	m := bgImageRe.FindStringSubmatch(style)
	if m == nil {
		return "", fmt.Errorf("no background-image in style %q: %w", style, types.ErrNoMatch)
	}
	return m[1], nil
}

// SrcsetVariant picks the first srcset candidate URL whose path
// contains want (e.g. "440x440"). With an empty want it returns the
// last candidate, which by convention is the densest.
func SrcsetVariant(srcset, want string) (string, error) {
	var last string
	for _, cand := range strings.Split(srcset, ",") {
		fields := strings.Fields(strings.TrimSpace(cand))
		if len(fields) == 0 {
			continue
		}
		u := fields[0]
		if want != "" && strings.Contains(u, want) {
			return u, nil
		}
		last = u
	}
	if want == "" && last != "" {
		return last, nil
	}
	return "", fmt.Errorf("no %q variant in srcset: %w", want, types.ErrNoMatch)
}

var priceRe = regexp.MustCompile(`[\d,]+`)

// PriceDigits extracts the first run of digits (commas stripped) from a
// price string. Returns "N/A" when the text carries no number, matching
// the sentinel the downstream table loader expects.
func PriceDigits(text string) string {
	m := priceRe.FindString(text)
	if m == "" {
		return "N/A"
	}
	return strings.ReplaceAll(m, ",", "")
}
