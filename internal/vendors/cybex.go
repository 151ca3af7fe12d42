package vendors

import (
	"machinedex/internal/scraper"
)

var cybexConfig = scraper.Config{
	Brand:         "Cybex",
	ItemSelector:  "div.productitem__container",
	NameSelector:  "span.visually-hidden",
	ImageSelector: "img",
}

// Cybex needs nothing beyond the declarative defaults.
type Cybex struct {
	scraper.Base
}

func NewCybex() *Cybex {
	return &Cybex{Base: scraper.Base{Cfg: cybexConfig}}
}
