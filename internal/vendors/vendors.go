// Package vendors holds one site adapter per equipment vendor. Each
// adapter is a Config plus at most four hook overrides on scraper.Base;
// the extraction engine never sees a concrete vendor type.
package vendors

// typeDetail is the most common extra-field payload: the machine's
// resistance type (Selectorized, Plate-loaded, Cable).
func typeDetail(machineType string) map[string]any {
	return map[string]any{"type": machineType}
}
