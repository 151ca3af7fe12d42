package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"machinedex/internal/types"
)

// Merge flattens each machine's detail map to top level and pads every
// record to the union of all keys so the output is rectangular.
// Records sharing a brand and name collapse into one, later records
// winning, so re-running over the same inputs is a no-op.
func Merge(machines []types.Machine) []map[string]any {
	type slot struct {
		index  int
		record map[string]any
	}
	byKey := make(map[string]*slot)
	var order []string

	// First pass: flatten and collect the key union.
	keys := map[string]bool{"brand": true, "name": true, "image_url": true}
	for _, m := range machines {
		flat := map[string]any{
			"brand":     m.Brand,
			"name":      m.Name,
			"image_url": m.ImageURL,
		}
		for k, v := range m.Detail {
			flat[k] = v
			keys[k] = true
		}
		id := strings.ToLower(m.Brand) + "\x00" + strings.ToLower(m.Name)
		if existing, ok := byKey[id]; ok {
			existing.record = flat
			continue
		}
		byKey[id] = &slot{index: len(order), record: flat}
		order = append(order, id)
	}

	// Second pass: backfill missing keys with nulls.
	allKeys := make([]string, 0, len(keys))
	for k := range keys {
		allKeys = append(allKeys, k)
	}
	sort.Strings(allKeys)

	merged := make([]map[string]any, 0, len(order))
	for _, id := range order {
		rec := byKey[id].record
		for _, k := range allKeys {
			if _, ok := rec[k]; !ok {
				rec[k] = nil
			}
		}
		merged = append(merged, rec)
	}
	return merged
}

// MergeDir merges every batch file under dir and writes the combined
// dataset to outPath.
func MergeDir(dir, outPath string) (int, error) {
	machines, err := ReadAll(dir)
	if err != nil {
		return 0, err
	}
	merged := Merge(machines)
	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding merged dataset: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing merged dataset: %w", err)
	}
	return len(merged), nil
}
