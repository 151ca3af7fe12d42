// Package batch persists scraped machine records as timestamped JSON
// files, one file per scrape job, and merges them into a single
// rectangular dataset for downstream processing.
package batch

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"machinedex/internal/types"
)

// Writer drops one JSON file per completed job into dir. Files are
// named <brand>[_<series>]_machines_<unix>.json so a directory listing
// sorted by name replays jobs oldest first within a brand.
type Writer struct {
	dir    string
	logger *slog.Logger
	now    func() time.Time
}

func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{
		dir:    dir,
		logger: logger.With("component", "batch_writer"),
		now:    time.Now,
	}
}

// Write saves machines to a new timestamped file and returns its path.
// An empty slice still produces a file so a zero-result job is visible
// in the output directory.
func (w *Writer) Write(brand, series string, machines []types.Machine) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating batch dir: %w", err)
	}
	stem := fileStem(brand, series)
	ts := w.now().Unix()
	path := filepath.Join(w.dir, fmt.Sprintf("%s_machines_%d.json", stem, ts))
	// Two jobs finishing within the same second must not overwrite
	// each other.
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		ts++
		path = filepath.Join(w.dir, fmt.Sprintf("%s_machines_%d.json", stem, ts))
	}

	data, err := json.MarshalIndent(machines, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding batch: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing batch: %w", err)
	}
	w.logger.Info("batch written", "path", path, "machines", len(machines))
	return path, nil
}

func fileStem(brand, series string) string {
	stem := sanitize(brand)
	if series != "" {
		stem += "_" + sanitize(series)
	}
	return stem
}

func sanitize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}

// ReadAll loads every *.json batch file under dir in lexical filename
// order. Unreadable or malformed files abort the merge rather than
// silently dropping records.
func ReadAll(dir string) ([]types.Machine, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading batch dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var all []types.Machine
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		machines, err := decodeRecords(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		all = append(all, machines...)
	}
	return all, nil
}

// decodeRecords accepts both shapes a machine record appears in: the
// nested batch form with a "detail" object, and the flattened merged
// form where detail keys sit at top level. Unknown top-level keys fold
// back into Detail so re-merging a merged file keeps its key set.
func decodeRecords(data []byte) ([]types.Machine, error) {
	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	machines := make([]types.Machine, 0, len(raw))
	for _, rec := range raw {
		var m types.Machine
		detail := map[string]any{}
		for k, v := range rec {
			switch k {
			case "brand":
				m.Brand, _ = v.(string)
			case "name":
				m.Name, _ = v.(string)
			case "image_url":
				m.ImageURL, _ = v.(string)
			case "detail":
				if nested, ok := v.(map[string]any); ok {
					for nk, nv := range nested {
						detail[nk] = nv
					}
				}
			default:
				detail[k] = v
			}
		}
		if len(detail) > 0 {
			m.Detail = detail
		}
		machines = append(machines, m)
	}
	return machines, nil
}
