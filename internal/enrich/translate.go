package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"machinedex/internal/types"
)

// Generator is the Gemini surface the enrichment passes consume.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	CreateContext(ctx context.Context, instruction, contextText string) error
	ClearContext(ctx context.Context)
	Cached() bool
}

// Translation is one translated machine name.
type Translation struct {
	Brand   string `json:"brand"`
	Name    string `json:"name"`
	NameKor string `json:"name_kor"`
}

// Translator produces Korean machine names brand by brand. Existing
// results load on start and completed work always flushes on exit, so
// an interrupted run resumes where it stopped instead of re-paying for
// finished translations.
type Translator struct {
	gen        Generator
	outputPath string
	logger     *slog.Logger

	results []Translation
	done    map[string]bool
	byName  map[string]string
}

func NewTranslator(gen Generator, outputPath string, logger *slog.Logger) *Translator {
	return &Translator{
		gen:        gen,
		outputPath: outputPath,
		logger:     logger.With("component", "translator"),
		done:       make(map[string]bool),
		byName:     make(map[string]string),
	}
}

func itemKey(brand, name string) string { return brand + "\x00" + name }

// Run translates every not-yet-translated machine. Per brand it caches
// the catalog as Gemini context; when caching fails the context is
// inlined into each prompt instead. A failed machine is logged and
// skipped so one bad response never loses the rest of the brand.
func (t *Translator) Run(ctx context.Context, machines []types.Machine) error {
	if err := t.load(); err != nil {
		t.logger.Warn("existing results unreadable, starting fresh", "path", t.outputPath, "error", err)
		t.results = nil
		t.done = make(map[string]bool)
		t.byName = make(map[string]string)
	}
	defer func() {
		if err := t.save(); err != nil {
			t.logger.Error("saving results failed", "path", t.outputPath, "error", err)
		}
	}()

	for _, brand := range brandOrder(machines) {
		if err := t.runBrand(ctx, brand, brandMachines(machines, brand)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Translator) runBrand(ctx context.Context, brand string, machines []types.Machine) error {
	pending := 0
	needCall := 0
	names := make([]string, 0, len(machines))
	for _, m := range machines {
		names = append(names, m.Name)
		if t.done[itemKey(brand, m.Name)] {
			continue
		}
		pending++
		if _, ok := t.byName[m.Name]; !ok {
			needCall++
		}
	}
	if pending == 0 {
		return nil
	}

	inline := ""
	if needCall > 0 {
		contextText := BrandContext(brand, names)
		if err := t.gen.CreateContext(ctx, ContextInstruction, contextText); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			t.logger.Warn("context caching unavailable, inlining context", "brand", brand, "error", err)
			inline = "\n\n" + contextText
		}
		defer t.gen.ClearContext(ctx)
	}

	t.logger.Info("translating brand",
		"brand", brand, "machines", len(machines), "pending", pending,
		"context_cached", t.gen.Cached())
	for _, m := range machines {
		if t.done[itemKey(brand, m.Name)] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		// A name already translated for another brand reuses that
		// result instead of paying for a second call.
		if kor, ok := t.byName[m.Name]; ok {
			t.record(brand, m.Name, kor)
			continue
		}

		text, err := t.gen.Generate(ctx, translationPrompt(m.Name, brand)+inline)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			werr := &types.EnrichError{Brand: brand, Name: m.Name, Err: err}
			t.logger.Warn("translation failed", "error", werr)
			continue
		}
		t.record(brand, m.Name, text)
		t.logger.Info("translated", "brand", brand, "name", m.Name, "name_kor", text)
	}
	return nil
}

func (t *Translator) record(brand, name, kor string) {
	t.results = append(t.results, Translation{Brand: brand, Name: name, NameKor: kor})
	t.done[itemKey(brand, name)] = true
	t.byName[name] = kor
}

func (t *Translator) load() error {
	data, err := os.ReadFile(t.outputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, &t.results); err != nil {
		return err
	}
	for _, r := range t.results {
		t.done[itemKey(r.Brand, r.Name)] = true
		t.byName[r.Name] = r.NameKor
	}
	t.logger.Info("existing results loaded", "path", t.outputPath, "count", len(t.results))
	return nil
}

func (t *Translator) save() error {
	if len(t.results) == 0 {
		return nil
	}
	if dir := filepath.Dir(t.outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(t.results, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return os.WriteFile(t.outputPath, data, 0o644)
}

// brandOrder returns distinct brands in first-seen order.
func brandOrder(machines []types.Machine) []string {
	seen := make(map[string]bool)
	var brands []string
	for _, m := range machines {
		if !seen[m.Brand] {
			seen[m.Brand] = true
			brands = append(brands, m.Brand)
		}
	}
	return brands
}

func brandMachines(machines []types.Machine, brand string) []types.Machine {
	var out []types.Machine
	seen := make(map[string]bool)
	for _, m := range machines {
		if m.Brand != brand || seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		out = append(out, m)
	}
	return out
}
