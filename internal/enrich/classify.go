package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"machinedex/internal/retry"
	"machinedex/internal/types"
)

// AllowedBodyParts is the closed label set classifications must land
// in. Anything else gets mapped through canonicalBodyParts or rejects
// the whole answer.
var AllowedBodyParts = []string{
	"abductors",
	"abs",
	"adductors",
	"biceps",
	"calves",
	"cardiovascular system",
	"delts",
	"forearms",
	"glutes",
	"hamstrings",
	"lats",
	"levator scapulae",
	"pectorals",
	"quads",
	"serratus anterior",
	"spine",
	"traps",
	"triceps",
	"upper back",
}

var canonicalBodyParts = func() map[string]string {
	m := map[string]string{
		"chest":             "pectorals",
		"pecs":              "pectorals",
		"pectoral":          "pectorals",
		"pectoralis":        "pectorals",
		"abdominal":         "abs",
		"abdominals":        "abs",
		"core":              "abs",
		"core muscles":      "abs",
		"obliques":          "abs",
		"hip":               "glutes",
		"hips":              "glutes",
		"glute":             "glutes",
		"gluteus":           "glutes",
		"gluteus maximus":   "glutes",
		"butt":              "glutes",
		"buttocks":          "glutes",
		"quadriceps":        "quads",
		"quad":              "quads",
		"hamstring":         "hamstrings",
		"posterior chain":   "hamstrings",
		"lat":               "lats",
		"latissimus dorsi":  "lats",
		"shoulder":          "delts",
		"shoulders":         "delts",
		"deltoid":           "delts",
		"deltoids":          "delts",
		"trapezius":         "traps",
		"trap":              "traps",
		"forearm":           "forearms",
		"calf":              "calves",
		"calf muscles":      "calves",
		"cardio":            "cardiovascular system",
		"cardiovascular":    "cardiovascular system",
		"spinal erectors":   "spine",
		"erector spinae":    "spine",
		"lower back":        "spine",
		"mid back":          "upper back",
		"upper-back":        "upper back",
		"back":              "upper back",
		"serratus":          "serratus anterior",
		"levator":           "levator scapulae",
		"levator scapula":   "levator scapulae",
		"adductor":          "adductors",
		"adductor muscles":  "adductors",
		"abductor":          "abductors",
		"abductor muscles":  "abductors",
	}
	for _, part := range AllowedBodyParts {
		m[part] = part
	}
	return m
}()

// Canonicalize maps raw model labels onto the allowed set, dropping
// duplicates. One unmappable label rejects the whole list; a partially
// wrong answer is retried, not stored.
func Canonicalize(parts []string) []string {
	var out []string
	for _, p := range parts {
		mapped, ok := canonicalBodyParts[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return nil
		}
		if !contains(out, mapped) {
			out = append(out, mapped)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Classifier labels machines with the body parts they train.
type Classifier struct {
	gen        Generator
	logger     *slog.Logger
	attempts   int
	retryDelay time.Duration
}

func NewClassifier(gen Generator, logger *slog.Logger) *Classifier {
	return &Classifier{
		gen:        gen,
		logger:     logger.With("component", "body_parts_classifier"),
		attempts:   3,
		retryDelay: 2 * time.Second,
	}
}

var errNotCanonical = errors.New("answer outside the allowed label set")

// Classify asks for a machine's body parts and retries until the
// answer canonicalizes cleanly or attempts run out. An exhausted
// machine returns an empty list rather than an error so callers can
// move on.
func (c *Classifier) Classify(ctx context.Context, name, brand string) []string {
	var canonical []string
	err := retry.Do(ctx, c.attempts, c.retryDelay, func() error {
		raw, err := c.classifyOnce(ctx, name, brand)
		if err != nil {
			c.logger.Warn("classification call failed", "name", name, "error", err)
			return err
		}
		mapped := Canonicalize(raw)
		if len(mapped) == 0 {
			c.logger.Warn("classification not canonical", "name", name, "raw", raw)
			return errNotCanonical
		}
		canonical = mapped
		return nil
	})
	if err != nil {
		return nil
	}
	return canonical
}

func (c *Classifier) classifyOnce(ctx context.Context, name, brand string) ([]string, error) {
	text, err := c.gen.Generate(ctx, classificationPrompt(name, brand))
	if err != nil {
		return nil, &types.EnrichError{Brand: brand, Name: name, Err: err}
	}
	var parts []string
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &parts); err != nil {
		return nil, &types.EnrichError{Brand: brand, Name: name, Err: err}
	}
	return parts, nil
}

// stripCodeFence unwraps a ```json fenced block if the model added one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
