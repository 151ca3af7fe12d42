package enrich

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machinedex/internal/types"
)

type fakeGen struct {
	generateCalls []string
	contextCalls  int
	clears        int
	cached        bool

	reply      string
	replies    []string
	genErr     error
	contextErr error
	onGenerate func(calls int)
}

func (f *fakeGen) Generate(_ context.Context, prompt string) (string, error) {
	f.generateCalls = append(f.generateCalls, prompt)
	if f.onGenerate != nil {
		f.onGenerate(len(f.generateCalls))
	}
	if f.genErr != nil {
		return "", f.genErr
	}
	if len(f.replies) > 0 {
		r := f.replies[0]
		f.replies = f.replies[1:]
		return r, nil
	}
	return f.reply, nil
}

func (f *fakeGen) CreateContext(context.Context, string, string) error {
	f.contextCalls++
	if f.contextErr != nil {
		return f.contextErr
	}
	f.cached = true
	return nil
}

func (f *fakeGen) ClearContext(context.Context) {
	f.clears++
	f.cached = false
}

func (f *fakeGen) Cached() bool { return f.cached }

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTranslatorOneCallPerDistinctName(t *testing.T) {
	gen := &fakeGen{reply: "스미스 머신"}
	out := filepath.Join(t.TempDir(), "translated.json")
	tr := NewTranslator(gen, out, discard())

	machines := []types.Machine{
		{Brand: "Gym80", Name: "Smith Machine"},
		{Brand: "Gym80", Name: "Smith Machine"},
		{Brand: "Gym80", Name: "Leg Press"},
	}
	require.NoError(t, tr.Run(context.Background(), machines))
	assert.Len(t, gen.generateCalls, 2)
}

func TestTranslatorReusesTranslationAcrossBrands(t *testing.T) {
	gen := &fakeGen{reply: "스미스 머신"}
	out := filepath.Join(t.TempDir(), "translated.json")
	tr := NewTranslator(gen, out, discard())

	machines := []types.Machine{
		{Brand: "Gym80", Name: "Smith Machine"},
		{Brand: "Cybex", Name: "Smith Machine"},
	}
	require.NoError(t, tr.Run(context.Background(), machines))
	assert.Len(t, gen.generateCalls, 1)

	require.Len(t, tr.results, 2)
	assert.Equal(t, tr.results[0].NameKor, tr.results[1].NameKor)
	assert.Equal(t, "Gym80", tr.results[0].Brand)
	assert.Equal(t, "Cybex", tr.results[1].Brand)
}

func TestTranslatorCachesContextPerBrand(t *testing.T) {
	gen := &fakeGen{reply: "이름"}
	out := filepath.Join(t.TempDir(), "translated.json")
	tr := NewTranslator(gen, out, discard())

	machines := []types.Machine{
		{Brand: "A", Name: "x"},
		{Brand: "B", Name: "y"},
		{Brand: "A", Name: "z"},
	}
	require.NoError(t, tr.Run(context.Background(), machines))
	assert.Equal(t, 2, gen.contextCalls)
	assert.Equal(t, 2, gen.clears)
}

func TestTranslatorInlinesContextWhenCachingFails(t *testing.T) {
	gen := &fakeGen{reply: "이름", contextErr: errors.New("quota")}
	out := filepath.Join(t.TempDir(), "translated.json")
	tr := NewTranslator(gen, out, discard())

	require.NoError(t, tr.Run(context.Background(), []types.Machine{{Brand: "A", Name: "x"}}))
	require.Len(t, gen.generateCalls, 1)
	assert.Contains(t, gen.generateCalls[0], "machine catalog for the brand A")
}

func TestTranslatorResumesFromExistingOutput(t *testing.T) {
	gen := &fakeGen{reply: "이름"}
	out := filepath.Join(t.TempDir(), "translated.json")

	first := NewTranslator(gen, out, discard())
	require.NoError(t, first.Run(context.Background(), []types.Machine{{Brand: "A", Name: "x"}}))
	require.Len(t, gen.generateCalls, 1)

	second := NewTranslator(gen, out, discard())
	require.NoError(t, second.Run(context.Background(), []types.Machine{
		{Brand: "A", Name: "x"},
		{Brand: "A", Name: "y"},
	}))
	assert.Len(t, gen.generateCalls, 2)
}

func TestTranslatorFlushesPartialResultsOnCancel(t *testing.T) {
	gen := &fakeGen{reply: "이름"}
	out := filepath.Join(t.TempDir(), "translated.json")
	tr := NewTranslator(gen, out, discard())

	// Cancel after the first translation lands.
	ctx, cancel := context.WithCancel(context.Background())
	gen.onGenerate = func(calls int) {
		if calls == 1 {
			cancel()
		}
	}
	err := tr.Run(ctx, []types.Machine{
		{Brand: "A", Name: "x"},
		{Brand: "A", Name: "y"},
	})
	require.ErrorIs(t, err, context.Canceled)

	resumed := NewTranslator(gen, out, discard())
	require.NoError(t, resumed.load())
	require.Len(t, resumed.results, 1)
	assert.Equal(t, "x", resumed.results[0].Name)
}

func TestCanonicalizeMapsSynonyms(t *testing.T) {
	got := Canonicalize([]string{"Chest", "shoulders", "pectorals"})
	assert.Equal(t, []string{"pectorals", "delts"}, got)
}

func TestCanonicalizeRejectsUnknownLabel(t *testing.T) {
	assert.Nil(t, Canonicalize([]string{"pectorals", "mystery muscle"}))
}

func TestClassifierRetriesUntilCanonical(t *testing.T) {
	gen := &fakeGen{replies: []string{
		`["mystery muscle"]`,
		"```json\n[\"chest\", \"triceps\"]\n```",
	}}
	c := NewClassifier(gen, discard())
	c.retryDelay = 0

	got := c.Classify(context.Background(), "Chest Press", "Cybex")
	assert.Equal(t, []string{"pectorals", "triceps"}, got)
	assert.Len(t, gen.generateCalls, 2)
}

func TestClassifierGivesUpAfterAttempts(t *testing.T) {
	gen := &fakeGen{reply: "not json"}
	c := NewClassifier(gen, discard())
	c.retryDelay = 0

	assert.Nil(t, c.Classify(context.Background(), "Mystery", "X"))
	assert.Len(t, gen.generateCalls, 3)
}

func TestClassifyOnceWrapsServiceErrors(t *testing.T) {
	gen := &fakeGen{genErr: errors.New("quota")}
	c := NewClassifier(gen, discard())

	_, err := c.classifyOnce(context.Background(), "Chest Press", "Cybex")
	var enrichErr *types.EnrichError
	require.ErrorAs(t, err, &enrichErr)
	assert.Equal(t, "Cybex", enrichErr.Brand)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `["abs"]`, stripCodeFence("```json\n[\"abs\"]\n```"))
	assert.Equal(t, `["abs"]`, stripCodeFence(`["abs"]`))
}
