package orchestrator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"machinedex/internal/batch"
	"machinedex/internal/config"
	"machinedex/internal/jobs"
	"machinedex/internal/scraper"
	"machinedex/internal/types"
)

const pageOne = `
<html><body>
  <div class="product"><h3>Chest Press</h3><img src="/img/1.jpg"></div>
  <div class="product"><h3></h3><img src="/img/2.jpg"></div>
  <div class="product"><h3>Leg Press</h3><img src="/img/3.jpg"></div>
</body></html>`

const pageTwo = `
<html><body>
  <div class="product"><h3>Lat Pulldown</h3><img src="/img/4.jpg"></div>
  <div class="product"><h3>Seated Row</h3><img src="/img/5.jpg"></div>
</body></html>`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Paths.ScrapedDir = t.TempDir()
	cfg.Scrape.PolitenessDelay = 0
	return cfg
}

func testAdapter() scraper.Adapter {
	return &scraper.Base{Cfg: scraper.Config{
		Brand:         "TestBrand",
		ItemSelector:  "div.product",
		NameSelector:  "h3",
		ImageSelector: "img",
	}}
}

func TestRunScrapesJobAcrossPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/page1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pageOne))
	})
	mux.HandleFunc("/page2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pageTwo))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testConfig(t)
	runner, err := NewRunner(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	table := []jobs.Job{{
		Adapter: testAdapter(),
		URLs:    []string{srv.URL + "/page1", srv.URL + "/page2"},
	}}
	if err := runner.Run(context.Background(), table); err != nil {
		t.Fatalf("Run: %v", err)
	}

	machines, err := batch.ReadAll(cfg.Paths.ScrapedDir)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	// 5 items across both pages, one with an empty name.
	if len(machines) != 4 {
		t.Fatalf("expected 4 machines, got %d", len(machines))
	}
	if machines[0].Name != "Chest Press" {
		t.Errorf("expected document order, got %q first", machines[0].Name)
	}
	if machines[0].ImageURL != srv.URL+"/img/1.jpg" {
		t.Errorf("expected resolved image URL, got %q", machines[0].ImageURL)
	}
}

func TestRunSkipsFailingURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pageTwo))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := testConfig(t)
	runner, err := NewRunner(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	table := []jobs.Job{{
		Adapter: testAdapter(),
		URLs:    []string{srv.URL + "/broken", srv.URL + "/ok"},
	}}
	if err := runner.Run(context.Background(), table); err != nil {
		t.Fatalf("Run: %v", err)
	}

	machines, err := batch.ReadAll(cfg.Paths.ScrapedDir)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(machines) != 2 {
		t.Fatalf("expected 2 machines from the healthy page, got %d", len(machines))
	}
}

func TestRunWritesBatchPerJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pageTwo))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	runner, err := NewRunner(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	table := []jobs.Job{
		{Adapter: testAdapter(), URLs: []string{srv.URL}},
		{Adapter: testAdapter(), URLs: []string{srv.URL}},
	}
	if err := runner.Run(context.Background(), table); err != nil {
		t.Fatalf("Run: %v", err)
	}

	machines, err := batch.ReadAll(cfg.Paths.ScrapedDir)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(machines) != 4 {
		t.Fatalf("expected 4 machines across 2 jobs, got %d", len(machines))
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pageTwo))
	}))
	defer srv.Close()

	cfg := testConfig(t)
	runner, err := NewRunner(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	table := []jobs.Job{{Adapter: testAdapter(), URLs: []string{srv.URL}}}
	if err := runner.Run(ctx, table); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRunRejectsInvalidJobTable(t *testing.T) {
	cfg := testConfig(t)
	runner, err := NewRunner(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}

	table := []jobs.Job{{Adapter: testAdapter()}}
	err = runner.Run(context.Background(), table)
	if !errors.Is(err, types.ErrInvalidJobTable) {
		t.Fatalf("expected invalid job table error, got %v", err)
	}
}
