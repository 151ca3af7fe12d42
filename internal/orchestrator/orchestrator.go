// Package orchestrator drives the scrape job table: fetch, extract,
// and persist, one batch file per job.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"machinedex/internal/batch"
	"machinedex/internal/config"
	"machinedex/internal/fetcher"
	"machinedex/internal/jobs"
	"machinedex/internal/scraper"
	"machinedex/internal/types"
)

// Runner executes scrape jobs. The static fetcher is always available;
// the browser fetcher starts lazily on the first dynamic job so a run
// of purely static jobs never launches a browser.
type Runner struct {
	cfg    *config.Config
	engine *scraper.Engine
	writer *batch.Writer
	logger *slog.Logger

	static fetcher.Fetcher

	browserOnce sync.Once
	browser     fetcher.Fetcher
	browserErr  error
}

func NewRunner(cfg *config.Config, logger *slog.Logger) (*Runner, error) {
	static, err := fetcher.NewStatic(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:    cfg,
		engine: scraper.NewEngine(logger),
		writer: batch.NewWriter(cfg.Paths.ScrapedDir, logger),
		logger: logger.With("component", "orchestrator"),
		static: static,
	}, nil
}

// Run executes every job in table order. A failing URL or job is
// logged and skipped; Run only returns an error for a malformed job
// table or a cancelled context. Each job's batch file lands before the
// next job starts, so an interrupted run keeps everything scraped so
// far.
func (r *Runner) Run(ctx context.Context, table []jobs.Job) error {
	defer r.Close()

	if err := validateTable(table); err != nil {
		return err
	}

	start := time.Now()
	total := 0

	if r.cfg.Scrape.Workers > 1 {
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.cfg.Scrape.Workers)
		for _, job := range table {
			job := job
			g.Go(func() error {
				n, err := r.runJob(gctx, job)
				if err != nil {
					return err
				}
				mu.Lock()
				total += n
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for _, job := range table {
			n, err := r.runJob(ctx, job)
			if err != nil {
				return err
			}
			total += n
		}
	}

	r.logger.Info("scrape run finished",
		"jobs", len(table), "machines", total, "elapsed", time.Since(start))
	return nil
}

// validateTable rejects a job table before any network I/O happens.
func validateTable(table []jobs.Job) error {
	for i, job := range table {
		if job.Adapter == nil {
			return fmt.Errorf("job %d: missing adapter: %w", i, types.ErrInvalidJobTable)
		}
		cfg := job.Adapter.Config()
		if cfg.Brand == "" || cfg.ItemSelector == "" {
			return fmt.Errorf("job %d (%q): incomplete adapter config: %w", i, cfg.Brand, types.ErrInvalidJobTable)
		}
		if len(job.URLs) == 0 {
			return fmt.Errorf("job %d (%q): no urls: %w", i, cfg.Brand, types.ErrInvalidJobTable)
		}
	}
	return nil
}

// runJob scrapes one job's URLs in order and writes its batch file.
// It returns an error only on context cancellation.
func (r *Runner) runJob(ctx context.Context, job jobs.Job) (int, error) {
	cfg := job.Adapter.Config()
	jobLog := r.logger.With("brand", cfg.Brand, "series", cfg.Series)
	jobLog.Info("job started", "urls", len(job.URLs), "dynamic", cfg.Dynamic)

	var machines []types.Machine
	for _, pageURL := range job.URLs {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		got, err := r.scrapeURL(ctx, job.Adapter, pageURL)
		if err != nil {
			jobLog.Error("page failed", "url", pageURL, "error", err)
			continue
		}
		machines = append(machines, got...)

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(r.cfg.Scrape.PolitenessDelay):
		}
	}

	if _, err := r.writer.Write(cfg.Brand, cfg.Series, machines); err != nil {
		jobLog.Error("batch write failed", "error", err)
		return 0, nil
	}
	jobLog.Info("job finished", "machines", len(machines))
	return len(machines), nil
}

func (r *Runner) scrapeURL(ctx context.Context, ad scraper.Adapter, pageURL string) ([]types.Machine, error) {
	cfg := ad.Config()

	f, err := r.fetcherFor(cfg)
	if err != nil {
		return nil, err
	}

	var interact fetcher.InteractFunc
	if cfg.Dynamic {
		interact = ad.Interact
	}
	r.logger.Debug("fetching", "url", pageURL, "fetcher", f.Type())
	doc, err := f.Fetch(ctx, pageURL, interact)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	pg, err := scraper.NewPage(pageURL, f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pageURL, err)
	}
	return r.engine.Extract(ctx, doc, ad, pg), nil
}

func (r *Runner) fetcherFor(cfg scraper.Config) (fetcher.Fetcher, error) {
	if !cfg.Dynamic {
		return r.static, nil
	}
	r.browserOnce.Do(func() {
		r.browser, r.browserErr = fetcher.NewBrowser(r.cfg, r.logger)
	})
	return r.browser, r.browserErr
}

// Close releases both fetchers. Safe to call when the browser never
// started.
func (r *Runner) Close() {
	if err := r.static.Close(); err != nil {
		r.logger.Warn("closing static fetcher", "error", err)
	}
	if r.browser != nil {
		if err := r.browser.Close(); err != nil {
			r.logger.Warn("closing browser", "error", err)
		}
	}
}
