package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"machinedex/internal/batch"
	"machinedex/internal/jobs"
	"machinedex/internal/orchestrator"
)

func scrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scrap",
		Short: "Scrape every configured vendor catalog",
		Long: `Runs the full scrape job table. Each job writes its own batch file
as soon as it finishes, so an interrupted run keeps completed jobs.`,
		RunE: runScrap,
	}
}

func runScrap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := orchestrator.NewRunner(cfg, logger)
	if err != nil {
		return fmt.Errorf("starting runner: %w", err)
	}

	table := jobs.Default()
	logger.Info("starting scrape run", "jobs", len(table), "output", cfg.Paths.ScrapedDir)
	if err := runner.Run(ctx, table); err != nil {
		if ctx.Err() != nil {
			logger.Warn("scrape interrupted, completed jobs are saved")
			return nil
		}
		return err
	}
	return nil
}

func preprocessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preprocess",
		Short: "Merge scraped batch files into one dataset",
		Long: `Reads every batch file, flattens per-machine detail fields, and
writes one rectangular dataset where every record carries the same keys.`,
		RunE: runPreprocess,
	}
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := setupLogger(cfg)

	n, err := batch.MergeDir(cfg.Paths.ScrapedDir, cfg.Paths.MergedFile)
	if err != nil {
		return fmt.Errorf("merging batches: %w", err)
	}
	logger.Info("dataset merged", "machines", n, "output", cfg.Paths.MergedFile)
	return nil
}
