package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"machinedex/internal/backend"
	"machinedex/internal/config"
	"machinedex/internal/enrich"
	"machinedex/internal/types"
)

func translateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate",
		Short: "Translate machine names to Korean",
		Long: `Translates every machine name in the merged dataset via Gemini,
one brand at a time with the brand catalog cached as model context.
Already-translated machines are skipped, so the command is resumable.`,
		RunE: runTranslate,
	}
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.RequireGemini(cfg); err != nil {
		return err
	}
	logger := setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	machines, err := loadMachines(cfg.Paths.MergedFile)
	if err != nil {
		return err
	}

	client, err := enrich.NewClient(cfg, logger)
	if err != nil {
		return err
	}
	translator := enrich.NewTranslator(client, cfg.Paths.TranslatedFile, logger)
	if err := translator.Run(ctx, machines); err != nil {
		if ctx.Err() != nil {
			logger.Warn("translation interrupted, partial results are saved")
			return nil
		}
		return err
	}
	return nil
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Classify which body parts each machine trains",
		Long: `Fetches machines without body part labels from the backend,
classifies them via Gemini, and writes the labels back. Machines that
never produce a clean label set are left untouched for the next run.`,
		RunE: runClassify,
	}
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.RequireGemini(cfg); err != nil {
		return err
	}
	if err := config.RequireDatabase(cfg); err != nil {
		return err
	}
	logger := setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tables, err := backend.NewTables(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer tables.Close()

	client, err := enrich.NewClient(cfg, logger)
	if err != nil {
		return err
	}
	classifier := enrich.NewClassifier(client, logger)

	targets, err := tables.MachinesMissingBodyParts(ctx)
	if err != nil {
		return err
	}
	logger.Info("machines pending classification", "count", len(targets))

	classified := 0
	for _, ref := range targets {
		if ctx.Err() != nil {
			break
		}
		parts := classifier.Classify(ctx, ref.Name, ref.Brand)
		if len(parts) == 0 {
			logger.Warn("no valid classification", "name", ref.Name, "brand", ref.Brand)
			continue
		}
		if err := tables.UpdateBodyParts(ctx, ref.ID, parts); err != nil {
			logger.Error("storing classification failed", "name", ref.Name, "error", err)
			continue
		}
		classified++
	}
	logger.Info("classification finished", "classified", classified, "total", len(targets))
	return nil
}

// loadMachines reads a machine dataset file.
func loadMachines(path string) ([]types.Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var machines []types.Machine
	if err := json.Unmarshal(data, &machines); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return machines, nil
}
