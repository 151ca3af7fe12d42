package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"machinedex/internal/backend"
	"machinedex/internal/config"
	"machinedex/internal/enrich"
)

func uploadBrandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-brand",
		Short: "Upload brand logos and brand rows to the backend",
		Long: `Uploads every logo file to the brand bucket, skipping logos the
bucket already holds, then upserts the brand rows.`,
		RunE: runUploadBrand,
	}
}

func runUploadBrand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.RequireBackend(cfg); err != nil {
		return err
	}
	if err := config.RequireDatabase(cfg); err != nil {
		return err
	}
	logger := setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := backend.NewStorage(cfg, logger)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(cfg.Paths.LogosDir)
	if err != nil {
		return fmt.Errorf("reading logos dir: %w", err)
	}
	uploaded := 0
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		local := filepath.Join(cfg.Paths.LogosDir, entry.Name())
		if _, err := storage.UploadFile(ctx, cfg.Backend.BrandBucket, local, ""); err != nil {
			logger.Error("logo upload failed", "file", entry.Name(), "error", err)
			continue
		}
		uploaded++
	}
	logger.Info("logos processed", "uploaded", uploaded, "total", len(entries))

	data, err := os.ReadFile(cfg.Paths.BrandsFile)
	if err != nil {
		return fmt.Errorf("reading brands file: %w", err)
	}
	var brands []backend.Brand
	if err := json.Unmarshal(data, &brands); err != nil {
		return fmt.Errorf("decoding brands file: %w", err)
	}

	tables, err := backend.NewTables(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer tables.Close()
	return tables.UpsertBrands(ctx, brands)
}

func uploadMachineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-machine",
		Short: "Re-host machine images and upsert machine rows",
		Long: `Joins the merged dataset with the translated names, re-hosts each
vendor image in the machine bucket, and upserts the machine rows. A
machine whose image cannot be re-hosted keeps its vendor URL.`,
		RunE: runUploadMachine,
	}
}

// mergedRecord covers the keys the upload consumes from the
// rectangular merged dataset.
type mergedRecord struct {
	Brand    string `json:"brand"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Type     string `json:"type"`
}

func runUploadMachine(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.RequireBackend(cfg); err != nil {
		return err
	}
	if err := config.RequireDatabase(cfg); err != nil {
		return err
	}
	logger := setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	data, err := os.ReadFile(cfg.Paths.MergedFile)
	if err != nil {
		return fmt.Errorf("reading merged dataset: %w", err)
	}
	var records []mergedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decoding merged dataset: %w", err)
	}

	translations, err := loadTranslations(cfg.Paths.TranslatedFile)
	if err != nil {
		logger.Warn("translated names unavailable, uploading without them", "error", err)
	}

	storage, err := backend.NewStorage(cfg, logger)
	if err != nil {
		return err
	}
	uploader := backend.NewImageUploader(cfg, storage, logger)
	uploader.FallbackDir = cfg.Paths.ImageFallbackDir

	rows := make([]backend.MachineRow, 0, len(records))
	for _, rec := range records {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		imageURL := rec.ImageURL
		if imageURL != "" {
			hosted, err := uploader.UploadFromURL(ctx, cfg.Backend.MachineBucket, imageURL)
			if err != nil {
				logger.Warn("image re-host failed, keeping vendor URL",
					"brand", rec.Brand, "name", rec.Name, "error", err)
			} else {
				imageURL = hosted
			}
		}

		rows = append(rows, backend.MachineRow{
			Brand:    rec.Brand,
			Name:     rec.Name,
			NameKor:  translations[rec.Brand+"\x00"+rec.Name],
			ImageURL: imageURL,
			Type:     rec.Type,
		})
	}

	tables, err := backend.NewTables(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer tables.Close()
	return tables.UpsertMachines(ctx, rows)
}

// loadTranslations indexes translated names by brand and name.
func loadTranslations(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var translations []enrich.Translation
	if err := json.Unmarshal(data, &translations); err != nil {
		return nil, err
	}
	byKey := make(map[string]string, len(translations))
	for _, tr := range translations {
		byKey[tr.Brand+"\x00"+tr.Name] = tr.NameKor
	}
	return byKey, nil
}
