// Package backend pushes finished datasets to the hosted backend:
// images and logos into object storage, brand and machine rows into
// Postgres tables.
package backend

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"

	"machinedex/internal/config"
	"machinedex/internal/types"
)

// Storage is a Supabase Storage client. Uploads skip objects that
// already exist in the bucket, so re-running an upload command never
// duplicates or overwrites files.
type Storage struct {
	rest   *resty.Client
	logger *slog.Logger
}

func NewStorage(cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	if cfg.Backend.URL == "" || cfg.Backend.ServiceRoleKey == "" {
		return nil, fmt.Errorf("storage: %w", types.ErrMissingCreds)
	}
	rest := resty.New().
		SetBaseURL(cfg.Backend.URL).
		SetAuthToken(cfg.Backend.ServiceRoleKey).
		SetTimeout(60 * time.Second)
	return &Storage{
		rest:   rest,
		logger: logger.With("component", "storage"),
	}, nil
}

type objectEntry struct {
	Name string `json:"name"`
}

// List returns the object names under prefix in a bucket.
func (s *Storage) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	var entries []objectEntry
	resp, err := s.rest.R().
		SetContext(ctx).
		SetBody(map[string]string{"prefix": prefix}).
		SetResult(&entries).
		Post("/storage/v1/object/list/" + bucket)
	if err != nil {
		return nil, &types.UploadError{Target: bucket, Key: prefix, Err: err}
	}
	if resp.IsError() {
		return nil, &types.UploadError{Target: bucket, Key: prefix, Err: fmt.Errorf("list: %s", resp.Status())}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names, nil
}

// Exists reports whether an object is already in the bucket.
func (s *Storage) Exists(ctx context.Context, bucket, name string) (bool, error) {
	names, err := s.List(ctx, bucket, filepath.Dir(name))
	if err != nil {
		return false, err
	}
	base := filepath.Base(name)
	for _, n := range names {
		if n == base {
			return true, nil
		}
	}
	return false, nil
}

// Upload stores data under name in the bucket.
func (s *Storage) Upload(ctx context.Context, bucket, name string, data []byte, contentType string) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	resp, err := s.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", bucket, name))
	if err != nil {
		return &types.UploadError{Target: bucket, Key: name, Err: err}
	}
	if resp.IsError() {
		return &types.UploadError{Target: bucket, Key: name, Err: fmt.Errorf("upload: %s", resp.Status())}
	}
	s.logger.Info("object uploaded", "bucket", bucket, "name", name, "bytes", len(data))
	return nil
}

// UploadFile uploads a local file unless the bucket already holds an
// object of that name, and returns the public URL either way.
func (s *Storage) UploadFile(ctx context.Context, bucket, localPath, name string) (string, error) {
	if name == "" {
		name = filepath.Base(localPath)
	}

	exists, err := s.Exists(ctx, bucket, name)
	if err != nil {
		return "", err
	}
	if exists {
		s.logger.Info("object already exists, skipping", "bucket", bucket, "name", name)
		return s.PublicURL(bucket, name), nil
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return "", &types.UploadError{Target: bucket, Key: name, Err: err}
	}
	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if err := s.Upload(ctx, bucket, name, data, contentType); err != nil {
		return "", err
	}
	return s.PublicURL(bucket, name), nil
}

// PublicURL returns the public address of an object.
func (s *Storage) PublicURL(bucket, name string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.rest.BaseURL, bucket, name)
}
