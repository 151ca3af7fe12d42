package backend

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"machinedex/internal/config"
	"machinedex/internal/retry"
	"machinedex/internal/types"
)

var extByContentType = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/gif":     ".gif",
}

// ImageUploader re-hosts vendor images: download, validate, store
// under a fresh UUID name. Vendor sites sometimes answer an image URL
// with a CAPTCHA page, so anything that is not image/* is rejected
// before it can end up in the bucket.
type ImageUploader struct {
	storage  *Storage
	download *resty.Client
	logger   *slog.Logger

	// FallbackDir holds pre-downloaded images for hosts that CAPTCHA
	// automated downloads, keyed by URL basename.
	FallbackDir string

	attempts   int
	retryDelay time.Duration
}

func NewImageUploader(cfg *config.Config, storage *Storage, logger *slog.Logger) *ImageUploader {
	download := resty.New().
		SetHeader("User-Agent", cfg.Scrape.UserAgent).
		SetTimeout(30 * time.Second)
	return &ImageUploader{
		storage:    storage,
		download:   download,
		logger:     logger.With("component", "image_uploader"),
		attempts:   5,
		retryDelay: 2 * time.Second,
	}
}

// UploadFromURL downloads imageURL and stores it in the bucket under a
// UUID name, returning the public URL of the stored copy.
func (u *ImageUploader) UploadFromURL(ctx context.Context, bucket, imageURL string) (string, error) {
	resp, err := u.download.R().SetContext(ctx).Get(imageURL)
	if err != nil {
		return "", &types.UploadError{Target: bucket, Key: imageURL, Err: err}
	}
	if resp.IsError() {
		return "", &types.UploadError{Target: bucket, Key: imageURL, Err: fmt.Errorf("download: %s", resp.Status())}
	}

	body := resp.Body()
	contentType, _, _ := strings.Cut(resp.Header().Get("Content-Type"), ";")
	contentType = strings.TrimSpace(contentType)
	if !strings.HasPrefix(contentType, "image/") {
		if strings.Contains(strings.ToLower(string(body)), "captcha") {
			if url, ok := u.uploadFromFallback(ctx, bucket, imageURL); ok {
				return url, nil
			}
			return "", &types.UploadError{Target: bucket, Key: imageURL, Err: types.ErrCaptchaBlocked}
		}
		return "", &types.UploadError{Target: bucket, Key: imageURL, Err: types.ErrNotAnImage}
	}

	name := uuid.NewString() + imageExtension(imageURL, contentType)
	err = retry.Do(ctx, u.attempts, u.retryDelay, func() error {
		return u.storage.Upload(ctx, bucket, name, body, contentType)
	})
	if err != nil {
		return "", err
	}

	u.logger.Info("image re-hosted", "source", imageURL, "name", name)
	return u.storage.PublicURL(bucket, name), nil
}

// uploadFromFallback serves a blocked download from FallbackDir,
// matching on the URL basename.
func (u *ImageUploader) uploadFromFallback(ctx context.Context, bucket, imageURL string) (string, bool) {
	if u.FallbackDir == "" {
		return "", false
	}
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return "", false
	}
	base := path.Base(parsed.Path)
	local := filepath.Join(u.FallbackDir, base)
	data, err := os.ReadFile(local)
	if err != nil {
		u.logger.Warn("no local fallback for blocked image", "source", imageURL, "path", local)
		return "", false
	}

	ext := path.Ext(base)
	contentType := mime.TypeByExtension(ext)
	name := uuid.NewString() + ext
	if err := u.storage.Upload(ctx, bucket, name, data, contentType); err != nil {
		u.logger.Warn("fallback upload failed", "source", imageURL, "error", err)
		return "", false
	}
	u.logger.Info("image re-hosted from fallback", "source", imageURL, "name", name)
	return u.storage.PublicURL(bucket, name), true
}

// imageExtension takes the extension from the URL path when it looks
// sane and falls back to the content type.
func imageExtension(imageURL, contentType string) string {
	if parsed, err := url.Parse(imageURL); err == nil {
		ext := path.Ext(parsed.Path)
		if ext != "" && len(ext) <= 5 {
			return ext
		}
	}
	return extByContentType[contentType]
}
