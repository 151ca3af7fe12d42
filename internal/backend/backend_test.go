package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machinedex/internal/config"
	"machinedex/internal/types"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type storageServer struct {
	*httptest.Server
	existing []string
	uploads  []string
}

func newStorageServer(existing ...string) *storageServer {
	s := &storageServer{existing: existing}
	mux := http.NewServeMux()
	mux.HandleFunc("/storage/v1/object/list/", func(w http.ResponseWriter, r *http.Request) {
		var entries []map[string]string
		for _, name := range s.existing {
			entries = append(entries, map[string]string{"name": name})
		}
		if entries == nil {
			entries = []map[string]string{}
		}
		_ = json.NewEncoder(w).Encode(entries)
	})
	mux.HandleFunc("/storage/v1/object/", func(w http.ResponseWriter, r *http.Request) {
		s.uploads = append(s.uploads, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	s.Server = httptest.NewServer(mux)
	return s
}

func newTestStorage(t *testing.T, srv *storageServer) *Storage {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Backend.URL = srv.URL
	cfg.Backend.ServiceRoleKey = "service-role"
	st, err := NewStorage(cfg, discard())
	require.NoError(t, err)
	return st
}

func TestUploadFileSkipsExisting(t *testing.T) {
	srv := newStorageServer("logo.png")
	defer srv.Close()
	st := newTestStorage(t, srv)

	local := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(local, []byte("png"), 0o644))

	url, err := st.UploadFile(context.Background(), "brand_images", local, "")
	require.NoError(t, err)
	assert.Empty(t, srv.uploads)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/brand_images/logo.png", url)
}

func TestUploadFileUploadsNew(t *testing.T) {
	srv := newStorageServer()
	defer srv.Close()
	st := newTestStorage(t, srv)

	local := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(local, []byte("png"), 0o644))

	_, err := st.UploadFile(context.Background(), "brand_images", local, "")
	require.NoError(t, err)
	require.Len(t, srv.uploads, 1)
	assert.Equal(t, "/storage/v1/object/brand_images/logo.png", srv.uploads[0])
}

func TestStorageRequiresCredentials(t *testing.T) {
	cfg := config.DefaultConfig()
	_, err := NewStorage(cfg, discard())
	assert.ErrorIs(t, err, types.ErrMissingCreds)
}

func serveImage(contentType string, body []byte) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(body)
	}))
}

func newTestUploader(t *testing.T, srv *storageServer) *ImageUploader {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Backend.URL = srv.URL
	cfg.Backend.ServiceRoleKey = "service-role"
	st, err := NewStorage(cfg, discard())
	require.NoError(t, err)
	u := NewImageUploader(cfg, st, discard())
	u.retryDelay = 0
	return u
}

func TestUploadFromURLStoresUUIDName(t *testing.T) {
	img := serveImage("image/png", []byte("fake png bytes"))
	defer img.Close()
	srv := newStorageServer()
	defer srv.Close()
	u := newTestUploader(t, srv)

	url, err := u.UploadFromURL(context.Background(), "machine_images", img.URL+"/pic")
	require.NoError(t, err)
	require.Len(t, srv.uploads, 1)

	namePattern := regexp.MustCompile(`^/storage/v1/object/machine_images/[0-9a-f-]{36}\.png$`)
	assert.Regexp(t, namePattern, srv.uploads[0])
	assert.Contains(t, url, "/storage/v1/object/public/machine_images/")
}

func TestUploadFromURLRejectsCaptchaPage(t *testing.T) {
	img := serveImage("text/html", []byte("<html>please solve this CAPTCHA</html>"))
	defer img.Close()
	srv := newStorageServer()
	defer srv.Close()
	u := newTestUploader(t, srv)

	_, err := u.UploadFromURL(context.Background(), "machine_images", img.URL+"/pic.jpg")
	assert.ErrorIs(t, err, types.ErrCaptchaBlocked)
	assert.Empty(t, srv.uploads)
}

func TestUploadFromURLRejectsNonImage(t *testing.T) {
	img := serveImage("text/html", []byte("<html>not found</html>"))
	defer img.Close()
	srv := newStorageServer()
	defer srv.Close()
	u := newTestUploader(t, srv)

	_, err := u.UploadFromURL(context.Background(), "machine_images", img.URL+"/pic.jpg")
	assert.ErrorIs(t, err, types.ErrNotAnImage)
}

func TestImageExtension(t *testing.T) {
	cases := []struct {
		url         string
		contentType string
		want        string
	}{
		{"https://x.com/a/b.jpg?v=2", "image/png", ".jpg"},
		{"https://x.com/a/b", "image/png", ".png"},
		{"https://x.com/a/b.verylongext", "image/webp", ".webp"},
		{"https://x.com/a/b", "application/octet-stream", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, imageExtension(tc.url, tc.contentType), tc.url)
	}
}
