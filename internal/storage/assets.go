package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/museumsapi/museums-api/internal/config"
)

var ErrAssetNotFound = errors.New("asset not found")

// AssetSource serves the front-end bundle that answers unmatched routes.
type AssetSource interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// ContentType guesses the MIME type from the asset name.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// DirAssets reads assets from a local directory.
type DirAssets struct {
	root string
}

func NewDirAssets(root string) *DirAssets {
	return &DirAssets{root: root}
}

func (d *DirAssets) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	// Clean against "/" so "../" cannot escape root
	clean := filepath.FromSlash(path.Clean("/" + name))
	f, err := os.Open(filepath.Join(d.root, clean))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
		}
		return nil, err
	}
	return f, nil
}

// NewAssetSource picks MinIO when an endpoint is configured, else the local
// directory. It returns nil when neither is configured.
func NewAssetSource(cfg config.StaticConfig) (AssetSource, error) {
	if cfg.MinIO.Endpoint != "" {
		s, err := NewMinIOStorage(&cfg.MinIO)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	if cfg.Dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(cfg.Dir); err != nil {
		return nil, fmt.Errorf("static dir %q: %w", cfg.Dir, err)
	}
	return NewDirAssets(cfg.Dir), nil
}
