// internal/app/system/storage/local.go
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalStore writes uploads to a directory on disk. Files are served back
// by the static file server mounted at baseURL.
type LocalStore struct {
	dir     string
	baseURL string
	log     *zap.Logger
}

// NewLocalStore creates the upload directory if needed and returns a store
// writing into it.
func NewLocalStore(dir, baseURL string, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     logger,
	}, nil
}

// Save stores the upload under a random name, keeping the original
// extension so clients get a sensible content type.
func (s *LocalStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		// Best effort cleanup; a stray partial file is harmless.
		os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	url := s.baseURL + "/" + path.Base(name)
	s.log.Debug("stored report photo", zap.String("file", name))
	return url, nil
}
