package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thanachok11/CIS-Help-Me/internal/app/system/storage"
	"go.uber.org/zap"
)

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, "/files/", zap.NewNop())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	url, err := store.Save(context.Background(), "photo.JPG", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if !strings.HasPrefix(url, "/files/") {
		t.Errorf("url = %q, want /files/ prefix", url)
	}
	if !strings.HasSuffix(url, ".jpg") {
		t.Errorf("url = %q, want lowercased original extension", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/files/")))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("stored content = %q, want image-bytes", data)
	}
}

func TestLocalStore_UniqueNames(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir(), "/files", zap.NewNop())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	a, err := store.Save(context.Background(), "same.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	b, err := store.Save(context.Background(), "same.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if a == b {
		t.Errorf("expected distinct URLs for repeated uploads, got %q twice", a)
	}
}

func TestLocalStore_CancelledContext(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir(), "/files", zap.NewNop())
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Save(ctx, "x.png", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
