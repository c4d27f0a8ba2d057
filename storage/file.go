package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileStore writes one TOML document per key under a directory
type FileStore struct {
	basePath string
}

// fileRecord is the on-disk document
type fileRecord struct {
	Key       string    `toml:"key"`
	Value     string    `toml:"value"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// NewFileStore creates a store rooted at basePath, created on first save
func NewFileStore(basePath string) *FileStore {
	return &FileStore{basePath: basePath}
}

// FilePath returns the document path for key
func (f *FileStore) FilePath(key string) string {
	return filepath.Join(f.basePath, key+".toml")
}

func (f *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.FilePath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec fileRecord
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.FilePath(key), err)
	}
	return []byte(rec.Value), nil
}

func (f *FileStore) Save(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(f.basePath, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(fileRecord{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}

	// Write-then-rename keeps the previous document intact on failure
	tmp := f.FilePath(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, f.FilePath(key))
}
