package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqlite, err := NewSQLiteStore(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		BackendSQLite: sqlite,
		BackendFile:   NewFileStore(filepath.Join(dir, "files")),
		BackendMemory: NewMemoryStore(),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Load(ctx, "duckGameHighScores"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Load missing got %v, want ErrNotFound", err)
			}

			first := []byte(`[{"score":12,"date":"2024-01-01T00:00:00Z"}]`)
			if err := s.Save(ctx, "duckGameHighScores", first); err != nil {
				t.Fatalf("Save: %v", err)
			}
			second := []byte(`[{"score":30,"date":"2024-01-02T00:00:00Z"}]`)
			if err := s.Save(ctx, "duckGameHighScores", second); err != nil {
				t.Fatalf("overwrite Save: %v", err)
			}

			got, err := s.Load(ctx, "duckGameHighScores")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if string(got) != string(second) {
				t.Errorf("got %s, want %s", got, second)
			}
		})
	}
}

func TestSQLiteStorePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	if err := s.Save(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Close()

	s2, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, err := s2.Load(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Errorf("got %q %v, want v nil", got, err)
	}
}

func TestFileStoreMalformed(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir)
	if err := os.WriteFile(fs.FilePath("bad"), []byte("value = ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Load(context.Background(), "bad"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("malformed document got %v, want decode error", err)
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	buf := []byte("abc")
	_ = m.Save(ctx, "k", buf)
	buf[0] = 'x'

	got, _ := m.Load(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("got %s, want abc", got)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		backend string
		path    string
		wantErr bool
	}{
		{BackendSQLite, filepath.Join(dir, "a.db"), false},
		{BackendFile, filepath.Join(dir, "files"), false},
		{BackendMemory, "", false},
		{"redis", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			s, closeFn, err := Open(tt.backend, tt.path)
			defer closeFn()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open(%s) error = %v, wantErr %v", tt.backend, err, tt.wantErr)
			}
			if !tt.wantErr && s == nil {
				t.Error("store should not be nil")
			}
		})
	}
}
