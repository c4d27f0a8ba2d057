// Package storage provides key-value persistence for high-score history
package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned by Load when the key has never been saved
var ErrNotFound = errors.New("storage: key not found")

// Store is a minimal string-keyed blob store
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Open creates the store for backend rooted at path
// path is the database file for sqlite and a directory for file; memory ignores it
func Open(backend, path string) (Store, func() error, error) {
	noop := func() error { return nil }
	switch backend {
	case BackendSQLite:
		s, err := NewSQLiteStore(path)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite store %s: %w", path, err)
		}
		return s, s.Close, nil
	case BackendFile:
		return NewFileStore(path), noop, nil
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", backend)
	}
}

// MemoryStore keeps values in process memory
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}
