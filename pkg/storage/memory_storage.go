package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStorage keeps records as marshaled JSON snapshots in process
// memory. It backs tests and CLI runs without a data directory; a
// page set stored here lives only as long as the process.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string][]byte)}
}

// Save marshals the record and stores the snapshot under key. Storing
// bytes rather than the value itself keeps later mutations of the
// caller's struct from leaking into loaded copies.
func (ms *MemoryStorage) Save(ctx context.Context, key string, data interface{}) error {
	if key == "" {
		return fmt.Errorf("storage key cannot be empty")
	}

	snapshot, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	ms.mu.Lock()
	ms.records[key] = snapshot
	ms.mu.Unlock()
	return nil
}

// Load unmarshals the stored snapshot for key into dest.
func (ms *MemoryStorage) Load(ctx context.Context, key string, dest interface{}) error {
	ms.mu.RLock()
	snapshot, ok := ms.records[key]
	ms.mu.RUnlock()

	if !ok {
		return fmt.Errorf("no record for key %s", key)
	}
	if err := json.Unmarshal(snapshot, dest); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return nil
}

// Delete removes the record for key. Missing keys are not an error.
func (ms *MemoryStorage) Delete(ctx context.Context, key string) error {
	ms.mu.Lock()
	delete(ms.records, key)
	ms.mu.Unlock()
	return nil
}

// Exists reports whether a record is stored under key.
func (ms *MemoryStorage) Exists(ctx context.Context, key string) (bool, error) {
	ms.mu.RLock()
	_, ok := ms.records[key]
	ms.mu.RUnlock()
	return ok, nil
}
