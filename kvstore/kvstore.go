// Package kvstore provides the flat key-value persistence the storefront
// keeps on device: string keys, string values, last-write-wins, no expiry.
package kvstore

import "sync"

// Store is the read/write contract for persisted storefront state.
type Store interface {
	// Get returns the stored value and whether the key was ever set.
	Get(key string) (string, bool)
	// Set persists the value. Every write is immediately durable and
	// immediately visible to the next read.
	Set(key, value string)
}

// Memory is an in-process Store with no durability, used in tests and
// when no state path is configured.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	return value, ok
}

// Set stores the value under key.
func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
}
