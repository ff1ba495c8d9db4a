package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a JSON snapshot on disk. The whole map is
// rewritten on every Set via a temp file and rename so a crash never
// leaves a half-written snapshot behind.
type File struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// OpenFile loads the snapshot at path, creating parent directories as
// needed. A missing, empty, or unparsable snapshot starts the store
// empty rather than failing.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}

	f := &File{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	if len(raw) == 0 {
		return f, nil
	}

	var snap map[string]string
	if err := json.Unmarshal(raw, &snap); err != nil {
		// Corrupt state is treated as absent, matching how unparsable
		// individual values are treated by readers.
		return f, nil
	}
	f.data = snap
	return f, nil
}

// Get returns the stored value for key.
func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.data[key]
	return value, ok
}

// Set stores the value and flushes the snapshot to disk.
func (f *File) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	f.flushLocked()
}

func (f *File) flushLocked() {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return
	}
	temp := f.path + ".tmp"
	if err := os.WriteFile(temp, raw, 0o644); err != nil {
		return
	}
	_ = os.Rename(temp, f.path)
}
