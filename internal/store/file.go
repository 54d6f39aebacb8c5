package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pagepulse/pagepulse/internal/tracking"
)

// fileDocument is the persisted shape: a single JSON document holding the
// whole event log.
type fileDocument struct {
	Events []tracking.Event `json:"events"`
}

// FileStore persists the event log as one JSON document on disk. Every
// append rewrites the full document. The mutex makes the read-modify-write
// safe under concurrent requests.
type FileStore struct {
	path   string
	mu     sync.Mutex
	loaded bool
	events []tracking.Event
}

// NewFileStore creates a store backed by the JSON document at path. The
// document is created empty on first use if absent.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Append(_ context.Context, event tracking.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return fmt.Errorf("%w: %v", tracking.ErrUnavailable, err)
	}

	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}

	f.events = append(f.events, event)
	if len(f.events) > tracking.MaxEvents {
		f.events = f.events[len(f.events)-tracking.MaxEvents:]
	}

	if err := f.persist(); err != nil {
		return fmt.Errorf("%w: %v", tracking.ErrUnavailable, err)
	}

	return nil
}

func (f *FileStore) All(_ context.Context) ([]tracking.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.load(); err != nil {
		return nil, fmt.Errorf("%w: %v", tracking.ErrUnavailable, err)
	}

	out := make([]tracking.Event, len(f.events))
	copy(out, f.events)

	return out, nil
}

// Ping reports whether the data directory is reachable.
func (f *FileStore) Ping(_ context.Context) error {
	_, err := os.Stat(filepath.Dir(f.path))

	return err
}

func (f *FileStore) load() error {
	if f.loaded {
		return nil
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			f.events = nil
			f.loaded = true

			return nil
		}

		return err
	}

	var doc fileDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}

	f.events = doc.Events
	f.loaded = true

	return nil
}

func (f *FileStore) persist() error {
	raw, err := json.Marshal(fileDocument{Events: f.events})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, f.path)
}
