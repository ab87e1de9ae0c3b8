// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Preference keys persisted by the repositories.
const (
	// KeyLastSyncTime holds the epoch-millisecond timestamp of the last
	// successful cache replacement, as a string.
	KeyLastSyncTime = "last_sync_time"
	// KeyAppMode holds the persisted AppMode enum name.
	KeyAppMode = "app_mode"
)

// PreferenceStore persists small scalar settings as string key-value pairs
// with atomic read-modify-write and a reactive read channel.
type PreferenceStore interface {
	// Snapshot returns the current key-value state.
	Snapshot(ctx context.Context) (map[string]string, error)
	// Data emits the current state immediately and again after every
	// Update, until ctx is cancelled.
	Data(ctx context.Context) <-chan map[string]string
	// Update applies transform to a copy of the current state and persists
	// the result atomically.
	Update(ctx context.Context, transform func(map[string]string)) error
}

// FilePrefs is a PreferenceStore backed by a single JSON file. Writes go
// through a temp file plus rename so a crash mid-write never leaves a torn
// preferences file behind.
type FilePrefs struct {
	path     string
	mu       sync.Mutex
	notifier *notifier
}

// NewFilePrefs creates a file-backed preference store at path. The file is
// created lazily on first Update; a missing file reads as an empty state.
func NewFilePrefs(path string) *FilePrefs {
	return &FilePrefs{path: path, notifier: newNotifier()}
}

// Snapshot implements PreferenceStore.
func (p *FilePrefs) Snapshot(ctx context.Context) (map[string]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadLocked()
}

// Data implements PreferenceStore.
func (p *FilePrefs) Data(ctx context.Context) <-chan map[string]string {
	out := make(chan map[string]string, 1)
	id, signal := p.notifier.subscribe()
	go func() {
		defer close(out)
		defer p.notifier.unsubscribe(id)
		for {
			snapshot, err := p.Snapshot(ctx)
			if err == nil {
				select {
				case out <- snapshot:
				case <-ctx.Done():
					return
				}
			}
			select {
			case <-signal:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Update implements PreferenceStore.
func (p *FilePrefs) Update(ctx context.Context, transform func(map[string]string)) error {
	p.mu.Lock()
	prefs, err := p.loadLocked()
	if err != nil {
		p.mu.Unlock()
		return err
	}
	transform(prefs)
	err = p.saveLocked(prefs)
	p.mu.Unlock()
	if err != nil {
		return err
	}
	p.notifier.broadcast()
	return nil
}

func (p *FilePrefs) loadLocked() (map[string]string, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs file: %w", err)
	}
	prefs := map[string]string{}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parse prefs file: %w", err)
	}
	return prefs, nil
}

func (p *FilePrefs) saveLocked(prefs map[string]string) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("mkdir prefs dir: %w", err)
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write prefs tmp: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("rename prefs tmp: %w", err)
	}
	return nil
}
