// Copyright 2025 Hatem Noureddine
// SPDX-License-Identifier: Apache-2.0

package banksync

import (
	"context"
	"fmt"
)

// SettingsRepository persists the active application mode in the preference
// store.
type SettingsRepository struct {
	prefs PreferenceStore
}

// NewSettingsRepository creates a settings repository over prefs.
func NewSettingsRepository(prefs PreferenceStore) *SettingsRepository {
	return &SettingsRepository{prefs: prefs}
}

// AppMode emits the persisted mode, immediately on subscribe and again after
// every preference change. An absent or unparsable value reads as ModeMock.
func (r *SettingsRepository) AppMode(ctx context.Context) <-chan AppMode {
	out := make(chan AppMode, 1)
	go func() {
		defer close(out)
		for prefs := range r.prefs.Data(ctx) {
			select {
			case out <- ParseAppMode(prefs[KeyAppMode]):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// CurrentAppMode returns the persisted mode without subscribing.
func (r *SettingsRepository) CurrentAppMode(ctx context.Context) (AppMode, error) {
	prefs, err := r.prefs.Snapshot(ctx)
	if err != nil {
		return ModeMock, fmt.Errorf("read app mode: %w", err)
	}
	return ParseAppMode(prefs[KeyAppMode]), nil
}

// SetAppMode persists mode under the app_mode key.
func (r *SettingsRepository) SetAppMode(ctx context.Context, mode AppMode) error {
	if err := r.prefs.Update(ctx, func(prefs map[string]string) {
		prefs[KeyAppMode] = mode.String()
	}); err != nil {
		return fmt.Errorf("store app mode: %w", err)
	}
	return nil
}
