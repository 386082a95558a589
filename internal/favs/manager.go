// Package favs implements the gnomefavs actions on top of the preset store
// and the settings bridge.
package favs

import (
	"context"
	"fmt"
	"iter"

	"github.com/wethinkt/gnomefavs/internal/config"
	"github.com/wethinkt/gnomefavs/internal/debuglog"
	"github.com/wethinkt/gnomefavs/internal/gsettings"
	"github.com/wethinkt/gnomefavs/internal/preset"
)

// Manager saves, loads, removes and lists favorites presets.
type Manager struct {
	paths  config.Paths
	store  *preset.Store
	bridge gsettings.Bridge
}

// NewManager wires a manager over paths and bridge.
func NewManager(paths config.Paths, bridge gsettings.Bridge) *Manager {
	return &Manager{
		paths:  paths,
		store:  preset.NewStore(paths.PresetsFile),
		bridge: bridge,
	}
}

// Save snapshots the current favorites under name, replacing any preset
// with the same name.
func (m *Manager) Save(ctx context.Context, name string) error {
	if err := m.paths.Validate(); err != nil {
		return err
	}

	current, err := m.bridge.Get(ctx)
	if err != nil {
		return fmt.Errorf("get current favorites: %w", err)
	}

	if err := m.store.Upsert(name, current); err != nil {
		return err
	}
	debuglog.Log.Info("saved preset", "name", name, "value", current)
	return nil
}

// Load applies the preset called name to the live favorites.
// The live configuration is untouched if the preset is missing.
func (m *Manager) Load(ctx context.Context, name string) error {
	if err := m.paths.Validate(); err != nil {
		return err
	}

	presets, err := m.store.ReadAll()
	if err != nil {
		return err
	}
	value, ok := presets.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", preset.ErrNotFound, name)
	}

	ids, err := gsettings.ParseList(value)
	if err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	if err := m.bridge.Set(ctx, ids); err != nil {
		return fmt.Errorf("set favorites: %w", err)
	}
	debuglog.Log.Info("loaded preset", "name", name, "apps", len(ids))
	return nil
}

// Remove deletes the preset called name.
func (m *Manager) Remove(name string) error {
	if err := m.paths.Validate(); err != nil {
		return err
	}
	if err := m.store.Delete(name); err != nil {
		return err
	}
	debuglog.Log.Info("removed preset", "name", name)
	return nil
}

// List yields preset names in sorted order. It does not create the preset
// file; a missing file is reported as an error.
func (m *Manager) List() (iter.Seq[string], error) {
	return m.store.Names()
}
