// Package storage opens the configured snapshot store and reads and writes
// the user preferences file.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cakecollate/internal/infra/persistence/memory"
	"cakecollate/internal/infra/persistence/postgres"
	"cakecollate/internal/infra/persistence/sqlite"
	"cakecollate/internal/model"
	"cakecollate/internal/platform/config"
	"cakecollate/pkg/domain"
)

// Open selects a snapshot store backend. When cfg names no sqlite path the
// data file path from the user preferences is used.
//
//	CAKECOLLATE_STORAGE_DRIVER: memory|sqlite|postgres (default sqlite)
//	CAKECOLLATE_SQLITE_PATH: path to the sqlite file
//	CAKECOLLATE_POSTGRES_DSN: postgres DSN when driver=postgres
func Open(ctx context.Context, cfg config.Storage, prefs model.ReadOnlyUserPrefs) (domain.SnapshotStore, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		return memory.NewStore(), nil
	case config.StorageSQLite, "":
		path := cfg.SQLitePath
		if path == "" && prefs != nil {
			path = prefs.CakeCollateFilePath()
		}
		store, err := sqlite.NewStore(ctx, path)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoragePostgres:
		store, err := postgres.NewStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %s", cfg.Driver)
	}
}

// LoadPrefs reads preferences from path. A missing file yields defaults.
func LoadPrefs(path string) (*model.UserPrefs, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.NewUserPrefs(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}
	prefs := model.NewUserPrefs()
	if err := json.Unmarshal(b, prefs); err != nil {
		return nil, fmt.Errorf("decode prefs %s: %w", path, err)
	}
	return prefs, nil
}

// SavePrefs writes prefs to path through a temporary file in the same directory.
func SavePrefs(path string, prefs model.ReadOnlyUserPrefs) error {
	p, err := model.UserPrefsFrom(prefs)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(append(b, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}
