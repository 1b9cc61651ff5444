package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cakecollate/internal/model"
	"cakecollate/internal/platform/config"
	"cakecollate/pkg/domain"
	"cakecollate/testutil"
)

func TestOpenMemoryAndSQLite(t *testing.T) {
	ctx := context.Background()

	mem, err := Open(ctx, config.Storage{Driver: config.StorageMemory}, nil)
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	defer func() { _ = mem.Close() }()

	prefs := model.NewUserPrefs()
	dbPath := filepath.Join(t.TempDir(), "data", "orders.db")
	if err := prefs.SetCakeCollateFilePath(dbPath); err != nil {
		t.Fatalf("set path: %v", err)
	}
	store, err := Open(ctx, config.Storage{Driver: config.StorageSQLite}, prefs)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	defer func() { _ = store.Close() }()
	if err := store.Save(ctx, domain.Snapshot{Orders: testutil.TypicalOrders()}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected sqlite file at prefs path: %v", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), config.Storage{Driver: "mysql"}, nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "preferences.json")

	loaded, err := LoadPrefs(path)
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if !loaded.Equal(model.NewUserPrefs()) {
		t.Fatalf("expected defaults for a missing file")
	}

	prefs := model.NewUserPrefs()
	prefs.SetGuiSettings(model.GuiSettings{WindowWidth: 1000, WindowHeight: 500, WindowCoordinates: &model.Point{X: 300, Y: 100}})
	if err := prefs.SetCakeCollateFilePath("data/bakery.db"); err != nil {
		t.Fatalf("set path: %v", err)
	}
	if err := SavePrefs(path, prefs); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadPrefs(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Equal(prefs) {
		t.Fatalf("prefs changed on round trip: %+v", got)
	}
}

func TestLoadPrefsRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"garbage.json": "{not json",
		"empty.json":   `{"cakeCollateFilePath": ""}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}
			_, err := LoadPrefs(path)
			if err == nil || !strings.Contains(err.Error(), "decode prefs") {
				t.Fatalf("expected decode error, got %v", err)
			}
		})
	}
}

func TestSavePrefsRejectsNil(t *testing.T) {
	if err := SavePrefs(filepath.Join(t.TempDir(), "p.json"), nil); err == nil {
		t.Fatalf("expected error for nil prefs")
	}
}
