// Package config loads CakeCollate settings from CAKECOLLATE_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Archive drivers. An empty driver disables archiving.
const (
	ArchiveNone       = ""
	ArchiveMemory     = "memory"
	ArchiveFilesystem = "fs"
	ArchiveS3         = "s3"
)

// Config is the process configuration.
type Config struct {
	PrefsPath       string `env:"CAKECOLLATE_PREFS_PATH" envDefault:"preferences.json"`
	LogMode         string `env:"CAKECOLLATE_LOG_MODE" envDefault:"development"`
	MetricsTextfile string `env:"CAKECOLLATE_METRICS_TEXTFILE"`
	TraceFile       string `env:"CAKECOLLATE_TRACE_FILE"`
	Storage         Storage
	Archive         Archive
}

// Storage selects the snapshot store.
type Storage struct {
	Driver      string `env:"CAKECOLLATE_STORAGE_DRIVER" envDefault:"sqlite"`
	SQLitePath  string `env:"CAKECOLLATE_SQLITE_PATH"`
	PostgresDSN string `env:"CAKECOLLATE_POSTGRES_DSN"`
}

// Archive configures snapshot backups to a blob store.
type Archive struct {
	Driver string `env:"CAKECOLLATE_ARCHIVE_DRIVER"`
	FSRoot string `env:"CAKECOLLATE_ARCHIVE_FS_ROOT" envDefault:"archive"`
	Keep   int    `env:"CAKECOLLATE_ARCHIVE_KEEP" envDefault:"10"`
	S3     S3
}

// S3 holds the bucket settings for the s3 archive driver. Credentials come
// from the default AWS chain.
type S3 struct {
	Bucket    string `env:"CAKECOLLATE_ARCHIVE_S3_BUCKET"`
	Region    string `env:"CAKECOLLATE_ARCHIVE_S3_REGION" envDefault:"us-east-1"`
	Endpoint  string `env:"CAKECOLLATE_ARCHIVE_S3_ENDPOINT"`
	PathStyle bool   `env:"CAKECOLLATE_ARCHIVE_S3_PATH_STYLE"`
}

// Load reads the process environment.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads environ instead of the process environment when it is non-nil.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.Archive.Driver = strings.ToLower(strings.TrimSpace(cfg.Archive.Driver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageSQLite:
	case StoragePostgres:
		if c.Storage.PostgresDSN == "" {
			return errors.New("CAKECOLLATE_POSTGRES_DSN required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	switch c.Archive.Driver {
	case ArchiveNone, ArchiveMemory, ArchiveFilesystem:
	case ArchiveS3:
		if c.Archive.S3.Bucket == "" {
			return errors.New("CAKECOLLATE_ARCHIVE_S3_BUCKET required for s3 archive")
		}
	default:
		return fmt.Errorf("unknown archive driver %q", c.Archive.Driver)
	}
	if c.Archive.Keep < 1 {
		return fmt.Errorf("archive keep must be positive, got %d", c.Archive.Keep)
	}
	if c.PrefsPath == "" {
		return errors.New("CAKECOLLATE_PREFS_PATH must not be empty")
	}
	return nil
}
