// Package blob exposes the object store used for snapshot archives and the
// factory that selects a backend from configuration. Callers depend on Store
// and never import the infra implementations directly.
package blob

import (
	"context"
	"fmt"

	"cakecollate/internal/blob/core"
	"cakecollate/internal/infra/blob/fs"
	"cakecollate/internal/infra/blob/memory"
	"cakecollate/internal/infra/blob/s3"
	"cakecollate/internal/platform/config"
)

type (
	// Driver identifies a blob backend.
	Driver = core.Driver
	// PutOptions configures a blob write.
	PutOptions = core.PutOptions
	// Info describes stored blob metadata.
	Info = core.Info
	// Store is the interface for blob backends.
	Store = core.Store
)

const (
	DriverFilesystem = core.DriverFilesystem
	DriverS3         = core.DriverS3
	DriverMemory     = core.DriverMemory
)

var (
	ErrNotFound = core.ErrNotFound
	ErrExists   = core.ErrExists
)

// Open returns the store selected by cfg. It returns a nil Store when
// archiving is disabled.
func Open(ctx context.Context, cfg config.Archive) (Store, error) {
	switch cfg.Driver {
	case config.ArchiveNone:
		return nil, nil
	case config.ArchiveMemory:
		return memory.New(), nil
	case config.ArchiveFilesystem:
		store, err := fs.New(cfg.FSRoot)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.ArchiveS3:
		store, err := s3.New(ctx, s3.Config{
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			Endpoint:  cfg.S3.Endpoint,
			PathStyle: cfg.S3.PathStyle,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown archive driver %s", cfg.Driver)
	}
}

// NewMemory returns an in-memory store for tests.
func NewMemory() Store { return memory.New() }

// NewMockS3ForTests returns an S3 store backed by a fake in-memory bucket.
func NewMockS3ForTests() Store { return s3.NewMockForTests() }
