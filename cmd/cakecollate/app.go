package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cakecollate/internal/blob"
	"cakecollate/internal/logic"
	"cakecollate/internal/model"
	"cakecollate/internal/observability"
	"cakecollate/internal/platform/config"
	"cakecollate/internal/platform/logger"
	"cakecollate/internal/storage"
)

// app holds everything one invocation opens.
type app struct {
	cfg     config.Config
	log     logger.Logger
	sync    func()
	prefs   *model.UserPrefs
	svc     *logic.Service
	prom    *observability.PrometheusRecorder
	expvar  *observability.ExpvarMetricsRecorder
	traceFD *os.File
}

func openApp(ctx context.Context, cfg config.Config, quiet bool) (*app, error) {
	a := &app{cfg: cfg, log: logger.Noop(), sync: func() {}}
	if !quiet {
		zl, err := logger.New(cfg.LogMode)
		if err != nil {
			return nil, err
		}
		a.log, a.sync = zl, zl.Sync
	}

	prefs, err := storage.LoadPrefs(cfg.PrefsPath)
	if err != nil {
		return nil, err
	}
	a.prefs = prefs

	store, err := storage.Open(ctx, cfg.Storage, prefs)
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}

	a.prom = observability.NewPrometheusRecorder()
	a.expvar = observability.NewExpvarMetricsRecorder("")
	opts := []logic.Option{
		logic.WithLogger(a.log),
		logic.WithMetricsRecorder(observability.Recorders(a.prom, a.expvar)),
	}

	if cfg.TraceFile != "" {
		f, err := os.OpenFile(cfg.TraceFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("open trace file: %w", err)
		}
		a.traceFD = f
		opts = append(opts, logic.WithTracer(observability.NewJSONTracer(f)))
	}

	blobStore, err := blob.Open(ctx, cfg.Archive)
	if err != nil {
		_ = a.closeTrace()
		_ = store.Close()
		return nil, fmt.Errorf("open %s archive: %w", cfg.Archive.Driver, err)
	}
	if blobStore != nil {
		archiver, err := blob.NewArchiver(blobStore, blob.WithKeep(cfg.Archive.Keep))
		if err != nil {
			_ = a.closeTrace()
			_ = store.Close()
			return nil, err
		}
		opts = append(opts, logic.WithArchiver(archiver))
	}

	svc, err := logic.Open(ctx, store, prefs, opts...)
	if err != nil {
		_ = a.closeTrace()
		_ = store.Close()
		return nil, err
	}
	a.svc = svc
	a.log.Debug("cakecollate started",
		"storage", cfg.Storage.Driver,
		"archive", cfg.Archive.Driver,
		"prefs", cfg.PrefsPath,
		"expvar", a.expvar.Name(),
	)
	return a, nil
}

// close writes metrics and preferences, then releases the store.
func (a *app) close() error {
	var errs []error
	if a.cfg.MetricsTextfile != "" {
		if err := a.prom.WriteTextfile(a.cfg.MetricsTextfile); err != nil {
			errs = append(errs, err)
		}
	}
	if err := storage.SavePrefs(a.cfg.PrefsPath, a.svc.UserPrefs()); err != nil {
		errs = append(errs, err)
	}
	if err := a.svc.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}
	if err := a.closeTrace(); err != nil {
		errs = append(errs, err)
	}
	snap := a.expvar.Snapshot()
	a.log.Debug("cakecollate stopped", "results", snap.Results)
	a.sync()
	return errors.Join(errs...)
}

func (a *app) closeTrace() error {
	if a.traceFD == nil {
		return nil
	}
	if err := a.traceFD.Close(); err != nil {
		return fmt.Errorf("close trace file: %w", err)
	}
	return nil
}
